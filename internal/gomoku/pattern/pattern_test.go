package pattern

import (
	"strings"
	"testing"
)

func TestShapeTableCompleteness(t *testing.T) {
	m := NewShapeMatcher()
	for shape, score := range ShapeTable {
		// Every match is summed, so a shape that contains other table
		// shapes ("011110" holds "01111" and "11110") scores those too.
		want := score
		for other, otherScore := range ShapeTable {
			if other != shape && strings.Contains(shape, other) {
				want += otherScore
			}
		}
		if got := m.ScoreLine(shape); got != want {
			t.Errorf("ScoreLine(%q) = %d, want %d", shape, got, want)
		}
	}
}

func TestScoreLineSumsOverlappingMatches(t *testing.T) {
	m := NewShapeMatcher()

	// "011110" contains the OpenFour pattern itself and the Four patterns
	// "01111" and "11110" as substrings; all three must contribute.
	got := m.ScoreLine("011110")
	want := ShapeTable["011110"] + ShapeTable["01111"] + ShapeTable["11110"]
	if got != want {
		t.Errorf("ScoreLine(%q) = %d, want %d", "011110", got, want)
	}
}

func TestScoreLineEmpty(t *testing.T) {
	m := NewShapeMatcher()
	if got := m.ScoreLine("0000000000000"); got != 0 {
		t.Errorf("ScoreLine(all empty) = %d, want 0", got)
	}
}

func TestFourMatcherOnlyMatchesFours(t *testing.T) {
	m := NewFourMatcher()

	// The OpenFour "011110" contains the Four shapes "01111" and "11110".
	for _, shape := range []string{"11110", "01111", "10111", "11011", "11101", "011110"} {
		if !m.Matches(shape) {
			t.Errorf("Matches(%q) = false, want true", shape)
		}
	}

	for _, shape := range []string{"00100", "01010", "01110", "11111"} {
		if m.Matches(shape) {
			t.Errorf("Matches(%q) = true, want false (not a Four shape)", shape)
		}
	}
}

func TestMatchesEarlyExit(t *testing.T) {
	m := NewShapeMatcher()
	if m.Matches("0000000000000") {
		t.Errorf("Matches(all empty) = true, want false")
	}
	if !m.Matches("0000011111000") {
		t.Errorf("Matches with embedded Five = false, want true")
	}
}
