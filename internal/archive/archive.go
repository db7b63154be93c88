// Package archive persists completed games to an embedded key-value store,
// the Go-native equivalent of the original Qt-Gomoku GameWindow's
// new-game/restart/save support, scoped to recording finished games rather
// than mid-game UI state (spec.md §1 keeps that a UI collaborator's
// concern).
package archive

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/klauspost/compress/zstd"

	"github.com/hailam/gomoku/internal/gomoku/boardstate"
)

// ErrGameNotFound is returned by Load when no record exists under the
// requested ID.
var ErrGameNotFound = errors.New("archive: game not found")

// MoveRecord is one played stone, in play order.
type MoveRecord struct {
	X, Y int
	Side boardstate.Side
}

// GameRecord is a single completed game, written once Status reaches Win or
// Draw. Grounded on internal/storage/storage.go's GameResult/GameStats, but
// widened from aggregate statistics to a full per-game move log, matching
// GameWindow's ability to persist an entire game rather than just its
// outcome.
type GameRecord struct {
	ID        string
	Moves     []MoveRecord
	Result    boardstate.Status
	Winner    boardstate.Side
	PlayedAt  time.Time
	EngineLog string
}

// Store wraps a BadgerDB instance for archived game records. Grounded on
// internal/storage/storage.go's "open once, Close on shutdown" lifecycle;
// widened to compress each record with zstd before it reaches Badger, since
// an archive accumulates many small move lists over a long-running process.
type Store struct {
	db  *badger.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open opens (creating if necessary) a Badger database at dir and wraps it
// with zstd compression. Badger's own logging seam is an interface, not a
// concrete type, so it is fed through a small adapter around logr (backed by
// stdr over the standard logger) rather than silenced as the teacher does.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = &badgerLogAdapter{stdr.New(log.New(os.Stderr, "[archive] ", log.LstdFlags))}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", dir, err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: new zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		enc.Close()
		return nil, fmt.Errorf("archive: new zstd decoder: %w", err)
	}

	return &Store{db: db, enc: enc, dec: dec}, nil
}

// Close releases the underlying database and codecs.
func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}

// Save writes rec under rec.ID, overwriting any existing record with the
// same ID.
func (s *Store) Save(rec GameRecord) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return fmt.Errorf("archive: encode game %s: %w", rec.ID, err)
	}
	compressed := s.enc.EncodeAll(buf.Bytes(), nil)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(rec.ID), compressed)
	})
}

// Load reads back the record stored under id.
func (s *Store) Load(id string) (GameRecord, error) {
	var rec GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(compressed []byte) error {
			raw, err := s.dec.DecodeAll(compressed, nil)
			if err != nil {
				return fmt.Errorf("archive: decompress game %s: %w", id, err)
			}
			return gob.NewDecoder(bytes.NewReader(raw)).Decode(&rec)
		})
	})
	if err != nil {
		return GameRecord{}, err
	}
	return rec, nil
}

// List returns every archived game's ID, in Badger's iteration order.
func (s *Store) List() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			ids = append(ids, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return ids, err
}

// badgerLogAdapter satisfies badger.Logger by forwarding to a logr.Logger,
// the idiomatic seam for exercising logr in an otherwise stdlib-log
// codebase: Badger's Options.Logger is an interface, so this is the one
// place a structured logger has somewhere to plug in.
type badgerLogAdapter struct {
	logr.Logger
}

func (l *badgerLogAdapter) Errorf(format string, args ...interface{}) {
	l.Logger.Error(nil, fmt.Sprintf(format, args...))
}

func (l *badgerLogAdapter) Warningf(format string, args ...interface{}) {
	l.Logger.Info(fmt.Sprintf(format, args...), "level", "warning")
}

func (l *badgerLogAdapter) Infof(format string, args ...interface{}) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogAdapter) Debugf(format string, args ...interface{}) {
	l.Logger.V(1).Info(fmt.Sprintf(format, args...))
}
