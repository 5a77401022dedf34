package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/zstd"

	"github.com/darlopvil/trabajo-L4-G7/internal/estimator"
)

// Record is one completed trial: the sequential/parallel result pair for a
// single sample size, plus the informational estimate delta.
type Record struct {
	RunAt      time.Time        `json:"runAt"`
	Samples    int64            `json:"samples"`
	Sequential estimator.Result `json:"sequential"`
	Parallel   estimator.Result `json:"parallel"`
	Delta      float64          `json:"delta"`
}

// Store keeps trial history in BadgerDB. Values are JSON compressed with
// zstd; keys are the run timestamp in big-endian nanoseconds so iteration
// order is chronological.
type Store struct {
	db      *badger.DB
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// Open opens (or creates) a store at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open trial store: %w", err)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		db.Close()
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	return &Store{db: db, encoder: encoder, decoder: decoder}, nil
}

// Put persists one trial record. A zero RunAt is stamped with the current
// time so keys are always ordered and unique per run.
func (s *Store) Put(rec Record) error {
	if rec.RunAt.IsZero() {
		rec.RunAt = time.Now()
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	compressed := s.encoder.EncodeAll(payload, make([]byte, 0, len(payload)))

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(rec.RunAt.UnixNano()))

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, compressed)
	})
}

// List returns up to limit records, newest first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]Record, error) {
	var records []Record

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration starts past the highest possible key.
		seekKey := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
		for it.Seek(seekKey); it.Valid(); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				payload, err := s.decoder.DecodeAll(val, nil)
				if err != nil {
					return fmt.Errorf("decompress record: %w", err)
				}
				var rec Record
				if err := json.Unmarshal(payload, &rec); err != nil {
					return fmt.Errorf("decode record: %w", err)
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close releases the database and codec resources.
func (s *Store) Close() error {
	s.encoder.Close()
	s.decoder.Close()
	return s.db.Close()
}
