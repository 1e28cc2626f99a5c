package snapshot

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/m4theushw/material-ui-x/internal/grid"
)

const bucketSnapshots = "snapshots"

// ErrNoSnapshot is returned by Load when the key has no snapshot.
var ErrNoSnapshot = errors.New("snapshot: no such snapshot")

// Store is a bbolt-backed snapshot store.
type Store struct {
	db     *bolt.DB
	logger *slog.Logger
}

// Open opens or creates the database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("snapshot: opening %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSnapshots))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshot: initializing %s: %w", path, err)
	}
	return &Store{db: db, logger: logger.With("component", "snapshot")}, nil
}

// Save stores st under key, replacing any previous snapshot.
func (s *Store) Save(key string, st grid.InitialState) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSnapshots)).Put([]byte(key), data)
	})
	if err != nil {
		return err
	}
	s.logger.Debug("snapshot saved", "key", key, "bytes", len(data))
	return nil
}

// Load returns the snapshot stored under key.
func (s *Store) Load(key string) (grid.InitialState, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketSnapshots)).Get([]byte(key))
		if v == nil {
			return ErrNoSnapshot
		}
		// v is only valid inside the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return grid.InitialState{}, err
	}
	return Decode(data)
}

// Delete removes the snapshot under key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSnapshots)).Delete([]byte(key))
	})
}

// Keys lists the stored keys in byte order.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSnapshots)).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
