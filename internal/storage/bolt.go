// Package storage persists named port profiles and the kill audit log in a
// bbolt database. Scan snapshots are deliberately not persisted; they live
// only for the duration of a run.
package storage

import (
	"time"

	"go.etcd.io/bbolt"
)

const (
	bucketProfiles = "profiles"
	bucketKills    = "kills"
)

// Store wraps a bbolt database.
type Store struct {
	db *bbolt.DB
}

// NewStore opens a bbolt database at the given path and initializes the
// required buckets.
func NewStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketProfiles)); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketKills)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}
