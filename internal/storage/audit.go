package storage

import (
	"encoding/json"
	"fmt"

	"github.com/hakim/portwatch/internal/models"
	"go.etcd.io/bbolt"
)

// SaveKillRecord appends one audit entry. Keys are time-prefixed so a
// reverse cursor walk yields newest-first ordering without a separate index.
func (s *Store) SaveKillRecord(record *models.KillRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%020d_%s", record.At.UnixNano(), record.ID)
		return tx.Bucket([]byte(bucketKills)).Put([]byte(key), data)
	})
}

// ListKillRecords returns audit entries newest-first. A non-positive limit
// returns all entries.
func (s *Store) ListKillRecords(limit int) ([]*models.KillRecord, error) {
	var records []*models.KillRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket([]byte(bucketKills)).Cursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			if limit > 0 && len(records) >= limit {
				break
			}
			var record models.KillRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return err
			}
			records = append(records, &record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
