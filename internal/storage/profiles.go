package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/hakim/portwatch/internal/portset"
	"go.etcd.io/bbolt"
)

// ProfileRecord is a persisted named port set.
type ProfileRecord struct {
	Name      string    `json:"name"`
	PortsExpr string    `json:"ports_expr"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveProfile stores a profile keyed by name, replacing any prior record
// with the same name. The expression must already be validated by the
// caller.
func (s *Store) SaveProfile(p portset.Profile) error {
	record := ProfileRecord{
		Name:      p.Name,
		PortsExpr: p.PortsExpr,
		CreatedAt: time.Now(),
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(&record)
		if err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketProfiles)).Put([]byte(p.Name), data)
	})
}

// GetProfile retrieves a stored profile by name. Returns nil when no profile
// with that name exists.
func (s *Store) GetProfile(name string) (*portset.Profile, error) {
	var profile *portset.Profile

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketProfiles)).Get([]byte(name))
		if data == nil {
			return nil
		}

		var record ProfileRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return err
		}
		profile = &portset.Profile{Name: record.Name, PortsExpr: record.PortsExpr}
		return nil
	})

	return profile, err
}

// ListProfiles returns all stored profiles sorted by name.
func (s *Store) ListProfiles() ([]ProfileRecord, error) {
	var records []ProfileRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketProfiles)).ForEach(func(_, data []byte) error {
			var record ProfileRecord
			if err := json.Unmarshal(data, &record); err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}

// DeleteProfile removes a stored profile. Deleting an absent profile is an
// error so the command surface can report the typo.
func (s *Store) DeleteProfile(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketProfiles))
		if bucket.Get([]byte(name)) == nil {
			return fmt.Errorf("no profile named %q", name)
		}
		return bucket.Delete([]byte(name))
	})
}
