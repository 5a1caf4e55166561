package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
)

// CreateToken inserts a whitelist record keyed by user UUID
func (s *Storage) CreateToken(ctx context.Context, record *models.RefreshTokenRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRefreshTokens)

		key := []byte(record.UserUUID)
		if bucket.Get(key) != nil {
			return storage.ErrAlreadyExists
		}

		return putRecord(bucket, record)
	})
}

// GetToken retrieves the whitelist record of a user
func (s *Storage) GetToken(ctx context.Context, userUUID string) (*models.RefreshTokenRecord, error) {
	var record *models.RefreshTokenRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRefreshTokens).Get([]byte(userUUID))
		if data == nil {
			return storage.ErrNotFound
		}

		var err error
		record, err = decodeRecord(data)
		return err
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// UpdateToken overwrites an existing record
func (s *Storage) UpdateToken(ctx context.Context, record *models.RefreshTokenRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRefreshTokens)

		if bucket.Get([]byte(record.UserUUID)) == nil {
			return storage.ErrNotFound
		}

		return putRecord(bucket, record)
	})
}

// DeleteToken removes the whitelist record of a user
func (s *Storage) DeleteToken(ctx context.Context, userUUID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRefreshTokens)

		key := []byte(userUUID)
		if bucket.Get(key) == nil {
			return storage.ErrNotFound
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete refresh token: %w", err)
		}

		return nil
	})
}

// ListTokens returns one page of records in key order and the total count
func (s *Storage) ListTokens(ctx context.Context, page, perPage int) ([]*models.RefreshTokenRecord, int, error) {
	if page < 1 || perPage < 1 {
		return nil, 0, fmt.Errorf("invalid page %d/%d", page, perPage)
	}

	var (
		records []*models.RefreshTokenRecord
		total   int
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRefreshTokens)
		total = bucket.Stats().KeyN

		skip := (page - 1) * perPage
		c := bucket.Cursor()
		for k, v := c.First(); k != nil && len(records) < perPage; k, v = c.Next() {
			if skip > 0 {
				skip--
				continue
			}

			record, err := decodeRecord(v)
			if err != nil {
				return err
			}
			records = append(records, record)
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func putRecord(bucket *bbolt.Bucket, record *models.RefreshTokenRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal refresh token: %w", err)
	}

	if err := bucket.Put([]byte(record.UserUUID), data); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	return nil
}

func decodeRecord(data []byte) (*models.RefreshTokenRecord, error) {
	record := &models.RefreshTokenRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal refresh token: %w", err)
	}
	return record, nil
}
