package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
)

// CreateToken inserts a whitelist record
func (s *Storage) CreateToken(ctx context.Context, record *models.RefreshTokenRecord) error {
	query := `
		INSERT INTO refresh_tokens (user_uuid, sequence_number, expire_at)
		VALUES (?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.UserUUID,
		record.SequenceNumber,
		record.ExpireAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	return nil
}

// GetToken retrieves the whitelist record of a user
func (s *Storage) GetToken(ctx context.Context, userUUID string) (*models.RefreshTokenRecord, error) {
	query := `
		SELECT user_uuid, sequence_number, expire_at
		FROM refresh_tokens
		WHERE user_uuid = ?
	`

	record := &models.RefreshTokenRecord{}

	err := s.db.QueryRowContext(ctx, query, userUUID).Scan(
		&record.UserUUID,
		&record.SequenceNumber,
		&record.ExpireAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return record, nil
}

// UpdateToken overwrites sequence number and expiry
func (s *Storage) UpdateToken(ctx context.Context, record *models.RefreshTokenRecord) error {
	query := `
		UPDATE refresh_tokens
		SET sequence_number = ?, expire_at = ?
		WHERE user_uuid = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		record.SequenceNumber,
		record.ExpireAt,
		record.UserUUID,
	)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteToken removes the whitelist record of a user
func (s *Storage) DeleteToken(ctx context.Context, userUUID string) error {
	query := `DELETE FROM refresh_tokens WHERE user_uuid = ?`

	result, err := s.db.ExecContext(ctx, query, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// ListTokens returns one page of whitelist records and the total count
func (s *Storage) ListTokens(ctx context.Context, page, perPage int) ([]*models.RefreshTokenRecord, int, error) {
	if page < 1 || perPage < 1 {
		return nil, 0, fmt.Errorf("invalid page %d/%d", page, perPage)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM refresh_tokens`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count refresh tokens: %w", err)
	}

	query := `
		SELECT user_uuid, sequence_number, expire_at
		FROM refresh_tokens
		ORDER BY user_uuid
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query refresh tokens: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*models.RefreshTokenRecord

	for rows.Next() {
		record := &models.RefreshTokenRecord{}
		if err := rows.Scan(
			&record.UserUUID,
			&record.SequenceNumber,
			&record.ExpireAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan token: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, total, nil
}
