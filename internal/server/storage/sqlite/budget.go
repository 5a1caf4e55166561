package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
)

// CreateBudget stores a new budget document together with its access list
func (s *Storage) CreateBudget(ctx context.Context, budget *models.Budget) error {
	budget.ID = uuid.NewString()
	budget.Version = 1

	document, err := json.Marshal(budget)
	if err != nil {
		return fmt.Errorf("failed to marshal budget: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	now := s.now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO budgets (id, owner_uuid, document, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, budget.ID, budget.OwnerUUID, string(document), budget.Version, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert budget: %w", err)
	}

	if err := insertAccess(ctx, tx, budget); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit budget: %w", err)
	}

	return nil
}

// GetBudget retrieves a budget by ID
func (s *Storage) GetBudget(ctx context.Context, id string) (*models.Budget, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, storage.ErrInvalidID
	}

	var (
		document string
		version  int64
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT document, version FROM budgets WHERE id = ?`, id,
	).Scan(&document, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return decodeBudget(id, document, version)
}

// ListUserBudgets returns budgets owned by or shared with the user.
// A negative limit means no limit.
func (s *Storage) ListUserBudgets(ctx context.Context, userUUID string, limit, offset int) ([]*models.Budget, int, error) {
	const filter = `
		FROM budgets b
		WHERE b.owner_uuid = ?
		   OR EXISTS (SELECT 1 FROM budget_access a WHERE a.budget_id = b.id AND a.user_uuid = ?)
	`

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) `+filter, userUUID, userUUID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count budgets: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT b.id, b.document, b.version `+filter+` ORDER BY b.created_at DESC, b.id LIMIT ? OFFSET ?`,
		userUUID, userUUID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	budgets := make([]*models.Budget, 0)

	for rows.Next() {
		var (
			id, document string
			version      int64
		)
		if err := rows.Scan(&id, &document, &version); err != nil {
			return nil, 0, fmt.Errorf("failed to scan budget: %w", err)
		}

		budget, err := decodeBudget(id, document, version)
		if err != nil {
			return nil, 0, err
		}
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return budgets, total, nil
}

// SaveBudget overwrites the whole document if the version still matches
func (s *Storage) SaveBudget(ctx context.Context, budget *models.Budget) error {
	if _, err := uuid.Parse(budget.ID); err != nil {
		return storage.ErrInvalidID
	}

	expected := budget.Version
	next := *budget
	next.Version = expected + 1

	document, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("failed to marshal budget: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	result, err := tx.ExecContext(ctx, `
		UPDATE budgets
		SET document = ?, owner_uuid = ?, version = ?, updated_at = ?
		WHERE id = ? AND version = ?
	`, string(document), next.OwnerUUID, next.Version, s.now(), next.ID, expected)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		// отличаем "нет такого бюджета" от "бюджет уже изменили"
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM budgets WHERE id = ?`, next.ID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check budget: %w", err)
		}
		return storage.ErrVersionConflict
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM budget_access WHERE budget_id = ?`, next.ID); err != nil {
		return fmt.Errorf("failed to clear budget access: %w", err)
	}

	if err := insertAccess(ctx, tx, &next); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit budget: %w", err)
	}

	budget.Version = next.Version

	return nil
}

// DeleteBudget deletes a budget, access rows go with it (ON DELETE CASCADE)
func (s *Storage) DeleteBudget(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.ErrInvalidID
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
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

func insertAccess(ctx context.Context, tx *sql.Tx, budget *models.Budget) error {
	for _, ua := range budget.UserAccess {
		_, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO budget_access (budget_id, user_uuid, access_level)
			VALUES (?, ?, ?)
		`, budget.ID, ua.UserUUID, string(ua.AccessLevel))
		if err != nil {
			return fmt.Errorf("failed to insert budget access: %w", err)
		}
	}
	return nil
}

func decodeBudget(id, document string, version int64) (*models.Budget, error) {
	budget := &models.Budget{}
	if err := json.Unmarshal([]byte(document), budget); err != nil {
		return nil, fmt.Errorf("failed to unmarshal budget %s: %w", id, err)
	}

	// колонки - источник истины для id и версии
	budget.ID = id
	budget.Version = version

	return budget, nil
}
