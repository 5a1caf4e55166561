// Package whitelist keeps one refresh token record per user and detects
// reuse of rotated refresh tokens.
package whitelist

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
)

const (
	// DefaultTTL время жизни записи whitelist
	DefaultTTL = 24 * time.Hour
	// DefaultPageSize размер страницы при очистке
	DefaultPageSize = 100
)

// Whitelist stores, per user, the number of refresh tokens issued in the
// current session. A refresh token is acceptable only while its embedded
// sequence number is the latest one.
type Whitelist struct {
	store    storage.TokenStorage
	logger   *slog.Logger
	now      func() time.Time
	ttl      time.Duration
	pageSize int
}

// New creates a whitelist on top of the token storage
func New(store storage.TokenStorage, ttl time.Duration, pageSize int, logger *slog.Logger) *Whitelist {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Whitelist{
		store:    store,
		logger:   logger,
		now:      time.Now,
		ttl:      ttl,
		pageSize: pageSize,
	}
}

// WithClock подменяет источник времени (для тестов)
func (w *Whitelist) WithClock(now func() time.Time) *Whitelist {
	w.now = now
	return w
}

// AddToken inserts a record for the user. Conflict if one already exists.
func (w *Whitelist) AddToken(ctx context.Context, userUUID string, sequenceNumber int64) error {
	const origin = "Whitelist.AddToken"

	err := w.store.CreateToken(ctx, &models.RefreshTokenRecord{
		UserUUID:       userUUID,
		SequenceNumber: sequenceNumber,
		ExpireAt:       w.now().Add(w.ttl),
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return apperr.Wrap(apperr.Conflict, "Token already exists.", err, origin)
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to add token.", err, origin)
	}

	return nil
}

// AdvanceSequenceNumber increments the sequence number and renews the expiry
func (w *Whitelist) AdvanceSequenceNumber(ctx context.Context, userUUID string) error {
	const origin = "Whitelist.AdvanceSequenceNumber"

	record, err := w.store.GetToken(ctx, userUUID)
	if err != nil {
		return notFoundOrInternal(err, origin)
	}

	record.SequenceNumber++
	record.ExpireAt = w.now().Add(w.ttl)

	if err := w.store.UpdateToken(ctx, record); err != nil {
		return notFoundOrInternal(err, origin)
	}

	return nil
}

// Validate succeeds only if the stored sequence number equals sequenceNumber
// and the record has not expired
func (w *Whitelist) Validate(ctx context.Context, userUUID string, sequenceNumber int64) error {
	const origin = "Whitelist.Validate"

	record, err := w.store.GetToken(ctx, userUUID)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.Wrap(apperr.Unauthorized, "Invalid token.", err, origin)
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to validate token.", err, origin)
	}

	if record.SequenceNumber != sequenceNumber || record.IsExpired(w.now()) {
		return apperr.New(apperr.Unauthorized, "Invalid token.", origin)
	}

	return nil
}

// Exists reports whether the user has a record
func (w *Whitelist) Exists(ctx context.Context, userUUID string) (bool, error) {
	_, err := w.store.GetToken(ctx, userUUID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Wrap(apperr.Internal, "Failed to check token.", err, "Whitelist.Exists")
	}
	return true, nil
}

// Remove deletes the record of the user. Removing a missing record is not an error.
func (w *Whitelist) Remove(ctx context.Context, userUUID string) error {
	err := w.store.DeleteToken(ctx, userUUID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return apperr.Wrap(apperr.Internal, "Failed to remove token.", err, "Whitelist.Remove")
	}
	return nil
}

// Cleanup deletes every expired record and returns how many were removed.
// Deletion starts only after every page has been scanned.
func (w *Whitelist) Cleanup(ctx context.Context) (int, error) {
	const origin = "Whitelist.Cleanup"

	now := w.now()
	var expired []string

	for page := 1; ; page++ {
		records, total, err := w.store.ListTokens(ctx, page, w.pageSize)
		if err != nil {
			return 0, apperr.Wrap(apperr.Internal, "Failed to list tokens.", err, origin)
		}

		for _, record := range records {
			if record.IsExpired(now) {
				expired = append(expired, record.UserUUID)
			}
		}

		if len(records) == 0 || page*w.pageSize >= total {
			break
		}
	}

	removed := 0
	for _, userUUID := range expired {
		err := w.store.DeleteToken(ctx, userUUID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return removed, apperr.Wrap(apperr.Internal, "Failed to remove token.", err, origin)
		}
		removed++
	}

	if removed > 0 {
		w.logger.InfoContext(ctx, "expired refresh tokens removed", slog.Int("count", removed))
	}

	return removed, nil
}

func notFoundOrInternal(err error, origin string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.Wrap(apperr.NotFound, "Token not found.", err, origin)
	}
	return apperr.Wrap(apperr.Internal, "Failed to update token.", err, origin)
}
