// Package session issues access and refresh tokens and rotates refresh
// tokens through the whitelist.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/jwt"
)

//go:generate moq -out authenticator_mock.go . Authenticator

// Authenticator checks user credentials
type Authenticator interface {
	// Authenticate returns the user or an Unauthorized error
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// Whitelist is the refresh token whitelist the manager relies on
type Whitelist interface {
	AddToken(ctx context.Context, userUUID string, sequenceNumber int64) error
	AdvanceSequenceNumber(ctx context.Context, userUUID string) error
	Validate(ctx context.Context, userUUID string, sequenceNumber int64) error
	Exists(ctx context.Context, userUUID string) (bool, error)
	Remove(ctx context.Context, userUUID string) error
	Cleanup(ctx context.Context) (int, error)
}

// Tokens пара выданных токенов
type Tokens struct {
	AccessToken  string
	RefreshToken string
	AccessClaims jwt.AccessClaims
	ExpiresIn    time.Duration // время жизни access token
}

// LoginResult результат успешного входа
type LoginResult struct {
	User *models.User
	Tokens
}

// Manager drives the per-user session:
// logged out -> logged in (seq 1) -> logged in (seq N+1) -> logged out.
type Manager struct {
	auth      Authenticator
	whitelist Whitelist
	tokens    *jwt.Service
	logger    *slog.Logger
}

// NewManager creates a session manager
func NewManager(auth Authenticator, whitelist Whitelist, tokens *jwt.Service, logger *slog.Logger) *Manager {
	return &Manager{
		auth:      auth,
		whitelist: whitelist,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login checks the credentials and starts a new session.
// A previous session of the same user is discarded.
func (m *Manager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const origin = "Session.Login"

	user, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		if apperr.IsKind(err, apperr.Internal) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.Unauthorized, "Invalid credentials.", err, origin)
	}

	// старая сессия больше не нужна, ошибку игнорируем
	if err := m.whitelist.Remove(ctx, user.UUID); err != nil {
		m.logger.DebugContext(ctx, "failed to remove previous session",
			slog.String("user_uuid", user.UUID), slog.Any("error", err))
	}

	tokens, err := m.issue(user.UUID, 0, origin)
	if err != nil {
		return nil, err
	}

	if err := m.whitelist.AddToken(ctx, user.UUID, 1); err != nil {
		if _, ok := apperr.As(err); ok && !apperr.IsKind(err, apperr.Internal) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to add token.", err, origin)
	}

	m.logger.InfoContext(ctx, "user logged in", slog.String("user_uuid", user.UUID))

	return &LoginResult{User: user, Tokens: *tokens}, nil
}

// Refresh exchanges a refresh token for a new pair. Presenting a token that
// was already rotated ends the session.
func (m *Manager) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	const origin = "Session.Refresh"

	claims, err := m.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthorized, tokenReason(err), err, origin)
	}

	// токен с номером N выдан, когда в whitelist записано N+1
	next := claims.SequenceNumber + 1
	if err := m.whitelist.Validate(ctx, claims.UUID, next); err != nil {
		m.logger.WarnContext(ctx, "refresh token rejected, session revoked",
			slog.String("user_uuid", claims.UUID), slog.Any("error", err))
		if rmErr := m.whitelist.Remove(ctx, claims.UUID); rmErr != nil {
			m.logger.DebugContext(ctx, "failed to revoke session", slog.Any("error", rmErr))
		}
		return nil, apperr.Wrap(apperr.Unauthorized, "Invalid token.", err, origin)
	}

	tokens, err := m.issue(claims.UUID, next, origin)
	if err != nil {
		return nil, err
	}

	if err := m.whitelist.AdvanceSequenceNumber(ctx, claims.UUID); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to advance sequence number.", err, origin)
	}

	return tokens, nil
}

// Logout ends the session of the user
func (m *Manager) Logout(ctx context.Context, userUUID string) error {
	const origin = "Session.Logout"

	exists, err := m.whitelist.Exists(ctx, userUUID)
	if err != nil || !exists {
		return apperr.Wrap(apperr.Forbidden, "Not logged in.", err, origin)
	}

	if err := m.whitelist.Remove(ctx, userUUID); err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to remove token.", err, origin)
	}

	m.logger.InfoContext(ctx, "user logged out", slog.String("user_uuid", userUUID))
	return nil
}

// Cleanup removes expired sessions
func (m *Manager) Cleanup(ctx context.Context) error {
	if _, err := m.whitelist.Cleanup(ctx); err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to cleanup tokens.", err, "Session.Cleanup")
	}
	return nil
}

// VerifyAccessToken returns the user UUID carried by a valid access token
func (m *Manager) VerifyAccessToken(token string) (*jwt.AccessClaims, error) {
	claims, err := m.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthorized, tokenReason(err), err, "Session.VerifyAccessToken")
	}
	return claims, nil
}

func (m *Manager) issue(userUUID string, sequenceNumber int64, origin string) (*Tokens, error) {
	access, accessClaims, err := m.tokens.SignAccessToken(userUUID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to issue token.", err, origin)
	}

	refresh, _, err := m.tokens.SignRefreshToken(userUUID, sequenceNumber)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to issue token.", err, origin)
	}

	return &Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessClaims: accessClaims,
		ExpiresIn:    m.tokens.AccessTokenTTL(),
	}, nil
}

// причины 401 для невалидного токена
const (
	TokenExpired = "Token expired"
	TokenInvalid = "Token not valid"
)

func tokenReason(err error) string {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return TokenExpired
	}
	return TokenInvalid
}
