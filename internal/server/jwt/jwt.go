// Package jwt signs and verifies the access and refresh tokens.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken токен пустой, поврежден, подписан другим ключом или не того типа
	ErrInvalidToken = errors.New("token not valid")
	// ErrTokenExpired срок действия токена (validTo) истек
	ErrTokenExpired = errors.New("token expired")
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// AccessClaims payload access токена
type AccessClaims struct {
	ValidTo time.Time `json:"-"`
	UUID    string    `json:"uuid"`
}

// RefreshClaims payload refresh токена
type RefreshClaims struct {
	ValidTo        time.Time `json:"-"`
	UUID           string    `json:"uuid"`
	SequenceNumber int64     `json:"sequenceNumber"`
}

// claims общий формат, который реально попадает в токен
type claims struct {
	jwt.RegisteredClaims
	UUID           string `json:"uuid"`
	Type           string `json:"typ"`
	SequenceNumber int64  `json:"sequenceNumber,omitempty"`
	ValidTo        int64  `json:"validTo"` // unix millis
}

// Config содержит конфигурацию для JWT
type Config struct {
	Secret          []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Service provides token generation and validation
type Service struct {
	now func() time.Time
	cfg Config
}

// NewService creates a new JWT service
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg, now: time.Now}
}

// WithClock подменяет источник времени (для тестов)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// AccessTokenTTL returns the configured access token lifetime
func (s *Service) AccessTokenTTL() time.Duration {
	return s.cfg.AccessTokenTTL
}

// SignAccessToken issues an access token valid for AccessTokenTTL
func (s *Service) SignAccessToken(userUUID string) (string, AccessClaims, error) {
	validTo := s.now().Add(s.cfg.AccessTokenTTL)

	token, err := s.sign(claims{
		UUID:    userUUID,
		Type:    tokenTypeAccess,
		ValidTo: validTo.UnixMilli(),
	})
	if err != nil {
		return "", AccessClaims{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, AccessClaims{UUID: userUUID, ValidTo: time.UnixMilli(validTo.UnixMilli())}, nil
}

// SignRefreshToken issues a refresh token carrying the sequence number
func (s *Service) SignRefreshToken(userUUID string, sequenceNumber int64) (string, RefreshClaims, error) {
	validTo := s.now().Add(s.cfg.RefreshTokenTTL)

	token, err := s.sign(claims{
		UUID:           userUUID,
		Type:           tokenTypeRefresh,
		SequenceNumber: sequenceNumber,
		ValidTo:        validTo.UnixMilli(),
	})
	if err != nil {
		return "", RefreshClaims{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return token, RefreshClaims{
		UUID:           userUUID,
		SequenceNumber: sequenceNumber,
		ValidTo:        time.UnixMilli(validTo.UnixMilli()),
	}, nil
}

// VerifyAccessToken returns ErrInvalidToken or ErrTokenExpired on failure
func (s *Service) VerifyAccessToken(token string) (*AccessClaims, error) {
	c, err := s.verify(token, tokenTypeAccess)
	if err != nil {
		return nil, err
	}
	return &AccessClaims{UUID: c.UUID, ValidTo: time.UnixMilli(c.ValidTo)}, nil
}

// VerifyRefreshToken returns ErrInvalidToken or ErrTokenExpired on failure
func (s *Service) VerifyRefreshToken(token string) (*RefreshClaims, error) {
	c, err := s.verify(token, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	return &RefreshClaims{
		UUID:           c.UUID,
		SequenceNumber: c.SequenceNumber,
		ValidTo:        time.UnixMilli(c.ValidTo),
	}, nil
}

func (s *Service) sign(c claims) (string, error) {
	c.IssuedAt = jwt.NewNumericDate(s.now())
	c.Issuer = "budgetkeeper"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.cfg.Secret)
}

func (s *Service) verify(tokenString, wantType string) (*claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if c.Type != wantType || c.UUID == "" {
		return nil, ErrInvalidToken
	}

	// validTo сравниваем явно, exp в токене не выставляется
	if !s.now().Before(time.UnixMilli(c.ValidTo)) {
		return nil, ErrTokenExpired
	}

	return c, nil
}
