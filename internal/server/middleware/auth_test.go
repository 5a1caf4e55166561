package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/budgetkeeper/internal/server/handlers"
	"github.com/iudanet/budgetkeeper/internal/server/jwt"
	"github.com/iudanet/budgetkeeper/internal/server/session"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

const testUUID = "3f2b8c1e-9d4a-4e6b-8a7c-1b2c3d4e5f60"

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTokens(now *time.Time) *jwt.Service {
	return jwt.NewService(jwt.Config{
		Secret:          []byte("test-secret-key"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}).WithClock(func() time.Time { return *now })
}

// echoUser отвечает UUID пользователя из контекста
func echoUser(w http.ResponseWriter, r *http.Request) {
	userUUID, _ := handlers.UserUUID(r.Context())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(userUUID))
}

func TestRequireAuth(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	tokens := newTokens(&now)
	manager := session.NewManager(nil, nil, tokens, setupTestLogger())

	access, _, err := tokens.SignAccessToken(testUUID)
	require.NoError(t, err)
	refresh, _, err := tokens.SignRefreshToken(testUUID, 0)
	require.NoError(t, err)

	handler := RequireAuth(setupTestLogger(), manager)(http.HandlerFunc(echoUser))

	tests := []struct {
		name       string
		header     string
		wantReason string
		advance    time.Duration
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + access, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantReason: session.TokenInvalid},
		{name: "wrong scheme", header: "Basic " + access, wantStatus: http.StatusUnauthorized, wantReason: session.TokenInvalid},
		{name: "garbage", header: "Bearer not.a.token", wantStatus: http.StatusUnauthorized, wantReason: session.TokenInvalid},
		{name: "refresh token", header: "Bearer " + refresh, wantStatus: http.StatusUnauthorized, wantReason: session.TokenInvalid},
		{name: "expired", header: "Bearer " + access, advance: time.Hour, wantStatus: http.StatusUnauthorized, wantReason: session.TokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := now
			now = now.Add(tt.advance)
			defer func() { now = saved }()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, testUUID, w.Body.String())
				return
			}

			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantReason, resp.Error)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	now := time.Now()
	tokens := newTokens(&now)
	access, _, err := tokens.SignAccessToken(testUUID)
	require.NoError(t, err)

	handler := OptionalAuth(tokens)(http.HandlerFunc(echoUser))

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "valid token", header: "Bearer " + access, want: testUUID},
		{name: "anonymous", header: "", want: ""},
		{name: "invalid token passes as anonymous", header: "Bearer broken", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}
