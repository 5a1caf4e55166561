package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

func TestResponder_SendError(t *testing.T) {
	cause := errors.New("driver: disk I/O error")

	tests := []struct {
		err         error
		name        string
		wantError   string
		wantMessage string
		wantCode    int
	}{
		{
			name:        "invalid argument",
			err:         apperr.New(apperr.InvalidArgument, "Budget name is required.", "Budget constructor"),
			wantCode:    http.StatusBadRequest,
			wantError:   "Bad Request",
			wantMessage: "Budget name is required.",
		},
		{
			name:        "unauthorized",
			err:         apperr.New(apperr.Unauthorized, "Invalid credentials.", "Session.Login"),
			wantCode:    http.StatusUnauthorized,
			wantError:   "Unauthorized",
			wantMessage: "Invalid credentials.",
		},
		{
			name:        "forbidden",
			err:         apperr.New(apperr.Forbidden, "User does not have access to the budget.", "AccessControl.CheckAccess"),
			wantCode:    http.StatusForbidden,
			wantError:   "Forbidden",
			wantMessage: "User does not have access to the budget.",
		},
		{
			name:        "not found",
			err:         apperr.New(apperr.NotFound, "Budget not found.", "BudgetService.GetByID"),
			wantCode:    http.StatusNotFound,
			wantError:   "Not Found",
			wantMessage: "Budget not found.",
		},
		{
			name:        "conflict",
			err:         apperr.New(apperr.Conflict, "User already exists.", "UserService.Register"),
			wantCode:    http.StatusConflict,
			wantError:   "Conflict",
			wantMessage: "User already exists.",
		},
		{
			name:        "internal domain error",
			err:         apperr.Wrap(apperr.Internal, "Failed to create the budget.", cause, "BudgetService.Create"),
			wantCode:    http.StatusInternalServerError,
			wantError:   "Internal Server Error",
			wantMessage: "Failed to create the budget.",
		},
		{
			name:        "unknown error hides its text",
			err:         cause,
			wantCode:    http.StatusInternalServerError,
			wantError:   "Internal Server Error",
			wantMessage: "Internal Server Error",
		},
	}

	h := &responder{logger: setupTestLogger()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.sendError(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Empty(t, resp.Origin)
			assert.Empty(t, resp.Cause)
		})
	}
}

func TestResponder_SendError_Development(t *testing.T) {
	h := &responder{logger: setupTestLogger(), dev: true}
	err := apperr.Wrap(apperr.Internal, "Failed to create the budget.", errors.New("disk full"), "BudgetService.Create")

	w := httptest.NewRecorder()
	h.sendError(w, httptest.NewRequest(http.MethodPost, "/api/v1/budgets", nil), err)

	resp := decodeError(t, w)
	assert.Equal(t, "BudgetService.Create", resp.Origin)
	assert.Equal(t, "disk full", resp.Cause)
}

func TestResponder_Decode(t *testing.T) {
	h := &responder{logger: setupTestLogger()}

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "empty body", body: "", wantMessage: "Request body is required."},
		{name: "broken json", body: `{"email":`, wantMessage: "Invalid request body."},
		{name: "wrong type", body: `{"email": 42}`, wantMessage: "Invalid request body."},
		{name: "validation", body: `{"email":"not-an-email","password":"x"}`, wantMessage: "email: Invalid email format"},
		{name: "required", body: `{"email":"bob@example.com"}`, wantMessage: "password: This field is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst api.LoginRequest
			err := h.decode(req, &dst)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		want       *models.Pagination
		name       string
		query      string
		maxPerPage int
		wantErr    bool
	}{
		{name: "absent", query: "", want: nil},
		{name: "both", query: "?page=2&perPage=5", want: &models.Pagination{Page: 2, PerPage: 5}},
		{name: "page only", query: "?page=3", want: &models.Pagination{Page: 3, PerPage: models.DefaultPerPage}},
		{name: "per page only", query: "?perPage=7", want: &models.Pagination{Page: 1, PerPage: 7}},
		{name: "capped", query: "?page=1&perPage=50", maxPerPage: 10, want: &models.Pagination{Page: 1, PerPage: 10}},
		{name: "not a number", query: "?page=two&perPage=5", wantErr: true},
		{name: "zero page", query: "?page=0&perPage=5", wantErr: true},
		{name: "negative per page", query: "?page=1&perPage=-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets"+tt.query, nil)
			got, err := parsePagination(req, tt.maxPerPage)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Invalid pagination.", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathIndex(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetPathValue("categoryid", "3")
	req.SetPathValue("expenseid", "abc")

	assert.Equal(t, 3, pathIndex(req, "categoryid"))
	assert.Equal(t, -1, pathIndex(req, "expenseid"))
	assert.Equal(t, -1, pathIndex(req, "missing"))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{name: "lower case scheme", header: "bearer abc", want: "abc", ok: true},
		{name: "missing", header: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "no token", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			got, ok := BearerToken(req)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
