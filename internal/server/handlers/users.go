package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/session"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

// UserHandler обрабатывает регистрацию, вход и профиль
type UserHandler struct {
	users    UserService
	sessions SessionManager
	responder
}

// NewUserHandler создает handler пользователей
func NewUserHandler(users UserService, sessions SessionManager, logger *slog.Logger, dev bool) *UserHandler {
	return &UserHandler{
		users:     users,
		sessions:  sessions,
		responder: responder{logger: logger, dev: dev},
	}
}

// Register обрабатывает POST /api/v1/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusCreated, "User registered successfully", userResponse(user))
}

// Login обрабатывает POST /api/v1/users/login.
// Уже аутентифицированный запрос отклоняется до проверки пароля.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserUUID(r.Context()); ok {
		h.sendData(w, http.StatusForbidden,
			"To save power by avoiding unnecessary cryptographic operations, please logout first.", nil)
		return
	}

	var req api.LoginRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}

	result, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "User logged in successfully", api.LoginResponse{
		User:          userResponse(result.User),
		TokenResponse: tokenResponse(&result.Tokens),
	})
}

// Refresh обрабатывает POST /api/v1/users/refresh, refresh token в Authorization
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token, ok := BearerToken(r)
	if !ok {
		h.sendJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: session.TokenInvalid})
		return
	}

	tokens, err := h.sessions.Refresh(r.Context(), token)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "Tokens refreshed successfully", tokenResponse(tokens))
}

// Logout обрабатывает GET /api/v1/users/logout.
// Access token остается валидным до истечения срока.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if err := h.sessions.Logout(r.Context(), userUUID); err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "User logged out successfully", nil)
}

// Update обрабатывает PUT /api/v1/users
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var req api.UpdateUserRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}

	user, err := h.users.Update(r.Context(), userUUID, models.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "User updated successfully", userResponse(user))
}

// Delete обрабатывает DELETE /api/v1/users и завершает сессию
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if err := h.users.Delete(ctx, userUUID); err != nil {
		h.sendError(w, r, err)
		return
	}

	if err := h.sessions.Logout(ctx, userUUID); err != nil {
		h.logger.DebugContext(ctx, "no session to end for deleted user",
			slog.String("user_uuid", userUUID), slog.Any("error", err))
	}

	h.sendData(w, http.StatusOK, "User removed successfully", nil)
}

func userResponse(u *models.User) api.UserResponse {
	return api.UserResponse{UUID: u.UUID, Username: u.Username, Email: u.Email}
}

func tokenResponse(t *session.Tokens) api.TokenResponse {
	return api.TokenResponse{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiresIn:    int64(t.ExpiresIn.Seconds()),
	}
}
