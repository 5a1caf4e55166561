package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/validation"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// responder пишет ответы в общем конверте. Встраивается во все handlers.
type responder struct {
	logger *slog.Logger
	// dev включает origin и cause в ответах с ошибкой
	dev bool
}

// WriteJSON пишет v с заданным статусом
func WriteJSON(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}

func (h *responder) sendJSON(w http.ResponseWriter, statusCode int, v any) {
	if err := WriteJSON(w, statusCode, v); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func (h *responder) sendData(w http.ResponseWriter, statusCode int, message string, data any) {
	h.sendJSON(w, statusCode, api.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Message:    message,
		Data:       data,
	})
}

func (h *responder) sendPage(w http.ResponseWriter, message string, data any, page *api.PageInfo) {
	h.sendJSON(w, http.StatusOK, api.Response{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		Message:    message,
		Data:       data,
		Pagination: page,
	})
}

// sendError отображает доменную ошибку в статус. Сообщения прочих ошибок
// наружу не попадают.
func (h *responder) sendError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		h.logger.ErrorContext(r.Context(), "unhandled error",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		h.sendJSON(w, http.StatusInternalServerError, api.ErrorResponse{
			Error:   http.StatusText(http.StatusInternalServerError),
			Message: http.StatusText(http.StatusInternalServerError),
		})
		return
	}

	status := appErr.Code()
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), appErr.Message,
			slog.String("origin", appErr.Origin), slog.Any("cause", appErr.Cause))
	}

	resp := api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: appErr.Message,
	}
	if h.dev {
		resp.Origin = appErr.Origin
		if appErr.Cause != nil {
			resp.Cause = appErr.Cause.Error()
		}
	}
	h.sendJSON(w, status, resp)
}

// decode читает JSON тело и валидирует его тегами validate
func (h *responder) decode(r *http.Request, dst any) error {
	const origin = "handlers.decode"

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Wrap(apperr.InvalidArgument, "Request body is required.", err, origin)
		}
		return apperr.Wrap(apperr.InvalidArgument, "Invalid request body.", err, origin)
	}
	if err := validation.Struct(dst); err != nil {
		return apperr.Wrap(apperr.InvalidArgument, err.Error(), err, origin)
	}
	return nil
}

// actor UUID из контекста. Маршруты без RequireAuth его не получают.
func (h *responder) actor(r *http.Request) (string, error) {
	userUUID, ok := UserUUID(r.Context())
	if !ok {
		return "", apperr.New(apperr.Unauthorized, "Not logged in.", "handlers.actor")
	}
	return userUUID, nil
}

// pathIndex разбирает индекс из пути. Нечисловое значение дает -1,
// такой индекс доменные функции считают несуществующим.
func pathIndex(r *http.Request, name string) int {
	idx, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return -1
	}
	return idx
}

// parsePagination читает page и perPage. Без обоих параметров возвращает nil.
func parsePagination(r *http.Request, maxPerPage int) (*models.Pagination, error) {
	q := r.URL.Query()
	pageStr, perPageStr := q.Get("page"), q.Get("perPage")
	if pageStr == "" && perPageStr == "" {
		return nil, nil
	}

	p := &models.Pagination{Page: 1, PerPage: models.DefaultPerPage}
	var err error
	if pageStr != "" {
		if p.Page, err = strconv.Atoi(pageStr); err != nil {
			return nil, invalidPagination(err)
		}
	}
	if perPageStr != "" {
		if p.PerPage, err = strconv.Atoi(perPageStr); err != nil {
			return nil, invalidPagination(err)
		}
	}
	if !p.Valid() {
		return nil, invalidPagination(fmt.Errorf("page=%d perPage=%d", p.Page, p.PerPage))
	}
	if maxPerPage > 0 {
		p.PerPage = min(p.PerPage, maxPerPage)
	}
	return p, nil
}

func invalidPagination(cause error) error {
	return apperr.Wrap(apperr.InvalidArgument, "Invalid pagination.", cause, "handlers.parsePagination")
}

// BearerToken извлекает токен из заголовка Authorization: Bearer <token>
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
