package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

// WebhookHandler обрабатывает /api/v1/webhooks
type WebhookHandler struct {
	webhooks WebhookService
	responder
}

// NewWebhookHandler создает handler webhooks
func NewWebhookHandler(webhooks WebhookService, logger *slog.Logger, dev bool) *WebhookHandler {
	return &WebhookHandler{
		webhooks:  webhooks,
		responder: responder{logger: logger, dev: dev},
	}
}

// Register обрабатывает POST /api/v1/webhooks. Без ownerUUID владельцем
// считается текущий пользователь.
func (h *WebhookHandler) Register(w http.ResponseWriter, r *http.Request) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var req api.WebhookRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}

	hook := models.ExpenseAddedWebhook{
		OwnerUUID:         req.OwnerUUID,
		URL:               req.URL,
		Secret:            req.Secret,
		BudgetIDToMonitor: req.BudgetIDToMonitor,
		CategoryToMonitor: req.CategoryToMonitor,
	}
	if hook.OwnerUUID == "" {
		hook.OwnerUUID = userUUID
	}

	registered, err := h.webhooks.Register(r.Context(), hook, userUUID)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusCreated, "Webhook registered successfully", registered)
}

// Remove обрабатывает DELETE /api/v1/webhooks
func (h *WebhookHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if err := h.webhooks.Remove(r.Context(), userUUID); err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "Webhook removed successfully", nil)
}
