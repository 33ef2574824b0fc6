package handler

import (
	"encoding/json"
	"net/http"

	"github.com/alertlink/internal/middleware"
	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/service"
)

type AlertHandler struct {
	alertSvc *service.AlertService
	authSvc  *service.AuthService
}

func NewAlertHandler(alertSvc *service.AlertService, authSvc *service.AuthService) *AlertHandler {
	return &AlertHandler{alertSvc: alertSvc, authSvc: authSvc}
}

// List handles GET /{locale}/api/alerts?priority=low,high. Absent filter
// means every priority; visibility is restricted to the session role.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := service.ParsePriorityFilter(r.URL.Query().Get("priority"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	alerts, err := h.alertSvc.List(r.Context(), middleware.GetRole(r.Context()), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

type SendAlertRequest struct {
	Title       string              `json:"title"`
	Content     string              `json:"content"`
	Priority    model.AlertPriority `json:"priority"`
	TargetRoles []model.UserRole    `json:"target_roles"`
}

// Send handles POST /{locale}/api/alerts (admin only).
func (h *AlertHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	current, err := h.authSvc.CurrentUser(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	alert, err := h.alertSvc.Send(r.Context(), current, service.AlertInput{
		Title:       req.Title,
		Content:     req.Content,
		Priority:    req.Priority,
		TargetRoles: req.TargetRoles,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	t := middleware.GetTranslator(r.Context())
	writeJSON(w, http.StatusCreated, map[string]any{
		"alert":   alert,
		"message": t.T("alertSentSuccess"),
	})
}
