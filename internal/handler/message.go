package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alertlink/internal/middleware"
	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/service"
)

type MessageHandler struct {
	msgSvc  *service.MessageService
	authSvc *service.AuthService
}

func NewMessageHandler(msgSvc *service.MessageService, authSvc *service.AuthService) *MessageHandler {
	return &MessageHandler{msgSvc: msgSvc, authSvc: authSvc}
}

// List handles GET /{locale}/api/chats/{id}/messages.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	current, err := h.authSvc.CurrentUser(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	messages, err := h.msgSvc.List(r.Context(), chi.URLParam(r, "id"), current.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

type SendMessageRequest struct {
	Content  string            `json:"content"`
	Type     model.MessageType `json:"type"`
	FileName string            `json:"file_name,omitempty"`
	FileURL  string            `json:"file_url,omitempty"`
	Location *model.Location   `json:"location,omitempty"`
}

// Send handles POST /{locale}/api/chats/{id}/messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Type == "" {
		req.Type = model.MessageTypeText
	}
	current, err := h.authSvc.CurrentUser(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	msg, err := h.msgSvc.Send(r.Context(), chi.URLParam(r, "id"), current, service.SendInput{
		Content:  req.Content,
		Type:     req.Type,
		FileName: req.FileName,
		FileURL:  req.FileURL,
		Location: req.Location,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
