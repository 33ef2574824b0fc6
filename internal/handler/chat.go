package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alertlink/internal/middleware"
	"github.com/alertlink/internal/service"
)

type ChatHandler struct {
	chatSvc *service.ChatService
	authSvc *service.AuthService
}

func NewChatHandler(chatSvc *service.ChatService, authSvc *service.AuthService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc, authSvc: authSvc}
}

// List handles GET /{locale}/api/chats?q=. Filters by chat name or last
// message, most recent activity first.
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chatSvc.Search(r.Context(), r.URL.Query().Get("q"), middleware.GetLocale(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

// Get handles GET /{locale}/api/chats/{id}.
func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chatSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chat)
}

type DirectChatRequest struct {
	UserID string `json:"user_id"`
}

type DirectChatResponse struct {
	Chat    any  `json:"chat"`
	Created bool `json:"created"`
}

// CreateDirect handles POST /{locale}/api/chats/direct. Returns the existing
// direct chat with the target user or creates a new one.
func (h *ChatHandler) CreateDirect(w http.ResponseWriter, r *http.Request) {
	var req DirectChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	current, err := h.authSvc.CurrentUser(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	chat, created, err := h.chatSvc.SelectUser(r.Context(), current, req.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, DirectChatResponse{Chat: chat, Created: created})
}

// Delete handles DELETE /{locale}/api/chats/{id}.
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.chatSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	t := middleware.GetTranslator(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{
		"message": t.T("chatDeletedSuccess"),
	})
}
