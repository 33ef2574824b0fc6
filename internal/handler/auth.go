package handler

import (
	"encoding/json"
	"net/http"

	"github.com/alertlink/internal/i18n"
	"github.com/alertlink/internal/middleware"
	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/service"
)

type AuthHandler struct {
	authSvc *service.AuthService
}

func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type LoginRequest struct {
	OTP      string `json:"otp"`
	Role     string `json:"role"`
	Language string `json:"language"`
}

type LoginResponse struct {
	SessionID string       `json:"session_id"`
	User      *model.User  `json:"user"`
	Locale    model.Locale `json:"locale"`
	Message   string       `json:"message"`
}

// Login handles POST /{locale}/api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Language == "" {
		req.Language = string(middleware.GetLocale(r.Context()))
	}
	result, err := h.authSvc.Login(r.Context(), req.OTP, req.Role, req.Language)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	t := i18n.Resolve(string(result.Session.Language))
	writeJSON(w, http.StatusOK, LoginResponse{
		SessionID: result.Session.ID,
		User:      result.User,
		Locale:    result.Session.Language,
		Message:   t.T("welcomeRole", map[string]string{"role": t.T(i18n.RoleKey(result.User.Role))}),
	})
}

// Logout handles POST /{locale}/api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if err := h.authSvc.Logout(r.Context(), sessionID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	t := middleware.GetTranslator(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"message": t.T("loggedOut")})
}

// Me handles GET /{locale}/api/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authSvc.CurrentUser(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type LanguageRequest struct {
	Language string `json:"language"`
}

// SetLanguage handles PUT /{locale}/api/language.
func (h *AuthHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req LanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !i18n.Supported(req.Language) {
		writeError(w, http.StatusBadRequest, "unsupported language")
		return
	}
	locale := i18n.Normalize(req.Language)
	if err := h.authSvc.SetLanguage(r.Context(), middleware.GetSessionID(r.Context()), locale); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]model.Locale{"locale": locale})
}
