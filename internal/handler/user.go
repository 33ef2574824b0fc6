package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alertlink/internal/middleware"
	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/service"
)

type UserHandler struct {
	userSvc *service.UserService
	authSvc *service.AuthService
}

func NewUserHandler(userSvc *service.UserService, authSvc *service.AuthService) *UserHandler {
	return &UserHandler{userSvc: userSvc, authSvc: authSvc}
}

// List handles GET /{locale}/api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type AddUserRequest struct {
	Name model.LocalizedString `json:"name"`
	Role model.UserRole        `json:"role"`
}

// Add handles POST /{locale}/api/users (admin only).
func (h *UserHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	user, err := h.userSvc.Add(r.Context(), service.AddInput{Name: req.Name, Role: req.Role})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	t := middleware.GetTranslator(r.Context())
	writeJSON(w, http.StatusCreated, map[string]any{
		"user": user,
		"message": t.T("userAddedSuccess", map[string]string{
			"name": user.Name.Resolve(middleware.GetLocale(r.Context())),
		}),
	})
}

// Delete handles DELETE /{locale}/api/users/{id} (admin only). Deleting the
// session's own account is refused.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current, err := h.authSvc.CurrentUser(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := h.userSvc.Delete(r.Context(), current.ID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	t := middleware.GetTranslator(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"message": t.T("userDeletedSuccess")})
}
