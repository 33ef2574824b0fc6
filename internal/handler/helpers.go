package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alertlink/internal/logger"
	"github.com/alertlink/internal/middleware"
	"github.com/alertlink/internal/repository"
	"github.com/alertlink/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorf("writeJSON encode: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service sentinels to HTTP statuses with a localized
// message where the catalog has one.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	t := middleware.GetTranslator(r.Context())
	switch {
	case errors.Is(err, service.ErrInvalidOTP):
		writeError(w, http.StatusUnauthorized, t.T("invalidOtp"))
	case errors.Is(err, service.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, t.T("invalidRole"))
	case errors.Is(err, service.ErrSelfDelete):
		writeError(w, http.StatusForbidden, t.T("cannotDeleteSelf"))
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		logger.Errorf("handler: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
