package middleware

import (
	"context"
	"net/http"

	"github.com/alertlink/internal/logger"
	"github.com/alertlink/internal/model"
	"github.com/alertlink/internal/storage"
)

// SessionAuth authenticates a request by its X-Session-Id header (query
// session_id as a fallback) against the session store and puts the session id
// and role into the context. Missing or unauthenticated sessions get a
// localized 401.
func SessionAuth(store storage.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get("X-Session-Id")
			if sessionID == "" {
				sessionID = r.URL.Query().Get("session_id")
			}
			if sessionID == "" {
				deny(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}
			authed, err := store.IsAuthed(r.Context(), sessionID)
			if err != nil {
				logger.Errorf("session middleware IsAuthed session_id=%s: %v", MaskSessionID(sessionID), err)
				deny(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}
			if !authed {
				deny(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}
			role, err := store.GetRole(r.Context(), sessionID)
			if err != nil || !model.UserRole(role).Valid() {
				deny(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
			ctx = context.WithValue(ctx, RoleKey, model.UserRole(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin sessions with a localized 403. Runs after
// SessionAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetRole(r.Context()) != model.RoleAdmin {
			deny(w, r, http.StatusForbidden, "noPermission")
			return
		}
		next.ServeHTTP(w, r)
	})
}
