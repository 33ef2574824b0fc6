package handler

import (
	"net/http"

	"github.com/alertlink/internal/i18n"
)

// NotFound answers unmatched routes with a localized JSON 404 pointing the
// client back to the dashboard. The locale comes from the first path segment
// when present.
func NotFound(w http.ResponseWriter, r *http.Request) {
	raw := ""
	path := r.URL.Path
	for len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			raw = path[:i]
			break
		}
	}
	if raw == "" {
		raw = path
	}
	t := i18n.Resolve(raw)
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error":     t.T("notFoundTitle"),
		"dashboard": "/" + string(t.Locale()) + "/dashboard",
	})
}
