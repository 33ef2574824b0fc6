package middleware

import (
	"encoding/json"
	"net/http"
)

// deny writes a JSON rejection before the handler chain runs. The dashboard
// path tells the client where to navigate after an auth failure.
func deny(w http.ResponseWriter, r *http.Request, status int, messageKey string) {
	t := GetTranslator(r.Context())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":     t.T(messageKey),
		"dashboard": "/" + string(GetLocale(r.Context())) + "/dashboard",
	})
}
