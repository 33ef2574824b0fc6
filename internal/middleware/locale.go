package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alertlink/internal/i18n"
)

// Locale resolves the {locale} path segment into a locale and translator in
// the request context. Unknown tags fall back to the default locale, the
// legacy "al" tag resolves to "sq".
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "locale")
		locale := i18n.Normalize(raw)
		ctx := context.WithValue(r.Context(), LocaleKey, locale)
		ctx = context.WithValue(ctx, TranslatorKey, i18n.Resolve(raw))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
