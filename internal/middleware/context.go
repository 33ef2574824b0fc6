package middleware

import (
	"context"

	"github.com/alertlink/internal/i18n"
	"github.com/alertlink/internal/model"
)

type contextKey string

const (
	SessionIDKey  contextKey = "session_id"
	RoleKey       contextKey = "role"
	LocaleKey     contextKey = "locale"
	TranslatorKey contextKey = "translator"
)

// GetSessionID returns the session id from the context (set by SessionAuth).
func GetSessionID(ctx context.Context) string {
	v, _ := ctx.Value(SessionIDKey).(string)
	return v
}

// GetRole returns the session role from the context (set by SessionAuth).
func GetRole(ctx context.Context) model.UserRole {
	v, _ := ctx.Value(RoleKey).(model.UserRole)
	return v
}

// GetLocale returns the request locale (set by Locale middleware).
func GetLocale(ctx context.Context) model.Locale {
	if v, ok := ctx.Value(LocaleKey).(model.Locale); ok {
		return v
	}
	return i18n.DefaultLocale
}

// GetTranslator returns the request translator (set by Locale middleware).
func GetTranslator(ctx context.Context) *i18n.Translator {
	if v, ok := ctx.Value(TranslatorKey).(*i18n.Translator); ok {
		return v
	}
	return i18n.Resolve(string(i18n.DefaultLocale))
}
