// Package i18n resolves a translator for a supported locale. It replaces the
// several divergent translation mechanisms of earlier revisions with one
// static catalog: flat key lookup, {{name}} placeholder substitution, and an
// explicit fallback chain locale → default locale → raw key.
package i18n

import (
	"strings"

	"github.com/alertlink/internal/model"
)

// DefaultLocale is used when a requested locale is unknown and as the
// translation fallback.
const DefaultLocale = model.LocaleEN

// Locales lists the supported locales.
var Locales = []model.Locale{model.LocaleEN, model.LocaleSQ}

// Normalize maps a raw locale tag to a supported locale. "al" is a legacy
// alias for Albanian; anything unknown resolves to the default locale.
func Normalize(raw string) model.Locale {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "en":
		return model.LocaleEN
	case "sq", "al":
		return model.LocaleSQ
	}
	return DefaultLocale
}

// Supported reports whether raw names a supported locale (aliases included).
func Supported(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "en", "sq", "al":
		return true
	}
	return false
}

// Translator translates keys for one locale.
type Translator struct {
	locale model.Locale
}

// Resolve returns the translator for the given locale tag.
func Resolve(raw string) *Translator {
	return &Translator{locale: Normalize(raw)}
}

// Locale returns the translator's locale.
func (t *Translator) Locale() model.Locale { return t.locale }

// T looks up key in the catalog for the translator's locale, substituting
// {{name}} placeholders from params. Missing keys fall back to the default
// locale, then to the raw key itself.
func (t *Translator) T(key string, params ...map[string]string) string {
	s, ok := catalog[t.locale][key]
	if !ok {
		s, ok = catalog[DefaultLocale][key]
	}
	if !ok {
		s = key
	}
	for _, p := range params {
		for name, val := range p {
			s = strings.ReplaceAll(s, "{{"+name+"}}", val)
		}
	}
	return s
}

// RoleKey returns the translation key for a user role display name.
func RoleKey(role model.UserRole) string {
	switch role {
	case model.RoleAdmin:
		return "roleAdmin"
	case model.RoleResponder:
		return "roleResponder"
	case model.RoleObserver:
		return "roleObserver"
	}
	return string(role)
}
