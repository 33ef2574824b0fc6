package model

import "time"

// Locale is a supported UI language tag.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleSQ Locale = "sq"
)

// LocalizedString is a name pair shown in English or Albanian depending on the
// active locale. SQ falls back to EN when empty.
type LocalizedString struct {
	EN string `json:"en"`
	SQ string `json:"sq"`
}

// Resolve returns the field for the given locale, falling back to EN.
func (s LocalizedString) Resolve(locale Locale) string {
	if locale == LocaleSQ && s.SQ != "" {
		return s.SQ
	}
	return s.EN
}

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleResponder UserRole = "responder"
	RoleObserver  UserRole = "observer"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleResponder, RoleObserver:
		return true
	}
	return false
}

type UserStatus string

const (
	StatusOnline  UserStatus = "online"
	StatusOffline UserStatus = "offline"
	StatusTyping  UserStatus = "typing"
)

type User struct {
	ID        string          `json:"id"`
	Name      LocalizedString `json:"name"`
	Role      UserRole        `json:"role"`
	AvatarURL string          `json:"avatar_url,omitempty"`
	Status    UserStatus      `json:"status,omitempty"`
	LastSeen  *time.Time      `json:"last_seen,omitempty"`
}
