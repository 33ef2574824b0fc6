package model

import "time"

// Session is the authenticated state minted by the login endpoint. It mirrors
// the browser-local flags of the original client (role, auth sentinel,
// language preference) and is the only state surviving a process restart when
// backed by Redis.
type Session struct {
	ID        string    `json:"id"`
	Role      UserRole  `json:"role"`
	Language  Locale    `json:"language,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
