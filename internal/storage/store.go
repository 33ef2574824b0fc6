package storage

import "context"

// SessionStore holds the per-session key/value state: the role, the auth
// sentinel and the language preference. These are the only values that
// survive a restart (when backed by Redis); all domain state is in-memory.
// Implementations: redis.Client, memory.Client (for -dev without Redis).
type SessionStore interface {
	SetRole(ctx context.Context, sessionID, role string) error
	GetRole(ctx context.Context, sessionID string) (string, error)
	SetAuth(ctx context.Context, sessionID string) error
	IsAuthed(ctx context.Context, sessionID string) (bool, error)
	SetLanguage(ctx context.Context, sessionID, lang string) error
	GetLanguage(ctx context.Context, sessionID string) (string, error)
	Clear(ctx context.Context, sessionID string) error
	Close() error
}
