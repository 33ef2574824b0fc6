package model

import "time"

type ChatType string

const (
	ChatTypeDirect    ChatType = "direct"
	ChatTypeGroup     ChatType = "group"
	ChatTypeBroadcast ChatType = "broadcast_channel"
)

// LastMessage is the preview shown in the chat list; it drives recency sorting.
type LastMessage struct {
	Content    string          `json:"content"`
	Timestamp  time.Time       `json:"timestamp"`
	SenderName LocalizedString `json:"sender_name"`
}

type Chat struct {
	ID           string          `json:"id"`
	Name         LocalizedString `json:"name"`
	Type         ChatType        `json:"type"`
	Participants []User          `json:"participants"`
	Admins       []string        `json:"admins,omitempty"`
	LastMessage  *LastMessage    `json:"last_message,omitempty"`
	UnreadCount  int             `json:"unread_count,omitempty"`
	AvatarURL    string          `json:"avatar_url,omitempty"`
	IsEncrypted  bool            `json:"is_encrypted,omitempty"`
}

// HasParticipant reports whether userID is among the chat participants.
func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// IsDirectBetween reports whether c is the direct chat identified by the
// unordered pair {a, b}. A direct chat always has exactly two participants.
func (c *Chat) IsDirectBetween(a, b string) bool {
	return c.Type == ChatTypeDirect && c.HasParticipant(a) && c.HasParticipant(b)
}
