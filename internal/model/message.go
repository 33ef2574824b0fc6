package model

import "time"

type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeVoice    MessageType = "voice"
	MessageTypeFile     MessageType = "file"
	MessageTypeLocation MessageType = "location"
	MessageTypeAlert    MessageType = "alert"
)

type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
)

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type Message struct {
	ID              string          `json:"id"`
	ChatID          string          `json:"chat_id"`
	SenderID        string          `json:"sender_id"`
	SenderName      LocalizedString `json:"sender_name"`
	SenderAvatarURL string          `json:"sender_avatar_url,omitempty"`
	Content         string          `json:"content"`
	Timestamp       time.Time       `json:"timestamp"`
	Type            MessageType     `json:"type"`
	FileName        string          `json:"file_name,omitempty"`
	FileURL         string          `json:"file_url,omitempty"`
	Location        *Location       `json:"location,omitempty"`
	Status          MessageStatus   `json:"status"`
	// IsOwnMessage is derived against the requesting user when a thread is
	// read; it is never stored.
	IsOwnMessage bool `json:"is_own_message"`
}
