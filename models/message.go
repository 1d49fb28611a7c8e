package models

import "github.com/google/uuid"

// MessageColor tags a user-facing message with its display severity.
type MessageColor string

const (
	MessageColorError   MessageColor = "error"
	MessageColorSuccess MessageColor = "success"
	MessageColorWarning MessageColor = "warning"
	MessageColorInfo    MessageColor = "info"
)

// Message is a transient user-facing notification. The ID lets the
// presentation layer dismiss a specific entry.
type Message struct {
	ID    uuid.UUID    `json:"id"`
	Text  string       `json:"text"`
	Color MessageColor `json:"color"`
}

// NewMessage creates a message with a fresh ID.
func NewMessage(text string, color MessageColor) Message {
	return Message{
		ID:    uuid.New(),
		Text:  text,
		Color: color,
	}
}
