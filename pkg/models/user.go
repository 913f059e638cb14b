package models

import "time"

// User is an authenticated caller, keyed by the external auth id presented
// on the X-External-User-ID header. Authentication itself happens upstream.
type User struct {
	ID             string    `json:"user_id"`
	ExternalAuthID string    `json:"external_auth_id"`
	Email          string    `json:"email,omitempty"`
	DisplayName    string    `json:"display_name,omitempty"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
}

// MessageRole distinguishes the two sides of the chat transcript.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one entry in a user's chat transcript.
type Message struct {
	ID        string      `json:"message_id"`
	UserID    string      `json:"user_id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}
