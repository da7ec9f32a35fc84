package models

import "github.com/google/uuid"

// Session is the server-side state bound to a session cookie.
type Session struct {
	ID       string    `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}
