package model

import "time"

// User represents a user in the system.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Not exposed in API responses
	Gender       string `json:"gender,omitempty"`
	Age          int    `json:"age,omitempty"`
	// ListeningActivity is the user's most recent plays, oldest first.
	// It lives in the history store, not in the users table.
	ListeningActivity []string  `json:"listeningActivity,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
