package models

import "time"

// Notification is an announcement addressed to a role or a single account.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Recipient string    `json:"recipient"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
