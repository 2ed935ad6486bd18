package model

import "time"

// ContactMessage represents a message submitted via the public contact form.
// Read tracks whether the admin has opened the message.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
	Read      bool
}
