package model

import "time"

// ContactMessage represents a message submitted via the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "unread" | "read" | "replied"
	CreatedAt time.Time `json:"createdAt"`
}

// Contact message statuses. Transitions are not ordered; any status may be
// set directly. The only automatic transition is unread→read when an admin
// opens a message.
const (
	ContactStatusUnread  = "unread"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// DefaultContactSubject is used when a submission omits the subject field.
const DefaultContactSubject = "General Inquiry"

// ValidContactStatus reports whether s is an accepted message status.
func ValidContactStatus(s string) bool {
	return s == ContactStatusUnread || s == ContactStatusRead || s == ContactStatusReplied
}
