package entities

import "time"

// NotificationMessage is the shared record of one distribution event.
// Exactly one row exists per distribution, immutable once created.
type NotificationMessage struct {
	ID        string
	TenantID  string
	Title     string
	Content   string
	Type      string
	Priority  string
	CreatedAt time.Time
}

// UserNotification is the per-recipient copy of a message.
// Only IsRead/ReadAt are mutable after creation.
type UserNotification struct {
	ID        string
	TenantID  string
	UserID    string
	Title     string
	Message   string
	Type      string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
