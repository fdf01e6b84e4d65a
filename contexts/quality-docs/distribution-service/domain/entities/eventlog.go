package entities

import "time"

type DeliveryStatus string

const (
	DeliveryStatusSent DeliveryStatus = "SENT"
	// DeliveryStatusFailed is modeled for per-recipient delivery failure.
	// Fan-out is transactional, so no code path writes it today.
	DeliveryStatusFailed DeliveryStatus = "FAILED"
)

// DistributionEventLog is the append-only delivery record, one row per
// recipient per distribution. (TenantID, EntityID, EntityRevision,
// RecipientID) is unique so a duplicate trigger cannot double-log.
type DistributionEventLog struct {
	ID             string
	TenantID       string
	RuleID         string
	EntityType     string
	EntityID       string
	EntityRevision int
	RecipientType  string
	RecipientID    string
	Status         DeliveryStatus
	Message        string
	SentAt         time.Time
	CreatedAt      time.Time
}

// SystemEventLog is the append-only summary row, one per distribution action.
type SystemEventLog struct {
	ID                string
	TenantID          string
	UserID            string
	UserName          string
	UserEmail         string
	ActionType        string
	EntityType        string
	EntityID          string
	EntityDescription string
	Details           string
	CreatedAt         time.Time
}
