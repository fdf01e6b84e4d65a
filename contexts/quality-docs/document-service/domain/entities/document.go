package entities

import "time"

type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusReview   DocumentStatus = "review"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusArchived DocumentStatus = "archived"
)

type Document struct {
	ID             string
	TenantID       string
	Code           string
	Title          string
	Description    string
	Area           string
	ContractID     string
	RevisionNumber int
	Status         DocumentStatus
	ApproverID     string
	ApproverName   string
	ApproverEmail  string
	ApprovedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
