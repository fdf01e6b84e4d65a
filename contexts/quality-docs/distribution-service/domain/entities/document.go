package entities

type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusReview   DocumentStatus = "review"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusArchived DocumentStatus = "archived"
)

type Approver struct {
	ID    string
	Name  string
	Email string
}

// Document is the triggering value handed to distribution by the approval
// flow. The subsystem reads it, never persists it.
type Document struct {
	ID             string
	TenantID       string
	Code           string
	Description    string
	Area           string
	ContractID     string
	RevisionNumber int
	Status         DocumentStatus
	Approver       *Approver
}
