package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateDocumentRequest struct {
	Code           string `json:"code"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Area           string `json:"area"`
	ContractID     string `json:"contract_id"`
	RevisionNumber int    `json:"revision_number"`
}

type DocumentDTO struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Area           string `json:"area"`
	ContractID     string `json:"contract_id,omitempty"`
	RevisionNumber int    `json:"revision_number"`
	Status         string `json:"status"`
	ApproverID     string `json:"approver_id,omitempty"`
	ApproverName   string `json:"approver_name,omitempty"`
	ApproverEmail  string `json:"approver_email,omitempty"`
	ApprovedAt     string `json:"approved_at,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type DocumentListResponse struct {
	Documents []DocumentDTO `json:"documents"`
}

type ApprovalResponse struct {
	Document          DocumentDTO `json:"document"`
	NotifiedCount     int         `json:"notified_count"`
	DistributionError bool        `json:"distribution_error"`
}
