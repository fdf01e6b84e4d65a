package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/application"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/entities"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/errors"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/ports"
)

type CreateDocumentCommand struct {
	TenantID       string
	Code           string
	Title          string
	Description    string
	Area           string
	ContractID     string
	RevisionNumber int
}

type ApproveDocumentCommand struct {
	TenantID      string
	DocumentID    string
	ApproverID    string
	ApproverName  string
	ApproverEmail string
}

// ApprovalResult reports the approval outcome. DistributionFailed is a flag,
// not an error: the approval stands even when fan-out fails.
type ApprovalResult struct {
	Document           entities.Document
	NotifiedCount      int
	DistributionFailed bool
}

type UseCase struct {
	Documents   ports.DocumentRepository
	Distributor ports.Distributor
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (uc UseCase) CreateDocument(ctx context.Context, cmd CreateDocumentCommand) (entities.Document, error) {
	logger := application.ResolveLogger(uc.Logger)
	tenantID := strings.TrimSpace(cmd.TenantID)
	code := strings.TrimSpace(cmd.Code)
	if tenantID == "" || code == "" {
		logger.Warn("document create invalid input",
			"event", "document_create_invalid_input",
			"module", "quality-docs/document-service",
			"layer", "application",
			"tenant_id", tenantID,
			"document_code", code,
		)
		return entities.Document{}, domainerrors.ErrInvalidDocumentInput
	}

	documentID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Document{}, err
	}
	now := uc.now()
	doc := entities.Document{
		ID:             documentID,
		TenantID:       tenantID,
		Code:           code,
		Title:          strings.TrimSpace(cmd.Title),
		Description:    strings.TrimSpace(cmd.Description),
		Area:           strings.TrimSpace(cmd.Area),
		ContractID:     strings.TrimSpace(cmd.ContractID),
		RevisionNumber: cmd.RevisionNumber,
		Status:         entities.DocumentStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.Documents.CreateDocument(ctx, doc); err != nil {
		logger.Error("document create failed",
			"event", "document_create_failed",
			"module", "quality-docs/document-service",
			"layer", "application",
			"tenant_id", tenantID,
			"document_id", doc.ID,
			"error", err.Error(),
		)
		return entities.Document{}, err
	}
	logger.Info("document created",
		"event", "document_created",
		"module", "quality-docs/document-service",
		"layer", "application",
		"tenant_id", tenantID,
		"document_id", doc.ID,
		"document_code", doc.Code,
	)
	return doc, nil
}

// Approve transitions the document to approved and triggers distribution.
// Distribution runs after the approval is persisted; its failure is reported
// in the result and logged, never propagated.
func (uc UseCase) Approve(ctx context.Context, cmd ApproveDocumentCommand) (ApprovalResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	tenantID := strings.TrimSpace(cmd.TenantID)
	documentID := strings.TrimSpace(cmd.DocumentID)

	doc, err := uc.Documents.GetDocument(ctx, tenantID, documentID)
	if err != nil {
		logger.Warn("document approve lookup failed",
			"event", "document_approve_lookup_failed",
			"module", "quality-docs/document-service",
			"layer", "application",
			"tenant_id", tenantID,
			"document_id", documentID,
			"error", err.Error(),
		)
		return ApprovalResult{}, err
	}
	if doc.Status == entities.DocumentStatusApproved || doc.Status == entities.DocumentStatusArchived {
		logger.Warn("document approve invalid status",
			"event", "document_approve_invalid_status",
			"module", "quality-docs/document-service",
			"layer", "application",
			"tenant_id", tenantID,
			"document_id", documentID,
			"status", doc.Status,
		)
		return ApprovalResult{}, domainerrors.ErrDocumentNotApprovable
	}

	now := uc.now()
	doc.Status = entities.DocumentStatusApproved
	doc.ApproverID = strings.TrimSpace(cmd.ApproverID)
	doc.ApproverName = strings.TrimSpace(cmd.ApproverName)
	doc.ApproverEmail = strings.TrimSpace(cmd.ApproverEmail)
	doc.ApprovedAt = &now
	doc.UpdatedAt = now
	if err := uc.Documents.UpdateDocument(ctx, doc); err != nil {
		logger.Error("document approve persist failed",
			"event", "document_approve_persist_failed",
			"module", "quality-docs/document-service",
			"layer", "application",
			"tenant_id", tenantID,
			"document_id", documentID,
			"error", err.Error(),
		)
		return ApprovalResult{}, err
	}
	logger.Info("document approved",
		"event", "document_approved",
		"module", "quality-docs/document-service",
		"layer", "application",
		"tenant_id", tenantID,
		"document_id", doc.ID,
		"document_code", doc.Code,
		"revision", doc.RevisionNumber,
	)

	result := ApprovalResult{Document: doc}
	if uc.Distributor == nil {
		return result, nil
	}
	notified, err := uc.Distributor.NotifyRelevantUsers(ctx, doc)
	if err != nil {
		result.DistributionFailed = true
		logger.Error("document approval distribution failed",
			"event", "document_approval_distribution_failed",
			"module", "quality-docs/document-service",
			"layer", "application",
			"tenant_id", tenantID,
			"document_id", doc.ID,
			"error", err.Error(),
		)
		return result, nil
	}
	result.NotifiedCount = notified
	return result, nil
}

func (uc UseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
