package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/application"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/application/commands"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/application/queries"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/entities"
	httptransport "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/transport/http"
)

type Handler struct {
	Commands commands.UseCase
	Queries  queries.UseCase
	Logger   *slog.Logger
}

func (h Handler) CreateDocumentHandler(
	ctx context.Context,
	tenantID string,
	req httptransport.CreateDocumentRequest,
) (httptransport.DocumentDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	doc, err := h.Commands.CreateDocument(ctx, commands.CreateDocumentCommand{
		TenantID:       tenantID,
		Code:           req.Code,
		Title:          req.Title,
		Description:    req.Description,
		Area:           req.Area,
		ContractID:     req.ContractID,
		RevisionNumber: req.RevisionNumber,
	})
	if err != nil {
		logger.Warn("document http create failed",
			"event", "document_http_create_failed",
			"module", "quality-docs/document-service",
			"layer", "adapter",
			"tenant_id", strings.TrimSpace(tenantID),
			"document_code", strings.TrimSpace(req.Code),
			"error", err.Error(),
		)
		return httptransport.DocumentDTO{}, err
	}
	return mapDocument(doc), nil
}

func (h Handler) ApproveDocumentHandler(
	ctx context.Context,
	tenantID string,
	documentID string,
	approverID string,
	approverName string,
	approverEmail string,
) (httptransport.ApprovalResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	result, err := h.Commands.Approve(ctx, commands.ApproveDocumentCommand{
		TenantID:      tenantID,
		DocumentID:    documentID,
		ApproverID:    approverID,
		ApproverName:  approverName,
		ApproverEmail: approverEmail,
	})
	if err != nil {
		logger.Warn("document http approve failed",
			"event", "document_http_approve_failed",
			"module", "quality-docs/document-service",
			"layer", "adapter",
			"tenant_id", strings.TrimSpace(tenantID),
			"document_id", strings.TrimSpace(documentID),
			"error", err.Error(),
		)
		return httptransport.ApprovalResponse{}, err
	}
	return httptransport.ApprovalResponse{
		Document:          mapDocument(result.Document),
		NotifiedCount:     result.NotifiedCount,
		DistributionError: result.DistributionFailed,
	}, nil
}

func (h Handler) GetDocumentHandler(ctx context.Context, tenantID string, documentID string) (httptransport.DocumentDTO, error) {
	doc, err := h.Queries.GetDocument(ctx, tenantID, documentID)
	if err != nil {
		return httptransport.DocumentDTO{}, err
	}
	return mapDocument(doc), nil
}

func (h Handler) ListDocumentsHandler(ctx context.Context, tenantID string, limit int) (httptransport.DocumentListResponse, error) {
	docs, err := h.Queries.ListDocuments(ctx, tenantID, limit)
	if err != nil {
		return httptransport.DocumentListResponse{}, err
	}
	dtos := make([]httptransport.DocumentDTO, 0, len(docs))
	for _, doc := range docs {
		dtos = append(dtos, mapDocument(doc))
	}
	return httptransport.DocumentListResponse{Documents: dtos}, nil
}

func mapDocument(doc entities.Document) httptransport.DocumentDTO {
	dto := httptransport.DocumentDTO{
		ID:             doc.ID,
		Code:           doc.Code,
		Title:          doc.Title,
		Description:    doc.Description,
		Area:           doc.Area,
		ContractID:     doc.ContractID,
		RevisionNumber: doc.RevisionNumber,
		Status:         string(doc.Status),
		ApproverID:     doc.ApproverID,
		ApproverName:   doc.ApproverName,
		ApproverEmail:  doc.ApproverEmail,
		CreatedAt:      doc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      doc.UpdatedAt.Format(time.RFC3339),
	}
	if doc.ApprovedAt != nil {
		dto.ApprovedAt = doc.ApprovedAt.Format(time.RFC3339)
	}
	return dto
}
