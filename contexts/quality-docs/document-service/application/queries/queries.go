package queries

import (
	"context"
	"log/slog"
	"strings"

	application "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/application"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/entities"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/ports"
)

type UseCase struct {
	Documents ports.DocumentRepository
	Logger    *slog.Logger
}

func (uc UseCase) GetDocument(ctx context.Context, tenantID string, documentID string) (entities.Document, error) {
	logger := application.ResolveLogger(uc.Logger)
	doc, err := uc.Documents.GetDocument(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(documentID))
	if err != nil {
		logger.Warn("document query get failed",
			"event", "document_query_get_failed",
			"module", "quality-docs/document-service",
			"layer", "application",
			"tenant_id", strings.TrimSpace(tenantID),
			"document_id", strings.TrimSpace(documentID),
			"error", err.Error(),
		)
		return entities.Document{}, err
	}
	return doc, nil
}

func (uc UseCase) ListDocuments(ctx context.Context, tenantID string, limit int) ([]entities.Document, error) {
	logger := application.ResolveLogger(uc.Logger)
	docs, err := uc.Documents.ListDocuments(ctx, strings.TrimSpace(tenantID), limit)
	if err != nil {
		logger.Warn("document query list failed",
			"event", "document_query_list_failed",
			"module", "quality-docs/document-service",
			"layer", "application",
			"tenant_id", strings.TrimSpace(tenantID),
			"limit", limit,
			"error", err.Error(),
		)
		return nil, err
	}
	return docs, nil
}
