package ports

import (
	"context"
	"time"

	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/entities"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc entities.Document) error
	GetDocument(ctx context.Context, tenantID string, documentID string) (entities.Document, error)
	ListDocuments(ctx context.Context, tenantID string, limit int) ([]entities.Document, error)
	UpdateDocument(ctx context.Context, doc entities.Document) error
}

// Distributor is the in-process trigger into the distribution module.
// Approval and distribution are deliberately not linked transactionally: a
// distribution failure never rolls back the approval.
type Distributor interface {
	NotifyRelevantUsers(ctx context.Context, doc entities.Document) (int, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
