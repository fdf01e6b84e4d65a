package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/entities"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/errors"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/ports"

	"github.com/google/uuid"
)

type Seed struct {
	Documents []entities.Document
}

type Store struct {
	mu sync.RWMutex

	documents map[string]entities.Document
}

func NewStore(seed Seed) *Store {
	documents := make(map[string]entities.Document, len(seed.Documents))
	for _, doc := range seed.Documents {
		documents[doc.ID] = doc
	}
	return &Store{documents: documents}
}

func (s *Store) CreateDocument(_ context.Context, doc entities.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[doc.ID] = doc
	return nil
}

func (s *Store) GetDocument(_ context.Context, tenantID string, documentID string) (entities.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, exists := s.documents[strings.TrimSpace(documentID)]
	if !exists || doc.TenantID != strings.TrimSpace(tenantID) {
		return entities.Document{}, domainerrors.ErrDocumentNotFound
	}
	return doc, nil
}

func (s *Store) ListDocuments(_ context.Context, tenantID string, limit int) ([]entities.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]entities.Document, 0)
	for _, doc := range s.documents {
		if doc.TenantID == strings.TrimSpace(tenantID) {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (s *Store) UpdateDocument(_ context.Context, doc entities.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.documents[doc.ID]
	if !exists || existing.TenantID != doc.TenantID {
		return domainerrors.ErrDocumentNotFound
	}
	s.documents[doc.ID] = doc
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.DocumentRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
