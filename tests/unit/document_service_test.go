package unit

import (
	"context"
	"errors"
	"testing"

	distributionservice "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service"
	documentservice "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service"
	documentmemory "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/adapters/memory"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/application/commands"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/entities"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/errors"
)

func newDocumentFixture(t *testing.T) (documentservice.Module, distributionservice.Module) {
	t.Helper()
	distribution := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)
	documents := documentservice.NewInMemoryModule(documentmemory.Seed{}, distribution.Handler.Commands, nil)
	return documents, distribution
}

func TestCreateDocumentValidatesInput(t *testing.T) {
	documents, _ := newDocumentFixture(t)

	_, err := documents.Handler.Commands.CreateDocument(context.Background(), commands.CreateDocumentCommand{
		TenantID: "tenant-1",
	})
	if !errors.Is(err, domainerrors.ErrInvalidDocumentInput) {
		t.Fatalf("expected ErrInvalidDocumentInput for missing code, got %v", err)
	}
}

func TestApproveDocumentNotifiesRecipients(t *testing.T) {
	documents, distribution := newDocumentFixture(t)

	doc, err := documents.Handler.Commands.CreateDocument(context.Background(), commands.CreateDocumentCommand{
		TenantID:       "tenant-1",
		Code:           "PROC-001",
		Title:          "Procedimento de soldagem",
		Description:    "Procedimento de soldagem",
		Area:           "Engenharia",
		ContractID:     "contract-1",
		RevisionNumber: 2,
	})
	if err != nil {
		t.Fatalf("create document failed: %v", err)
	}
	if doc.Status != entities.DocumentStatusDraft {
		t.Fatalf("new document must start as draft, got %q", doc.Status)
	}

	result, err := documents.Handler.Commands.Approve(context.Background(), commands.ApproveDocumentCommand{
		TenantID:      "tenant-1",
		DocumentID:    doc.ID,
		ApproverID:    "approver-1",
		ApproverName:  "Ana Souza",
		ApproverEmail: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if result.Document.Status != entities.DocumentStatusApproved {
		t.Fatalf("document must be approved, got %q", result.Document.Status)
	}
	if result.Document.ApprovedAt == nil {
		t.Fatal("approvedAt must be set")
	}
	if result.Document.ApproverID != "approver-1" {
		t.Fatalf("approver must come from the command, got %q", result.Document.ApproverID)
	}
	if result.DistributionFailed {
		t.Fatal("distribution must succeed in this fixture")
	}
	if result.NotifiedCount != 2 {
		t.Fatalf("expected 2 notified users, got %d", result.NotifiedCount)
	}

	events, err := distribution.Handler.Queries.ListSystemEvents(context.Background(), "tenant-1", 0)
	if err != nil {
		t.Fatalf("list system events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("approval must produce one system event, got %d", len(events))
	}
}

func TestApproveDocumentTwiceIsRejected(t *testing.T) {
	documents, _ := newDocumentFixture(t)

	doc, err := documents.Handler.Commands.CreateDocument(context.Background(), commands.CreateDocumentCommand{
		TenantID:       "tenant-1",
		Code:           "PROC-002",
		Area:           "Engenharia",
		ContractID:     "contract-1",
		RevisionNumber: 1,
	})
	if err != nil {
		t.Fatalf("create document failed: %v", err)
	}

	approve := commands.ApproveDocumentCommand{
		TenantID:     "tenant-1",
		DocumentID:   doc.ID,
		ApproverID:   "approver-1",
		ApproverName: "Ana Souza",
	}
	if _, err := documents.Handler.Commands.Approve(context.Background(), approve); err != nil {
		t.Fatalf("first approve failed: %v", err)
	}
	_, err = documents.Handler.Commands.Approve(context.Background(), approve)
	if !errors.Is(err, domainerrors.ErrDocumentNotApprovable) {
		t.Fatalf("second approve must fail with ErrDocumentNotApprovable, got %v", err)
	}
}

func TestApproveUnknownDocument(t *testing.T) {
	documents, _ := newDocumentFixture(t)

	_, err := documents.Handler.Commands.Approve(context.Background(), commands.ApproveDocumentCommand{
		TenantID:   "tenant-1",
		DocumentID: "missing",
		ApproverID: "approver-1",
	})
	if !errors.Is(err, domainerrors.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestListDocumentsIsTenantScoped(t *testing.T) {
	documents, _ := newDocumentFixture(t)

	if _, err := documents.Handler.Commands.CreateDocument(context.Background(), commands.CreateDocumentCommand{
		TenantID: "tenant-1",
		Code:     "PROC-001",
	}); err != nil {
		t.Fatalf("create document failed: %v", err)
	}
	if _, err := documents.Handler.Commands.CreateDocument(context.Background(), commands.CreateDocumentCommand{
		TenantID: "tenant-2",
		Code:     "PROC-900",
	}); err != nil {
		t.Fatalf("create document failed: %v", err)
	}

	list, err := documents.Handler.Queries.ListDocuments(context.Background(), "tenant-1", 0)
	if err != nil {
		t.Fatalf("list documents failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected only tenant-1 documents, got %d", len(list))
	}
	if list[0].Code != "PROC-001" {
		t.Fatalf("unexpected document: %q", list[0].Code)
	}
}
