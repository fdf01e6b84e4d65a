package commands

import (
	"context"
	"testing"
	"time"

	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/adapters/memory"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
)

func resolverFixture() UseCase {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := memory.NewStore(memory.Seed{
		Rules: []entities.DistributionRule{
			{
				ID:         "rule-new",
				TenantID:   "tenant-1",
				ContractID: "contract-1",
				Name:       "Regra nova",
				Conditions: entities.RuleConditions{Areas: []string{"Engenharia"}},
				Actions:    entities.RuleActions{RecipientUserIDs: []string{"user-1"}},
				IsActive:   true,
				CreatedAt:  base.Add(time.Hour),
				UpdatedAt:  base.Add(time.Hour),
			},
			{
				ID:         "rule-old",
				TenantID:   "tenant-1",
				ContractID: "contract-1",
				Name:       "Regra antiga",
				Conditions: entities.RuleConditions{Areas: []string{"Engenharia"}},
				Actions:    entities.RuleActions{RecipientUserIDs: []string{"user-1", "user-2"}},
				IsActive:   true,
				CreatedAt:  base,
				UpdatedAt:  base,
			},
		},
		Users: []entities.User{
			{
				ID:          "user-1",
				TenantID:    "tenant-1",
				Name:        "Bruno Lima",
				Role:        entities.RoleCollaborator,
				IsActive:    true,
				ContractIDs: []string{"contract-1"},
			},
			{
				ID:          "user-2",
				TenantID:    "tenant-1",
				Name:        "Carla Dias",
				Role:        entities.RoleViewer,
				IsActive:    true,
				ContractIDs: []string{"contract-1"},
			},
		},
	})
	return UseCase{
		Rules: store,
		Users: store,
		Clock: store,
		IDGen: store,
	}
}

func TestResolveRecipientsAttributesFirstMatchingRule(t *testing.T) {
	uc := resolverFixture()
	doc := entities.Document{
		ID:             "doc-1",
		TenantID:       "tenant-1",
		Area:           "Engenharia",
		ContractID:     "contract-1",
		RevisionNumber: 1,
		Status:         entities.DocumentStatusApproved,
		Approver:       &entities.Approver{ID: "approver-1"},
	}

	recipients, matched, err := uc.resolveWithAttribution(context.Background(), doc)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(recipients) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(recipients))
	}
	// Rules list newest-first, so user-1 is attributed to the newer rule and
	// user-2 to the older one that alone lists them.
	if matched["user-1"].ID != "rule-new" {
		t.Fatalf("user-1 must be attributed to rule-new, got %q", matched["user-1"].ID)
	}
	if matched["user-2"].ID != "rule-old" {
		t.Fatalf("user-2 must be attributed to rule-old, got %q", matched["user-2"].ID)
	}
}

func TestResolveRecipientsReturnsNothingForUnapprovedDocument(t *testing.T) {
	uc := resolverFixture()
	doc := entities.Document{
		TenantID: "tenant-1",
		Area:     "Engenharia",
		Status:   entities.DocumentStatusReview,
	}

	recipients, err := uc.ResolveRecipients(context.Background(), doc)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(recipients) != 0 {
		t.Fatalf("unapproved document must resolve no recipients, got %d", len(recipients))
	}
}

func TestResolveRecipientsSkipsUsersWithoutContractAccess(t *testing.T) {
	uc := resolverFixture()
	doc := entities.Document{
		ID:         "doc-2",
		TenantID:   "tenant-1",
		Area:       "Engenharia",
		ContractID: "contract-restricted",
		Status:     entities.DocumentStatusApproved,
		Approver:   &entities.Approver{ID: "approver-1"},
	}

	recipients, err := uc.ResolveRecipients(context.Background(), doc)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(recipients) != 0 {
		t.Fatalf("no user holds the restricted contract, got %d recipients", len(recipients))
	}
}
