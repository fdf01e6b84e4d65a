package unit

import (
	"context"
	"testing"
	"time"

	distributionservice "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/adapters/memory"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
)

func approvedDocument(tenantID string) entities.Document {
	return entities.Document{
		ID:             "doc-1",
		TenantID:       tenantID,
		Code:           "PROC-001",
		Description:    "Procedimento de soldagem",
		Area:           "Engenharia",
		ContractID:     "contract-1",
		RevisionNumber: 2,
		Status:         entities.DocumentStatusApproved,
		Approver: &entities.Approver{
			ID:    "approver-1",
			Name:  "Ana Souza",
			Email: "ana@example.com",
		},
	}
}

func engineeringSeed(tenantID string) memory.Seed {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return memory.Seed{
		Rules: []entities.DistributionRule{
			{
				ID:         "rule-1",
				TenantID:   tenantID,
				ContractID: "contract-1",
				Name:       "Engenharia - equipe",
				Conditions: entities.RuleConditions{Areas: []string{"Engenharia"}},
				Actions:    entities.RuleActions{RecipientUserIDs: []string{"user-1", "user-2", "user-3"}},
				IsActive:   true,
				CreatedAt:  base,
				UpdatedAt:  base,
			},
		},
		Users: []entities.User{
			{
				ID:          "user-1",
				TenantID:    tenantID,
				Name:        "Bruno Lima",
				Email:       "bruno@example.com",
				Role:        entities.RoleCollaborator,
				IsActive:    true,
				ContractIDs: []string{"contract-1"},
			},
			{
				ID:       "user-2",
				TenantID: tenantID,
				Name:     "Carla Dias",
				Email:    "carla@example.com",
				Role:     entities.RoleAdmin,
				IsActive: true,
			},
			{
				ID:          "user-3",
				TenantID:    tenantID,
				Name:        "Diego Alves",
				Email:       "diego@example.com",
				Role:        entities.RoleCollaborator,
				IsActive:    true,
				ContractIDs: []string{"contract-other"},
			},
		},
	}
}

func TestNotifyRelevantUsersFansOutToMatchingRecipients(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	count, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), approvedDocument("tenant-1"))
	if err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}
	// user-1 has contract access, user-2 is Admin, user-3 has no access.
	if count != 2 {
		t.Fatalf("expected 2 notified users, got %d", count)
	}

	for _, userID := range []string{"user-1", "user-2"} {
		notifications, err := module.Handler.Queries.ListUserNotifications(context.Background(), "tenant-1", userID, 0)
		if err != nil {
			t.Fatalf("list notifications for %s failed: %v", userID, err)
		}
		if len(notifications) != 1 {
			t.Fatalf("expected 1 notification for %s, got %d", userID, len(notifications))
		}
		if notifications[0].Title != "Documento Aprovado: PROC-001" {
			t.Fatalf("unexpected notification title: %q", notifications[0].Title)
		}
		if notifications[0].IsRead {
			t.Fatalf("new notification for %s must be unread", userID)
		}
	}

	excluded, err := module.Handler.Queries.ListUserNotifications(context.Background(), "tenant-1", "user-3", 0)
	if err != nil {
		t.Fatalf("list notifications for user-3 failed: %v", err)
	}
	if len(excluded) != 0 {
		t.Fatalf("user without contract access must not be notified, got %d notifications", len(excluded))
	}
}

func TestNotifyRelevantUsersWritesAuditTrail(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	count, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), approvedDocument("tenant-1"))
	if err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}

	logs, err := module.Handler.Queries.ListDeliveryLogs(context.Background(), "tenant-1", 0)
	if err != nil {
		t.Fatalf("list delivery logs failed: %v", err)
	}
	if len(logs) != count {
		t.Fatalf("expected %d delivery logs, got %d", count, len(logs))
	}
	for _, log := range logs {
		if log.Status != entities.DeliveryStatusSent {
			t.Fatalf("expected SENT status, got %q", log.Status)
		}
		if log.RuleID != "rule-1" {
			t.Fatalf("expected delivery log attributed to rule-1, got %q", log.RuleID)
		}
		if log.EntityID != "doc-1" || log.EntityRevision != 2 {
			t.Fatalf("unexpected entity reference: %s rev %d", log.EntityID, log.EntityRevision)
		}
	}

	events, err := module.Handler.Queries.ListSystemEvents(context.Background(), "tenant-1", 0)
	if err != nil {
		t.Fatalf("list system events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 system event, got %d", len(events))
	}
	event := events[0]
	if event.ActionType != "notifications_sent" {
		t.Fatalf("unexpected action type: %q", event.ActionType)
	}
	if event.UserID != "approver-1" || event.UserName != "Ana Souza" {
		t.Fatalf("system event must carry the approver as actor, got %s/%s", event.UserID, event.UserName)
	}
	if event.Details != "2 usuário(s) notificado(s) sobre a aprovação" {
		t.Fatalf("unexpected system event details: %q", event.Details)
	}
}

func TestNotifyRelevantUsersSkipsUnapprovedDocument(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	doc := approvedDocument("tenant-1")
	doc.Status = entities.DocumentStatusDraft

	count, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), doc)
	if err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 notified users for draft document, got %d", count)
	}

	logs, err := module.Handler.Queries.ListDeliveryLogs(context.Background(), "tenant-1", 0)
	if err != nil {
		t.Fatalf("list delivery logs failed: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("draft document must not produce delivery logs, got %d", len(logs))
	}
}

func TestNotifyRelevantUsersSkipsDocumentWithoutApprover(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	doc := approvedDocument("tenant-1")
	doc.Approver = nil

	count, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), doc)
	if err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 notified users without approver, got %d", count)
	}
}

func TestNotifyRelevantUsersIsIdempotentPerRevision(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	first, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), approvedDocument("tenant-1"))
	if err != nil {
		t.Fatalf("first distribution failed: %v", err)
	}
	if first != 2 {
		t.Fatalf("expected 2 notified users on first trigger, got %d", first)
	}

	second, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), approvedDocument("tenant-1"))
	if err != nil {
		t.Fatalf("duplicate trigger must be a quiet no-op: %v", err)
	}
	if second != 0 {
		t.Fatalf("expected 0 notified users on duplicate trigger, got %d", second)
	}

	logs, err := module.Handler.Queries.ListDeliveryLogs(context.Background(), "tenant-1", 0)
	if err != nil {
		t.Fatalf("list delivery logs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("duplicate trigger must not add delivery logs, got %d", len(logs))
	}

	// A new revision of the same document distributes again.
	doc := approvedDocument("tenant-1")
	doc.RevisionNumber = 3
	third, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), doc)
	if err != nil {
		t.Fatalf("new revision distribution failed: %v", err)
	}
	if third != 2 {
		t.Fatalf("expected 2 notified users for new revision, got %d", third)
	}
}

func TestNotifyRelevantUsersDeduplicatesAcrossRules(t *testing.T) {
	seed := engineeringSeed("tenant-1")
	base := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	seed.Rules = append(seed.Rules, entities.DistributionRule{
		ID:         "rule-2",
		TenantID:   "tenant-1",
		ContractID: "contract-1",
		Name:       "Engenharia - reforço",
		Conditions: entities.RuleConditions{Areas: []string{"Engenharia"}},
		Actions:    entities.RuleActions{RecipientUserIDs: []string{"user-1"}},
		IsActive:   true,
		CreatedAt:  base,
		UpdatedAt:  base,
	})
	module := distributionservice.NewInMemoryModule(seed, nil)

	count, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), approvedDocument("tenant-1"))
	if err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 notified users after dedup, got %d", count)
	}

	notifications, err := module.Handler.Queries.ListUserNotifications(context.Background(), "tenant-1", "user-1", 0)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("user listed by two rules must receive one notification, got %d", len(notifications))
	}
}

func TestNotifyRelevantUsersIgnoresOtherAreasAndInactiveRules(t *testing.T) {
	seed := engineeringSeed("tenant-1")
	seed.Rules[0].IsActive = false
	module := distributionservice.NewInMemoryModule(seed, nil)

	count, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), approvedDocument("tenant-1"))
	if err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("inactive rule must not match, got %d notified users", count)
	}

	module = distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)
	doc := approvedDocument("tenant-1")
	doc.Area = "Financeiro"
	count, err = module.Handler.Commands.NotifyRelevantUsers(context.Background(), doc)
	if err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("non-matching area must not notify, got %d", count)
	}
}

func TestNotifyRelevantUsersIsTenantScoped(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	doc := approvedDocument("tenant-2")
	count, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), doc)
	if err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rules of another tenant must not apply, got %d notified users", count)
	}

	logs, err := module.Handler.Queries.ListDeliveryLogs(context.Background(), "tenant-1", 0)
	if err != nil {
		t.Fatalf("list delivery logs failed: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("cross-tenant trigger must not write logs, got %d", len(logs))
	}
}

func TestNotifyRelevantUsersSkipsInactiveUsers(t *testing.T) {
	seed := engineeringSeed("tenant-1")
	seed.Users[0].IsActive = false
	module := distributionservice.NewInMemoryModule(seed, nil)

	count, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), approvedDocument("tenant-1"))
	if err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("inactive user must be skipped, expected 1 notified user, got %d", count)
	}

	notifications, err := module.Handler.Queries.ListUserNotifications(context.Background(), "tenant-1", "user-1", 0)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(notifications) != 0 {
		t.Fatalf("inactive user must not receive notifications, got %d", len(notifications))
	}
}

func TestNotifyRelevantUsersTruncatesLongDescriptions(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	doc := approvedDocument("tenant-1")
	doc.Description = "Relatório técnico detalhado sobre o procedimento de soldagem aplicado às estruturas"

	if _, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), doc); err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}

	notifications, err := module.Handler.Queries.ListUserNotifications(context.Background(), "tenant-1", "user-1", 0)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	want := "Relatório técnico detalhado sobre o procedimento d... (PROC-001 - Rev. 02) foi aprovado na área Engenharia. Acesse em /documentos/doc-1"
	if notifications[0].Message != want {
		t.Fatalf("unexpected notification message:\n got %q\nwant %q", notifications[0].Message, want)
	}
}
