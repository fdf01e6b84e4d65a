package unit

import (
	"context"
	"errors"
	"testing"

	distributionservice "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application/commands"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/errors"
)

func TestMarkNotificationReadMutatesOnlyReadState(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	if _, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), approvedDocument("tenant-1")); err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}

	unread, err := module.Handler.Queries.UnreadCount(context.Background(), "tenant-1", "user-1")
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if unread != 1 {
		t.Fatalf("expected 1 unread notification, got %d", unread)
	}

	notifications, err := module.Handler.Queries.ListUserNotifications(context.Background(), "tenant-1", "user-1", 0)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	original := notifications[0]

	err = module.Handler.Commands.MarkNotificationRead(context.Background(), commands.MarkNotificationReadCommand{
		TenantID:       "tenant-1",
		UserID:         "user-1",
		NotificationID: original.ID,
	})
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	notifications, err = module.Handler.Queries.ListUserNotifications(context.Background(), "tenant-1", "user-1", 0)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	updated := notifications[0]
	if !updated.IsRead {
		t.Fatal("notification must be read after MarkNotificationRead")
	}
	if updated.ReadAt == nil {
		t.Fatal("readAt must be set after MarkNotificationRead")
	}
	if updated.Title != original.Title || updated.Message != original.Message {
		t.Fatal("mark read must not change notification content")
	}

	unread, err = module.Handler.Queries.UnreadCount(context.Background(), "tenant-1", "user-1")
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if unread != 0 {
		t.Fatalf("expected 0 unread notifications after read, got %d", unread)
	}
}

func TestMarkNotificationReadRejectsOtherUsers(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	if _, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), approvedDocument("tenant-1")); err != nil {
		t.Fatalf("notify relevant users failed: %v", err)
	}
	notifications, err := module.Handler.Queries.ListUserNotifications(context.Background(), "tenant-1", "user-1", 0)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}

	err = module.Handler.Commands.MarkNotificationRead(context.Background(), commands.MarkNotificationReadCommand{
		TenantID:       "tenant-1",
		UserID:         "user-2",
		NotificationID: notifications[0].ID,
	})
	if !errors.Is(err, domainerrors.ErrNotificationNotFound) {
		t.Fatalf("another user's notification must look not found, got %v", err)
	}
}

func TestListUserNotificationsHonorsLimit(t *testing.T) {
	module := distributionservice.NewInMemoryModule(engineeringSeed("tenant-1"), nil)

	for revision := 1; revision <= 3; revision++ {
		doc := approvedDocument("tenant-1")
		doc.RevisionNumber = revision
		if _, err := module.Handler.Commands.NotifyRelevantUsers(context.Background(), doc); err != nil {
			t.Fatalf("distribution for revision %d failed: %v", revision, err)
		}
	}

	notifications, err := module.Handler.Queries.ListUserNotifications(context.Background(), "tenant-1", "user-1", 2)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("expected limit to cap results at 2, got %d", len(notifications))
	}
}
