package ports

import (
	"context"
	"time"

	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
)

// Every method takes tenantID explicitly. The tenant predicate on each query
// is the sole isolation mechanism; no ambient tenant context exists.

type RuleRepository interface {
	ListRules(ctx context.Context, tenantID string, onlyActive bool) ([]entities.DistributionRule, error)
	GetRule(ctx context.Context, tenantID string, ruleID string) (entities.DistributionRule, error)
	CreateRule(ctx context.Context, rule entities.DistributionRule) error
	UpdateRule(ctx context.Context, rule entities.DistributionRule) error
	DeactivateRule(ctx context.Context, tenantID string, ruleID string) error
	// ReplaceContractRules swaps every rule of a tenant+contract in one
	// transaction so no window exists where the contract has no rules.
	ReplaceContractRules(ctx context.Context, tenantID string, contractID string, rules []entities.DistributionRule) error
}

type UserDirectory interface {
	ListActiveUsers(ctx context.Context, tenantID string) ([]entities.User, error)
}

type NotificationRepository interface {
	// CreateDistribution persists the shared message and all per-recipient
	// notifications atomically: either all rows land or none do.
	CreateDistribution(ctx context.Context, message entities.NotificationMessage, notifications []entities.UserNotification) error
	ListUserNotifications(ctx context.Context, tenantID string, userID string, limit int) ([]entities.UserNotification, error)
	CountUnread(ctx context.Context, tenantID string, userID string) (int64, error)
	MarkRead(ctx context.Context, tenantID string, userID string, notificationID string, readAt time.Time) error
}

type EventLogRepository interface {
	HasDistribution(ctx context.Context, tenantID string, entityID string, entityRevision int) (bool, error)
	AppendDeliveryLogs(ctx context.Context, logs []entities.DistributionEventLog) error
	AppendSystemEvent(ctx context.Context, event entities.SystemEventLog) error
	ListDeliveryLogs(ctx context.Context, tenantID string, limit int) ([]entities.DistributionEventLog, error)
	ListSystemEvents(ctx context.Context, tenantID string, limit int) ([]entities.SystemEventLog, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Metrics is the process-metrics hook; implementations must be safe for
// concurrent use. A nil Metrics disables recording.
type Metrics interface {
	DistributionAttempted(tenantID string)
	RecipientsNotified(tenantID string, count int)
	DistributionFailed(tenantID string)
}
