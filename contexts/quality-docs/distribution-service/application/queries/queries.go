package queries

import (
	"context"
	"log/slog"
	"strings"

	application "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/ports"
)

// Read-only finders consumed by report pages. Results come back ordered by
// created_at desc; aggregation for charts stays client-side.
type UseCase struct {
	Rules         ports.RuleRepository
	Notifications ports.NotificationRepository
	EventLogs     ports.EventLogRepository
	Logger        *slog.Logger
}

func (uc UseCase) ListRules(ctx context.Context, tenantID string) ([]entities.DistributionRule, error) {
	logger := application.ResolveLogger(uc.Logger)
	rules, err := uc.Rules.ListRules(ctx, strings.TrimSpace(tenantID), false)
	if err != nil {
		logger.Warn("distribution query list rules failed",
			"event", "distribution_query_list_rules_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", strings.TrimSpace(tenantID),
			"error", err.Error(),
		)
		return nil, err
	}
	return rules, nil
}

func (uc UseCase) ListDeliveryLogs(ctx context.Context, tenantID string, limit int) ([]entities.DistributionEventLog, error) {
	logger := application.ResolveLogger(uc.Logger)
	logs, err := uc.EventLogs.ListDeliveryLogs(ctx, strings.TrimSpace(tenantID), limit)
	if err != nil {
		logger.Warn("distribution query list delivery logs failed",
			"event", "distribution_query_list_delivery_logs_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", strings.TrimSpace(tenantID),
			"limit", limit,
			"error", err.Error(),
		)
		return nil, err
	}
	return logs, nil
}

func (uc UseCase) ListSystemEvents(ctx context.Context, tenantID string, limit int) ([]entities.SystemEventLog, error) {
	logger := application.ResolveLogger(uc.Logger)
	events, err := uc.EventLogs.ListSystemEvents(ctx, strings.TrimSpace(tenantID), limit)
	if err != nil {
		logger.Warn("distribution query list system events failed",
			"event", "distribution_query_list_system_events_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", strings.TrimSpace(tenantID),
			"limit", limit,
			"error", err.Error(),
		)
		return nil, err
	}
	return events, nil
}

func (uc UseCase) ListUserNotifications(ctx context.Context, tenantID string, userID string, limit int) ([]entities.UserNotification, error) {
	logger := application.ResolveLogger(uc.Logger)
	notifications, err := uc.Notifications.ListUserNotifications(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(userID), limit)
	if err != nil {
		logger.Warn("distribution query list notifications failed",
			"event", "distribution_query_list_notifications_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", strings.TrimSpace(tenantID),
			"user_id", strings.TrimSpace(userID),
			"limit", limit,
			"error", err.Error(),
		)
		return nil, err
	}
	return notifications, nil
}

func (uc UseCase) UnreadCount(ctx context.Context, tenantID string, userID string) (int64, error) {
	logger := application.ResolveLogger(uc.Logger)
	count, err := uc.Notifications.CountUnread(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(userID))
	if err != nil {
		logger.Warn("distribution query unread count failed",
			"event", "distribution_query_unread_count_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", strings.TrimSpace(tenantID),
			"user_id", strings.TrimSpace(userID),
			"error", err.Error(),
		)
		return 0, err
	}
	return count, nil
}
