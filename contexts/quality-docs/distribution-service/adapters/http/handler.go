package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application/commands"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application/queries"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
	httptransport "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/transport/http"
)

type Handler struct {
	Commands commands.UseCase
	Queries  queries.UseCase
	Logger   *slog.Logger
}

func (h Handler) CreateRuleHandler(
	ctx context.Context,
	tenantID string,
	req httptransport.CreateRuleRequest,
) (httptransport.RuleDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	rule, err := h.Commands.CreateRule(ctx, commands.CreateRuleCommand{
		TenantID:         tenantID,
		ContractID:       req.ContractID,
		Name:             req.Name,
		Description:      req.Description,
		Areas:            req.Conditions.Areas,
		RecipientUserIDs: req.Actions.UserIDs,
	})
	if err != nil {
		logger.Warn("distribution http create rule failed",
			"event", "distribution_http_create_rule_failed",
			"module", "quality-docs/distribution-service",
			"layer", "adapter",
			"tenant_id", strings.TrimSpace(tenantID),
			"rule_name", strings.TrimSpace(req.Name),
			"error", err.Error(),
		)
		return httptransport.RuleDTO{}, err
	}
	return mapRule(rule), nil
}

func (h Handler) UpdateRuleHandler(
	ctx context.Context,
	tenantID string,
	ruleID string,
	req httptransport.UpdateRuleRequest,
) (httptransport.RuleDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	rule, err := h.Commands.UpdateRule(ctx, commands.UpdateRuleCommand{
		RuleID:           ruleID,
		TenantID:         tenantID,
		Name:             req.Name,
		Description:      req.Description,
		Areas:            req.Conditions.Areas,
		RecipientUserIDs: req.Actions.UserIDs,
		IsActive:         req.IsActive,
	})
	if err != nil {
		logger.Warn("distribution http update rule failed",
			"event", "distribution_http_update_rule_failed",
			"module", "quality-docs/distribution-service",
			"layer", "adapter",
			"tenant_id", strings.TrimSpace(tenantID),
			"rule_id", strings.TrimSpace(ruleID),
			"error", err.Error(),
		)
		return httptransport.RuleDTO{}, err
	}
	return mapRule(rule), nil
}

func (h Handler) DeactivateRuleHandler(ctx context.Context, tenantID string, ruleID string) error {
	logger := application.ResolveLogger(h.Logger)
	if err := h.Commands.DeactivateRule(ctx, tenantID, ruleID); err != nil {
		logger.Warn("distribution http deactivate rule failed",
			"event", "distribution_http_deactivate_rule_failed",
			"module", "quality-docs/distribution-service",
			"layer", "adapter",
			"tenant_id", strings.TrimSpace(tenantID),
			"rule_id", strings.TrimSpace(ruleID),
			"error", err.Error(),
		)
		return err
	}
	return nil
}

func (h Handler) SaveRulesHandler(
	ctx context.Context,
	tenantID string,
	req httptransport.SaveRulesRequest,
) (httptransport.RuleListResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	inputs := make([]commands.RuleInput, 0, len(req.Rules))
	for _, rule := range req.Rules {
		inputs = append(inputs, commands.RuleInput{
			Name:             rule.Name,
			Description:      rule.Description,
			Areas:            rule.Conditions.Areas,
			RecipientUserIDs: rule.Actions.UserIDs,
			IsActive:         rule.IsActive,
		})
	}
	rules, err := h.Commands.SaveContractRules(ctx, commands.SaveContractRulesCommand{
		TenantID:   tenantID,
		ContractID: req.ContractID,
		Rules:      inputs,
	})
	if err != nil {
		logger.Warn("distribution http save rules failed",
			"event", "distribution_http_save_rules_failed",
			"module", "quality-docs/distribution-service",
			"layer", "adapter",
			"tenant_id", strings.TrimSpace(tenantID),
			"contract_id", strings.TrimSpace(req.ContractID),
			"error", err.Error(),
		)
		return httptransport.RuleListResponse{}, err
	}
	return httptransport.RuleListResponse{Rules: mapRules(rules)}, nil
}

func (h Handler) ListRulesHandler(ctx context.Context, tenantID string) (httptransport.RuleListResponse, error) {
	rules, err := h.Queries.ListRules(ctx, tenantID)
	if err != nil {
		return httptransport.RuleListResponse{}, err
	}
	return httptransport.RuleListResponse{Rules: mapRules(rules)}, nil
}

func (h Handler) ListNotificationsHandler(
	ctx context.Context,
	tenantID string,
	userID string,
	limit int,
) (httptransport.NotificationListResponse, error) {
	notifications, err := h.Queries.ListUserNotifications(ctx, tenantID, userID, limit)
	if err != nil {
		return httptransport.NotificationListResponse{}, err
	}
	dtos := make([]httptransport.NotificationDTO, 0, len(notifications))
	for _, notification := range notifications {
		dto := httptransport.NotificationDTO{
			ID:        notification.ID,
			Title:     notification.Title,
			Message:   notification.Message,
			Type:      notification.Type,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		}
		if notification.ReadAt != nil {
			dto.ReadAt = notification.ReadAt.Format(time.RFC3339)
		}
		dtos = append(dtos, dto)
	}
	return httptransport.NotificationListResponse{Notifications: dtos}, nil
}

func (h Handler) UnreadCountHandler(ctx context.Context, tenantID string, userID string) (httptransport.UnreadCountResponse, error) {
	count, err := h.Queries.UnreadCount(ctx, tenantID, userID)
	if err != nil {
		return httptransport.UnreadCountResponse{}, err
	}
	return httptransport.UnreadCountResponse{Count: count}, nil
}

func (h Handler) MarkReadHandler(ctx context.Context, tenantID string, userID string, notificationID string) error {
	return h.Commands.MarkNotificationRead(ctx, commands.MarkNotificationReadCommand{
		TenantID:       tenantID,
		UserID:         userID,
		NotificationID: notificationID,
	})
}

func (h Handler) ListDeliveryLogsHandler(
	ctx context.Context,
	tenantID string,
	limit int,
) (httptransport.DeliveryLogListResponse, error) {
	logs, err := h.Queries.ListDeliveryLogs(ctx, tenantID, limit)
	if err != nil {
		return httptransport.DeliveryLogListResponse{}, err
	}
	dtos := make([]httptransport.DeliveryLogDTO, 0, len(logs))
	for _, log := range logs {
		dtos = append(dtos, httptransport.DeliveryLogDTO{
			ID:             log.ID,
			RuleID:         log.RuleID,
			EntityType:     log.EntityType,
			EntityID:       log.EntityID,
			EntityRevision: log.EntityRevision,
			RecipientType:  log.RecipientType,
			RecipientID:    log.RecipientID,
			Status:         string(log.Status),
			Message:        log.Message,
			SentAt:         log.SentAt.Format(time.RFC3339),
			CreatedAt:      log.CreatedAt.Format(time.RFC3339),
		})
	}
	return httptransport.DeliveryLogListResponse{Logs: dtos}, nil
}

func (h Handler) ListSystemEventsHandler(
	ctx context.Context,
	tenantID string,
	limit int,
) (httptransport.SystemEventListResponse, error) {
	events, err := h.Queries.ListSystemEvents(ctx, tenantID, limit)
	if err != nil {
		return httptransport.SystemEventListResponse{}, err
	}
	dtos := make([]httptransport.SystemEventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, httptransport.SystemEventDTO{
			ID:                event.ID,
			UserID:            event.UserID,
			UserName:          event.UserName,
			UserEmail:         event.UserEmail,
			ActionType:        event.ActionType,
			EntityType:        event.EntityType,
			EntityID:          event.EntityID,
			EntityDescription: event.EntityDescription,
			Details:           event.Details,
			CreatedAt:         event.CreatedAt.Format(time.RFC3339),
		})
	}
	return httptransport.SystemEventListResponse{Events: dtos}, nil
}

func mapRules(rules []entities.DistributionRule) []httptransport.RuleDTO {
	dtos := make([]httptransport.RuleDTO, 0, len(rules))
	for _, rule := range rules {
		dtos = append(dtos, mapRule(rule))
	}
	return dtos
}

func mapRule(rule entities.DistributionRule) httptransport.RuleDTO {
	return httptransport.RuleDTO{
		ID:          rule.ID,
		ContractID:  rule.ContractID,
		Name:        rule.Name,
		Description: rule.Description,
		Conditions:  httptransport.RuleConditionsDTO{Areas: append([]string(nil), rule.Conditions.Areas...)},
		Actions:     httptransport.RuleActionsDTO{UserIDs: append([]string(nil), rule.Actions.RecipientUserIDs...)},
		IsActive:    rule.IsActive,
		CreatedAt:   rule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   rule.UpdatedAt.Format(time.RFC3339),
	}
}
