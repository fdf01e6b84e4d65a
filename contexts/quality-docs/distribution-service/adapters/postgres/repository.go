package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/errors"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// AutoMigrate creates the module's tables, including the unique delivery
// index that backs duplicate-distribution detection.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&distributionRuleModel{},
		&notificationMessageModel{},
		&userNotificationModel{},
		&distributionEventLogModel{},
		&systemEventLogModel{},
		&userModel{},
		&userContractAccessModel{},
	)
}

func (r *Repository) ListRules(ctx context.Context, tenantID string, onlyActive bool) ([]entities.DistributionRule, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Order("created_at DESC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var rows []distributionRuleModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.logError("distribution_repo_list_rules_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
		)
	}
	rules := make([]entities.DistributionRule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, row.toEntity())
	}
	return rules, nil
}

func (r *Repository) GetRule(ctx context.Context, tenantID string, ruleID string) (entities.DistributionRule, error) {
	var row distributionRuleModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(ruleID)).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.DistributionRule{}, domainerrors.ErrRuleNotFound
		}
		return entities.DistributionRule{}, r.logError("distribution_repo_get_rule_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
			"rule_id", strings.TrimSpace(ruleID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateRule(ctx context.Context, rule entities.DistributionRule) error {
	row, err := distributionRuleModelFromEntity(rule)
	if err != nil {
		return r.logError("distribution_repo_create_rule_encode_failed", err,
			"tenant_id", rule.TenantID,
			"rule_id", rule.ID,
		)
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("distribution_repo_create_rule_failed", err,
			"tenant_id", rule.TenantID,
			"rule_id", rule.ID,
		)
	}
	return nil
}

func (r *Repository) UpdateRule(ctx context.Context, rule entities.DistributionRule) error {
	row, err := distributionRuleModelFromEntity(rule)
	if err != nil {
		return r.logError("distribution_repo_update_rule_encode_failed", err,
			"tenant_id", rule.TenantID,
			"rule_id", rule.ID,
		)
	}
	result := r.db.WithContext(ctx).
		Model(&distributionRuleModel{}).
		Where("id = ?", row.ID).
		Where("tenant_id = ?", row.TenantID).
		Updates(map[string]any{
			"name":        row.Name,
			"description": row.Description,
			"conditions":  row.Conditions,
			"actions":     row.Actions,
			"is_active":   row.IsActive,
			"updated_at":  row.UpdatedAt,
		})
	if result.Error != nil {
		return r.logError("distribution_repo_update_rule_failed", result.Error,
			"tenant_id", rule.TenantID,
			"rule_id", rule.ID,
		)
	}
	if result.RowsAffected == 0 {
		r.logWarn("distribution_repo_update_rule_not_found",
			"tenant_id", rule.TenantID,
			"rule_id", rule.ID,
		)
		return domainerrors.ErrRuleNotFound
	}
	return nil
}

func (r *Repository) DeactivateRule(ctx context.Context, tenantID string, ruleID string) error {
	result := r.db.WithContext(ctx).
		Model(&distributionRuleModel{}).
		Where("id = ?", strings.TrimSpace(ruleID)).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return r.logError("distribution_repo_deactivate_rule_failed", result.Error,
			"tenant_id", strings.TrimSpace(tenantID),
			"rule_id", strings.TrimSpace(ruleID),
		)
	}
	if result.RowsAffected == 0 {
		r.logWarn("distribution_repo_deactivate_rule_not_found",
			"tenant_id", strings.TrimSpace(tenantID),
			"rule_id", strings.TrimSpace(ruleID),
		)
		return domainerrors.ErrRuleNotFound
	}
	return nil
}

func (r *Repository) ReplaceContractRules(
	ctx context.Context,
	tenantID string,
	contractID string,
	rules []entities.DistributionRule,
) error {
	rows := make([]distributionRuleModel, 0, len(rules))
	for _, rule := range rules {
		row, err := distributionRuleModelFromEntity(rule)
		if err != nil {
			return r.logError("distribution_repo_replace_rules_encode_failed", err,
				"tenant_id", strings.TrimSpace(tenantID),
				"contract_id", strings.TrimSpace(contractID),
				"rule_id", rule.ID,
			)
		}
		rows = append(rows, row)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tenant_id = ?", strings.TrimSpace(tenantID)).
			Where("contract_id = ?", strings.TrimSpace(contractID)).
			Delete(&distributionRuleModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return r.logError("distribution_repo_replace_rules_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
			"contract_id", strings.TrimSpace(contractID),
			"rule_count", len(rules),
		)
	}
	return nil
}

func (r *Repository) ListActiveUsers(ctx context.Context, tenantID string) ([]entities.User, error) {
	var userRows []userModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Where("is_active = ?", true).
		Find(&userRows).Error; err != nil {
		return nil, r.logError("distribution_repo_list_users_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
		)
	}

	var accessRows []userContractAccessModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Find(&accessRows).Error; err != nil {
		return nil, r.logError("distribution_repo_list_contract_access_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
		)
	}
	accessByUser := make(map[string][]string, len(userRows))
	for _, access := range accessRows {
		accessByUser[access.UserID] = append(accessByUser[access.UserID], access.ContractID)
	}

	users := make([]entities.User, 0, len(userRows))
	for _, row := range userRows {
		users = append(users, entities.User{
			ID:          row.ID,
			TenantID:    row.TenantID,
			Name:        row.Name,
			Email:       row.Email,
			Role:        entities.UserRole(row.Role),
			IsActive:    row.IsActive,
			ContractIDs: accessByUser[row.ID],
		})
	}
	return users, nil
}

func (r *Repository) CreateDistribution(
	ctx context.Context,
	message entities.NotificationMessage,
	notifications []entities.UserNotification,
) error {
	messageRow := notificationMessageModelFromEntity(message)
	notificationRows := make([]userNotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationRows = append(notificationRows, userNotificationModelFromEntity(notification))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&messageRow).Error; err != nil {
			return err
		}
		if len(notificationRows) == 0 {
			return nil
		}
		return tx.Create(&notificationRows).Error
	})
	if err != nil {
		return r.logError("distribution_repo_create_distribution_failed", err,
			"tenant_id", message.TenantID,
			"message_id", message.ID,
			"notification_count", len(notifications),
		)
	}
	return nil
}

func (r *Repository) ListUserNotifications(
	ctx context.Context,
	tenantID string,
	userID string,
	limit int,
) ([]entities.UserNotification, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []userNotificationModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.logError("distribution_repo_list_notifications_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
			"user_id", strings.TrimSpace(userID),
		)
	}
	notifications := make([]entities.UserNotification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, row.toEntity())
	}
	return notifications, nil
}

func (r *Repository) CountUnread(ctx context.Context, tenantID string, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&userNotificationModel{}).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, r.logError("distribution_repo_count_unread_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
			"user_id", strings.TrimSpace(userID),
		)
	}
	return count, nil
}

func (r *Repository) MarkRead(
	ctx context.Context,
	tenantID string,
	userID string,
	notificationID string,
	readAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&userNotificationModel{}).
		Where("id = ?", strings.TrimSpace(notificationID)).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("distribution_repo_mark_read_failed", result.Error,
			"tenant_id", strings.TrimSpace(tenantID),
			"user_id", strings.TrimSpace(userID),
			"notification_id", strings.TrimSpace(notificationID),
		)
	}
	if result.RowsAffected == 0 {
		r.logWarn("distribution_repo_mark_read_not_found",
			"tenant_id", strings.TrimSpace(tenantID),
			"user_id", strings.TrimSpace(userID),
			"notification_id", strings.TrimSpace(notificationID),
		)
		return domainerrors.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) HasDistribution(
	ctx context.Context,
	tenantID string,
	entityID string,
	entityRevision int,
) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&distributionEventLogModel{}).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Where("entity_id = ?", strings.TrimSpace(entityID)).
		Where("entity_revision = ?", entityRevision).
		Count(&count).Error; err != nil {
		return false, r.logError("distribution_repo_has_distribution_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
			"entity_id", strings.TrimSpace(entityID),
			"entity_revision", entityRevision,
		)
	}
	return count > 0, nil
}

func (r *Repository) AppendDeliveryLogs(ctx context.Context, logs []entities.DistributionEventLog) error {
	if len(logs) == 0 {
		return nil
	}
	rows := make([]distributionEventLogModel, 0, len(logs))
	for _, log := range logs {
		rows = append(rows, distributionEventLogModelFromEntity(log))
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isUniqueViolation(err) {
			// The unique (tenant, entity, revision, recipient) index is the
			// backstop against a concurrent duplicate trigger.
			r.logWarn("distribution_repo_append_delivery_logs_duplicate",
				"tenant_id", logs[0].TenantID,
				"entity_id", logs[0].EntityID,
				"entity_revision", logs[0].EntityRevision,
			)
			return domainerrors.ErrDuplicateDistribution
		}
		return r.logError("distribution_repo_append_delivery_logs_failed", err,
			"tenant_id", logs[0].TenantID,
			"entity_id", logs[0].EntityID,
			"log_count", len(logs),
		)
	}
	return nil
}

func (r *Repository) AppendSystemEvent(ctx context.Context, event entities.SystemEventLog) error {
	row := systemEventLogModelFromEntity(event)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("distribution_repo_append_system_event_failed", err,
			"tenant_id", event.TenantID,
			"event_id", event.ID,
			"action_type", event.ActionType,
		)
	}
	return nil
}

func (r *Repository) ListDeliveryLogs(ctx context.Context, tenantID string, limit int) ([]entities.DistributionEventLog, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []distributionEventLogModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.logError("distribution_repo_list_delivery_logs_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
		)
	}
	logs := make([]entities.DistributionEventLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, row.toEntity())
	}
	return logs, nil
}

func (r *Repository) ListSystemEvents(ctx context.Context, tenantID string, limit int) ([]entities.SystemEventLog, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", strings.TrimSpace(tenantID)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []systemEventLogModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.logError("distribution_repo_list_system_events_failed", err,
			"tenant_id", strings.TrimSpace(tenantID),
		)
	}
	events := make([]entities.SystemEventLog, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toEntity())
	}
	return events, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+7)
	fields = append(fields,
		"event", event,
		"module", "quality-docs/distribution-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("distribution repository operation failed", fields...)
	return err
}

func (r *Repository) logWarn(event string, attrs ...any) {
	fields := make([]any, 0, len(attrs)+5)
	fields = append(fields,
		"event", event,
		"module", "quality-docs/distribution-service",
		"layer", "adapter",
	)
	fields = append(fields, attrs...)
	r.logger.Warn("distribution repository warning", fields...)
}

type distributionRuleModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	TenantID    string    `gorm:"column:tenant_id"`
	ContractID  string    `gorm:"column:contract_id"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Conditions  []byte    `gorm:"column:conditions;type:jsonb"`
	Actions     []byte    `gorm:"column:actions;type:jsonb"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (distributionRuleModel) TableName() string {
	return "distribution_rules"
}

type ruleConditionsPayload struct {
	Areas []string `json:"areas"`
}

type ruleActionsPayload struct {
	UserIDs []string `json:"userIds"`
}

func distributionRuleModelFromEntity(rule entities.DistributionRule) (distributionRuleModel, error) {
	conditions, err := json.Marshal(ruleConditionsPayload{Areas: rule.Conditions.Areas})
	if err != nil {
		return distributionRuleModel{}, err
	}
	actions, err := json.Marshal(ruleActionsPayload{UserIDs: rule.Actions.RecipientUserIDs})
	if err != nil {
		return distributionRuleModel{}, err
	}
	return distributionRuleModel{
		ID:          strings.TrimSpace(rule.ID),
		TenantID:    strings.TrimSpace(rule.TenantID),
		ContractID:  strings.TrimSpace(rule.ContractID),
		Name:        strings.TrimSpace(rule.Name),
		Description: strings.TrimSpace(rule.Description),
		Conditions:  conditions,
		Actions:     actions,
		IsActive:    rule.IsActive,
		CreatedAt:   rule.CreatedAt.UTC(),
		UpdatedAt:   rule.UpdatedAt.UTC(),
	}, nil
}

func (m distributionRuleModel) toEntity() entities.DistributionRule {
	// Malformed or missing payloads decode to empty sets so a bad rule can
	// never break resolution; it simply matches nothing.
	var conditions ruleConditionsPayload
	if len(m.Conditions) > 0 {
		_ = json.Unmarshal(m.Conditions, &conditions)
	}
	var actions ruleActionsPayload
	if len(m.Actions) > 0 {
		_ = json.Unmarshal(m.Actions, &actions)
	}
	return entities.DistributionRule{
		ID:          m.ID,
		TenantID:    m.TenantID,
		ContractID:  m.ContractID,
		Name:        m.Name,
		Description: m.Description,
		Conditions:  entities.RuleConditions{Areas: conditions.Areas},
		Actions:     entities.RuleActions{RecipientUserIDs: actions.UserIDs},
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type notificationMessageModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	TenantID  string    `gorm:"column:tenant_id"`
	Title     string    `gorm:"column:title"`
	Content   string    `gorm:"column:content"`
	Type      string    `gorm:"column:type"`
	Priority  string    `gorm:"column:priority"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (notificationMessageModel) TableName() string {
	return "notification_messages"
}

func notificationMessageModelFromEntity(message entities.NotificationMessage) notificationMessageModel {
	return notificationMessageModel{
		ID:        message.ID,
		TenantID:  message.TenantID,
		Title:     message.Title,
		Content:   message.Content,
		Type:      message.Type,
		Priority:  message.Priority,
		CreatedAt: message.CreatedAt.UTC(),
	}
}

type userNotificationModel struct {
	ID        string     `gorm:"column:id;primaryKey"`
	TenantID  string     `gorm:"column:tenant_id"`
	UserID    string     `gorm:"column:user_id"`
	Title     string     `gorm:"column:title"`
	Message   string     `gorm:"column:message"`
	Type      string     `gorm:"column:type"`
	IsRead    bool       `gorm:"column:is_read"`
	ReadAt    *time.Time `gorm:"column:read_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (userNotificationModel) TableName() string {
	return "user_notifications"
}

func userNotificationModelFromEntity(notification entities.UserNotification) userNotificationModel {
	return userNotificationModel{
		ID:        notification.ID,
		TenantID:  notification.TenantID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		IsRead:    notification.IsRead,
		ReadAt:    normalizeOptionalTime(notification.ReadAt),
		CreatedAt: notification.CreatedAt.UTC(),
	}
}

func (m userNotificationModel) toEntity() entities.UserNotification {
	return entities.UserNotification{
		ID:        m.ID,
		TenantID:  m.TenantID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      m.Type,
		IsRead:    m.IsRead,
		ReadAt:    normalizeOptionalTime(m.ReadAt),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

type distributionEventLogModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	TenantID       string    `gorm:"column:tenant_id;uniqueIndex:ux_distribution_delivery"`
	EntityType     string    `gorm:"column:entity_type"`
	EntityID       string    `gorm:"column:entity_id;uniqueIndex:ux_distribution_delivery"`
	EntityRevision int       `gorm:"column:entity_revision;uniqueIndex:ux_distribution_delivery"`
	RuleID         string    `gorm:"column:rule_id"`
	RecipientType  string    `gorm:"column:recipient_type"`
	RecipientID    string    `gorm:"column:recipient_id;uniqueIndex:ux_distribution_delivery"`
	Status         string    `gorm:"column:status"`
	Message        string    `gorm:"column:message"`
	SentAt         time.Time `gorm:"column:sent_at"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (distributionEventLogModel) TableName() string {
	return "distribution_event_logs"
}

func distributionEventLogModelFromEntity(log entities.DistributionEventLog) distributionEventLogModel {
	return distributionEventLogModel{
		ID:             log.ID,
		TenantID:       log.TenantID,
		EntityType:     log.EntityType,
		EntityID:       log.EntityID,
		EntityRevision: log.EntityRevision,
		RuleID:         log.RuleID,
		RecipientType:  log.RecipientType,
		RecipientID:    log.RecipientID,
		Status:         string(log.Status),
		Message:        log.Message,
		SentAt:         log.SentAt.UTC(),
		CreatedAt:      log.CreatedAt.UTC(),
	}
}

func (m distributionEventLogModel) toEntity() entities.DistributionEventLog {
	return entities.DistributionEventLog{
		ID:             m.ID,
		TenantID:       m.TenantID,
		RuleID:         m.RuleID,
		EntityType:     m.EntityType,
		EntityID:       m.EntityID,
		EntityRevision: m.EntityRevision,
		RecipientType:  m.RecipientType,
		RecipientID:    m.RecipientID,
		Status:         entities.DeliveryStatus(m.Status),
		Message:        m.Message,
		SentAt:         m.SentAt.UTC(),
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

type systemEventLogModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	TenantID          string    `gorm:"column:tenant_id"`
	UserID            string    `gorm:"column:user_id"`
	UserName          string    `gorm:"column:user_name"`
	UserEmail         string    `gorm:"column:user_email"`
	ActionType        string    `gorm:"column:action_type"`
	EntityType        string    `gorm:"column:entity_type"`
	EntityID          string    `gorm:"column:entity_id"`
	EntityDescription string    `gorm:"column:entity_description"`
	Details           string    `gorm:"column:details"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (systemEventLogModel) TableName() string {
	return "system_event_logs"
}

func systemEventLogModelFromEntity(event entities.SystemEventLog) systemEventLogModel {
	return systemEventLogModel{
		ID:                event.ID,
		TenantID:          event.TenantID,
		UserID:            event.UserID,
		UserName:          event.UserName,
		UserEmail:         event.UserEmail,
		ActionType:        event.ActionType,
		EntityType:        event.EntityType,
		EntityID:          event.EntityID,
		EntityDescription: event.EntityDescription,
		Details:           event.Details,
		CreatedAt:         event.CreatedAt.UTC(),
	}
}

func (m systemEventLogModel) toEntity() entities.SystemEventLog {
	return entities.SystemEventLog{
		ID:                m.ID,
		TenantID:          m.TenantID,
		UserID:            m.UserID,
		UserName:          m.UserName,
		UserEmail:         m.UserEmail,
		ActionType:        m.ActionType,
		EntityType:        m.EntityType,
		EntityID:          m.EntityID,
		EntityDescription: m.EntityDescription,
		Details:           m.Details,
		CreatedAt:         m.CreatedAt.UTC(),
	}
}

type userModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	TenantID string `gorm:"column:tenant_id"`
	Name     string `gorm:"column:name"`
	Email    string `gorm:"column:email"`
	Role     string `gorm:"column:role"`
	IsActive bool   `gorm:"column:is_active"`
}

func (userModel) TableName() string {
	return "users"
}

type userContractAccessModel struct {
	TenantID   string `gorm:"column:tenant_id"`
	UserID     string `gorm:"column:user_id"`
	ContractID string `gorm:"column:contract_id"`
}

func (userContractAccessModel) TableName() string {
	return "user_contract_access"
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	t := value.UTC()
	return &t
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.RuleRepository = (*Repository)(nil)
var _ ports.UserDirectory = (*Repository)(nil)
var _ ports.NotificationRepository = (*Repository)(nil)
var _ ports.EventLogRepository = (*Repository)(nil)
