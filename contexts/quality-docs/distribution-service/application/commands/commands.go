package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/errors"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/ports"
)

const (
	notificationType        = "document_approved"
	notificationPriority    = "normal"
	descriptionMaxRunes     = 50
	actionNotificationsSent = "notifications_sent"
)

type MarkNotificationReadCommand struct {
	TenantID       string
	UserID         string
	NotificationID string
}

type UseCase struct {
	Rules         ports.RuleRepository
	Users         ports.UserDirectory
	Notifications ports.NotificationRepository
	EventLogs     ports.EventLogRepository
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Metrics       ports.Metrics
	Logger        *slog.Logger
}

// NotifyRelevantUsers matches an approved document against the tenant's
// active distribution rules, fans out notifications, and records the audit
// trail. It returns the number of users notified. Not-approved documents,
// documents without an approver, already-distributed revisions, and empty
// recipient sets are all quiet no-ops returning 0.
func (uc UseCase) NotifyRelevantUsers(ctx context.Context, doc entities.Document) (int, error) {
	logger := application.ResolveLogger(uc.Logger)
	if uc.Metrics != nil {
		uc.Metrics.DistributionAttempted(doc.TenantID)
	}

	if doc.Status != entities.DocumentStatusApproved {
		logger.Info("distribution skipped for unapproved document",
			"event", "distribution_skipped_not_approved",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", doc.TenantID,
			"document_id", doc.ID,
			"status", doc.Status,
		)
		return 0, nil
	}
	if doc.Approver == nil {
		// Data-integrity guard: an approved document without an approver is
		// skipped, not failed.
		logger.Warn("distribution skipped for document without approver",
			"event", "distribution_skipped_no_approver",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", doc.TenantID,
			"document_id", doc.ID,
		)
		return 0, nil
	}

	already, err := uc.EventLogs.HasDistribution(ctx, doc.TenantID, doc.ID, doc.RevisionNumber)
	if err != nil {
		return uc.failDistribution(logger, "distribution_idempotency_check_failed", doc, err)
	}
	if already {
		logger.Warn("distribution skipped for already distributed revision",
			"event", "distribution_skipped_duplicate",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", doc.TenantID,
			"document_id", doc.ID,
			"revision", doc.RevisionNumber,
		)
		return 0, nil
	}

	recipients, matchedRules, err := uc.resolveWithAttribution(ctx, doc)
	if err != nil {
		return uc.failDistribution(logger, "distribution_resolution_failed", doc, err)
	}
	if len(recipients) == 0 {
		logger.Info("distribution resolved no recipients",
			"event", "distribution_no_recipients",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", doc.TenantID,
			"document_id", doc.ID,
			"area", doc.Area,
		)
		return 0, nil
	}

	now := uc.now()
	message, notifications, err := uc.buildFanOut(ctx, doc, recipients, now)
	if err != nil {
		return uc.failDistribution(logger, "distribution_fanout_build_failed", doc, err)
	}
	if err := uc.Notifications.CreateDistribution(ctx, message, notifications); err != nil {
		return uc.failDistribution(logger, "distribution_fanout_persist_failed", doc, err)
	}

	if err := uc.logDistribution(ctx, doc, recipients, matchedRules, now); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateDistribution) {
			logger.Warn("distribution audit hit duplicate revision",
				"event", "distribution_audit_duplicate",
				"module", "quality-docs/distribution-service",
				"layer", "application",
				"tenant_id", doc.TenantID,
				"document_id", doc.ID,
				"revision", doc.RevisionNumber,
			)
			return 0, domainerrors.ErrDuplicateDistribution
		}
		return uc.failDistribution(logger, "distribution_audit_persist_failed", doc, err)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecipientsNotified(doc.TenantID, len(recipients))
	}
	logger.Info("distribution completed",
		"event", "distribution_completed",
		"module", "quality-docs/distribution-service",
		"layer", "application",
		"tenant_id", doc.TenantID,
		"document_id", doc.ID,
		"document_code", doc.Code,
		"recipient_count", len(recipients),
	)
	return len(recipients), nil
}

func (uc UseCase) MarkNotificationRead(ctx context.Context, cmd MarkNotificationReadCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Notifications.MarkRead(ctx,
		strings.TrimSpace(cmd.TenantID),
		strings.TrimSpace(cmd.UserID),
		strings.TrimSpace(cmd.NotificationID),
		uc.now(),
	); err != nil {
		logger.Warn("notification mark read failed",
			"event", "notification_mark_read_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", strings.TrimSpace(cmd.TenantID),
			"user_id", strings.TrimSpace(cmd.UserID),
			"notification_id", strings.TrimSpace(cmd.NotificationID),
			"error", err.Error(),
		)
		return err
	}
	logger.Info("notification marked read",
		"event", "notification_marked_read",
		"module", "quality-docs/distribution-service",
		"layer", "application",
		"tenant_id", strings.TrimSpace(cmd.TenantID),
		"user_id", strings.TrimSpace(cmd.UserID),
		"notification_id", strings.TrimSpace(cmd.NotificationID),
	)
	return nil
}

// buildFanOut assembles the shared message and one notification per
// recipient, all carrying the same title and content.
func (uc UseCase) buildFanOut(
	ctx context.Context,
	doc entities.Document,
	recipients []entities.User,
	now time.Time,
) (entities.NotificationMessage, []entities.UserNotification, error) {
	messageID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.NotificationMessage{}, nil, err
	}
	title := "Documento Aprovado: " + doc.Code
	content := buildMessageContent(doc)
	message := entities.NotificationMessage{
		ID:        messageID,
		TenantID:  doc.TenantID,
		Title:     title,
		Content:   content,
		Type:      notificationType,
		Priority:  notificationPriority,
		CreatedAt: now,
	}

	notifications := make([]entities.UserNotification, 0, len(recipients))
	for _, recipient := range recipients {
		notificationID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return entities.NotificationMessage{}, nil, err
		}
		notifications = append(notifications, entities.UserNotification{
			ID:        notificationID,
			TenantID:  doc.TenantID,
			UserID:    recipient.ID,
			Title:     title,
			Message:   content,
			Type:      notificationType,
			CreatedAt: now,
		})
	}
	return message, notifications, nil
}

// logDistribution writes one delivery log per recipient, attributed to the
// first rule that matched that recipient, plus one system event summarizing
// the action with the approver as actor.
func (uc UseCase) logDistribution(
	ctx context.Context,
	doc entities.Document,
	recipients []entities.User,
	matchedRules map[string]entities.DistributionRule,
	now time.Time,
) error {
	logs := make([]entities.DistributionEventLog, 0, len(recipients))
	for _, recipient := range recipients {
		logID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return err
		}
		rule := matchedRules[recipient.ID]
		logs = append(logs, entities.DistributionEventLog{
			ID:             logID,
			TenantID:       doc.TenantID,
			RuleID:         rule.ID,
			EntityType:     "document",
			EntityID:       doc.ID,
			EntityRevision: doc.RevisionNumber,
			RecipientType:  "user",
			RecipientID:    recipient.ID,
			Status:         entities.DeliveryStatusSent,
			Message:        fmt.Sprintf("Notificação enviada para %s (regra: %s)", recipient.Name, rule.Name),
			SentAt:         now,
			CreatedAt:      now,
		})
	}
	if err := uc.EventLogs.AppendDeliveryLogs(ctx, logs); err != nil {
		return err
	}

	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	return uc.EventLogs.AppendSystemEvent(ctx, entities.SystemEventLog{
		ID:                eventID,
		TenantID:          doc.TenantID,
		UserID:            doc.Approver.ID,
		UserName:          doc.Approver.Name,
		UserEmail:         doc.Approver.Email,
		ActionType:        actionNotificationsSent,
		EntityType:        "document",
		EntityID:          doc.ID,
		EntityDescription: fmt.Sprintf("Documento %s (Rev. %02d)", doc.Code, doc.RevisionNumber),
		Details:           fmt.Sprintf("%d usuário(s) notificado(s) sobre a aprovação", len(recipients)),
		CreatedAt:         now,
	})
}

func (uc UseCase) failDistribution(logger *slog.Logger, event string, doc entities.Document, cause error) (int, error) {
	if uc.Metrics != nil {
		uc.Metrics.DistributionFailed(doc.TenantID)
	}
	logger.Error("distribution failed",
		"event", event,
		"module", "quality-docs/distribution-service",
		"layer", "application",
		"tenant_id", doc.TenantID,
		"document_id", doc.ID,
		"error", cause.Error(),
	)
	return 0, domainerrors.ErrDistributionFailed
}

func buildMessageContent(doc entities.Document) string {
	description := strings.TrimSpace(doc.Description)
	if runes := []rune(description); len(runes) > descriptionMaxRunes {
		description = string(runes[:descriptionMaxRunes]) + "..."
	}
	return fmt.Sprintf("%s (%s - Rev. %02d) foi aprovado na área %s. Acesse em /documentos/%s",
		description, doc.Code, doc.RevisionNumber, doc.Area, doc.ID)
}

func (uc UseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
