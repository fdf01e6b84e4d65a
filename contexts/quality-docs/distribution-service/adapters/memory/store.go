package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/errors"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/ports"

	"github.com/google/uuid"
)

type Seed struct {
	Rules []entities.DistributionRule
	Users []entities.User
}

type Store struct {
	mu sync.RWMutex

	rules         map[string]entities.DistributionRule
	users         map[string]entities.User
	messages      map[string]entities.NotificationMessage
	notifications map[string]entities.UserNotification
	deliveryLogs  map[string]entities.DistributionEventLog
	systemEvents  map[string]entities.SystemEventLog
}

func NewStore(seed Seed) *Store {
	rules := make(map[string]entities.DistributionRule, len(seed.Rules))
	for _, rule := range seed.Rules {
		rules[rule.ID] = rule
	}
	users := make(map[string]entities.User, len(seed.Users))
	for _, user := range seed.Users {
		users[user.ID] = user
	}
	return &Store{
		rules:         rules,
		users:         users,
		messages:      make(map[string]entities.NotificationMessage),
		notifications: make(map[string]entities.UserNotification),
		deliveryLogs:  make(map[string]entities.DistributionEventLog),
		systemEvents:  make(map[string]entities.SystemEventLog),
	}
}

func (s *Store) ListRules(_ context.Context, tenantID string, onlyActive bool) ([]entities.DistributionRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]entities.DistributionRule, 0)
	for _, rule := range s.rules {
		if rule.TenantID != strings.TrimSpace(tenantID) {
			continue
		}
		if onlyActive && !rule.IsActive {
			continue
		}
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].CreatedAt.After(rules[j].CreatedAt)
	})
	return rules, nil
}

func (s *Store) GetRule(_ context.Context, tenantID string, ruleID string) (entities.DistributionRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rule, exists := s.rules[strings.TrimSpace(ruleID)]
	if !exists || rule.TenantID != strings.TrimSpace(tenantID) {
		return entities.DistributionRule{}, domainerrors.ErrRuleNotFound
	}
	return rule, nil
}

func (s *Store) CreateRule(_ context.Context, rule entities.DistributionRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules[rule.ID] = rule
	return nil
}

func (s *Store) UpdateRule(_ context.Context, rule entities.DistributionRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.rules[rule.ID]
	if !exists || existing.TenantID != rule.TenantID {
		return domainerrors.ErrRuleNotFound
	}
	s.rules[rule.ID] = rule
	return nil
}

func (s *Store) DeactivateRule(_ context.Context, tenantID string, ruleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rule, exists := s.rules[strings.TrimSpace(ruleID)]
	if !exists || rule.TenantID != strings.TrimSpace(tenantID) {
		return domainerrors.ErrRuleNotFound
	}
	rule.IsActive = false
	rule.UpdatedAt = time.Now().UTC()
	s.rules[rule.ID] = rule
	return nil
}

func (s *Store) ReplaceContractRules(
	_ context.Context,
	tenantID string,
	contractID string,
	rules []entities.DistributionRule,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, rule := range s.rules {
		if rule.TenantID == strings.TrimSpace(tenantID) && rule.ContractID == strings.TrimSpace(contractID) {
			delete(s.rules, id)
		}
	}
	for _, rule := range rules {
		s.rules[rule.ID] = rule
	}
	return nil
}

func (s *Store) ListActiveUsers(_ context.Context, tenantID string) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]entities.User, 0)
	for _, user := range s.users {
		if user.TenantID != strings.TrimSpace(tenantID) || !user.IsActive {
			continue
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})
	return users, nil
}

func (s *Store) CreateDistribution(
	_ context.Context,
	message entities.NotificationMessage,
	notifications []entities.UserNotification,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[message.ID] = message
	for _, notification := range notifications {
		s.notifications[notification.ID] = notification
	}
	return nil
}

func (s *Store) ListUserNotifications(
	_ context.Context,
	tenantID string,
	userID string,
	limit int,
) ([]entities.UserNotification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]entities.UserNotification, 0)
	for _, notification := range s.notifications {
		if notification.TenantID != strings.TrimSpace(tenantID) || notification.UserID != strings.TrimSpace(userID) {
			continue
		}
		notifications = append(notifications, notification)
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	if limit > 0 && len(notifications) > limit {
		notifications = notifications[:limit]
	}
	return notifications, nil
}

func (s *Store) CountUnread(_ context.Context, tenantID string, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, notification := range s.notifications {
		if notification.TenantID == strings.TrimSpace(tenantID) &&
			notification.UserID == strings.TrimSpace(userID) &&
			!notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *Store) MarkRead(
	_ context.Context,
	tenantID string,
	userID string,
	notificationID string,
	readAt time.Time,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, exists := s.notifications[strings.TrimSpace(notificationID)]
	if !exists ||
		notification.TenantID != strings.TrimSpace(tenantID) ||
		notification.UserID != strings.TrimSpace(userID) {
		return domainerrors.ErrNotificationNotFound
	}
	timestamp := readAt.UTC()
	notification.IsRead = true
	notification.ReadAt = &timestamp
	s.notifications[notification.ID] = notification
	return nil
}

func (s *Store) HasDistribution(
	_ context.Context,
	tenantID string,
	entityID string,
	entityRevision int,
) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, log := range s.deliveryLogs {
		if log.TenantID == strings.TrimSpace(tenantID) &&
			log.EntityID == strings.TrimSpace(entityID) &&
			log.EntityRevision == entityRevision {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) AppendDeliveryLogs(_ context.Context, logs []entities.DistributionEventLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, log := range logs {
		for _, existing := range s.deliveryLogs {
			if existing.TenantID == log.TenantID &&
				existing.EntityID == log.EntityID &&
				existing.EntityRevision == log.EntityRevision &&
				existing.RecipientID == log.RecipientID {
				return domainerrors.ErrDuplicateDistribution
			}
		}
	}
	for _, log := range logs {
		s.deliveryLogs[log.ID] = log
	}
	return nil
}

func (s *Store) AppendSystemEvent(_ context.Context, event entities.SystemEventLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.systemEvents[event.ID] = event
	return nil
}

func (s *Store) ListDeliveryLogs(_ context.Context, tenantID string, limit int) ([]entities.DistributionEventLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]entities.DistributionEventLog, 0)
	for _, log := range s.deliveryLogs {
		if log.TenantID == strings.TrimSpace(tenantID) {
			logs = append(logs, log)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (s *Store) ListSystemEvents(_ context.Context, tenantID string, limit int) ([]entities.SystemEventLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]entities.SystemEventLog, 0)
	for _, event := range s.systemEvents {
		if event.TenantID == strings.TrimSpace(tenantID) {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.RuleRepository = (*Store)(nil)
var _ ports.UserDirectory = (*Store)(nil)
var _ ports.NotificationRepository = (*Store)(nil)
var _ ports.EventLogRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
