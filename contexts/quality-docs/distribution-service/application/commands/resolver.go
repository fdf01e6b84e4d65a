package commands

import (
	"context"

	application "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
)

// ResolveRecipients computes the users that qualify for a document's
// distribution without producing side effects. A recipient qualifies when an
// active rule's condition set contains the document's area, the rule's action
// set lists the user, and the user is either an Admin or holds access to the
// document's contract. The result is deduplicated by user id in first-seen
// order.
func (uc UseCase) ResolveRecipients(ctx context.Context, doc entities.Document) ([]entities.User, error) {
	recipients, _, err := uc.resolveWithAttribution(ctx, doc)
	return recipients, err
}

func (uc UseCase) resolveWithAttribution(
	ctx context.Context,
	doc entities.Document,
) ([]entities.User, map[string]entities.DistributionRule, error) {
	logger := application.ResolveLogger(uc.Logger)
	if doc.Status != entities.DocumentStatusApproved {
		return nil, nil, nil
	}

	rules, err := uc.Rules.ListRules(ctx, doc.TenantID, true)
	if err != nil {
		return nil, nil, err
	}
	users, err := uc.Users.ListActiveUsers(ctx, doc.TenantID)
	if err != nil {
		return nil, nil, err
	}

	usersByID := make(map[string]entities.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	recipients := make([]entities.User, 0)
	matchedRules := make(map[string]entities.DistributionRule)
	for _, rule := range rules {
		if !rule.MatchesArea(doc.Area) {
			continue
		}
		for _, userID := range rule.Actions.RecipientUserIDs {
			if _, seen := matchedRules[userID]; seen {
				continue
			}
			user, ok := usersByID[userID]
			if !ok {
				// Rule references a user that is inactive or gone; skip.
				continue
			}
			if user.Role != entities.RoleAdmin && !user.HasContractAccess(doc.ContractID) {
				continue
			}
			matchedRules[userID] = rule
			recipients = append(recipients, user)
		}
	}

	logger.Info("distribution recipients resolved",
		"event", "distribution_recipients_resolved",
		"module", "quality-docs/distribution-service",
		"layer", "application",
		"tenant_id", doc.TenantID,
		"document_id", doc.ID,
		"area", doc.Area,
		"rule_count", len(rules),
		"recipient_count", len(recipients),
	)
	return recipients, matchedRules, nil
}
