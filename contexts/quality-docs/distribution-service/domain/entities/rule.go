package entities

import "time"

// RuleConditions is the parsed form of the rule condition set.
// Raw JSON never crosses the rule store boundary; malformed or missing
// condition payloads are decoded to an empty area list.
type RuleConditions struct {
	Areas []string
}

// RuleActions is the parsed form of the rule action set.
type RuleActions struct {
	RecipientUserIDs []string
}

type DistributionRule struct {
	ID          string
	TenantID    string
	ContractID  string
	Name        string
	Description string
	Conditions  RuleConditions
	Actions     RuleActions
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MatchesArea reports whether the rule's condition set contains the area.
func (r DistributionRule) MatchesArea(area string) bool {
	for _, candidate := range r.Conditions.Areas {
		if candidate == area {
			return true
		}
	}
	return false
}

// ListsRecipient reports whether the rule's action set names the user.
func (r DistributionRule) ListsRecipient(userID string) bool {
	for _, candidate := range r.Actions.RecipientUserIDs {
		if candidate == userID {
			return true
		}
	}
	return false
}
