package commands

import (
	"context"
	"strings"

	application "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/errors"
)

type CreateRuleCommand struct {
	TenantID         string
	ContractID       string
	Name             string
	Description      string
	Areas            []string
	RecipientUserIDs []string
}

type UpdateRuleCommand struct {
	RuleID           string
	TenantID         string
	Name             string
	Description      string
	Areas            []string
	RecipientUserIDs []string
	IsActive         bool
}

type RuleInput struct {
	Name             string
	Description      string
	Areas            []string
	RecipientUserIDs []string
	IsActive         bool
}

type SaveContractRulesCommand struct {
	TenantID   string
	ContractID string
	Rules      []RuleInput
}

func (uc UseCase) CreateRule(ctx context.Context, cmd CreateRuleCommand) (entities.DistributionRule, error) {
	logger := application.ResolveLogger(uc.Logger)
	tenantID := strings.TrimSpace(cmd.TenantID)
	name := strings.TrimSpace(cmd.Name)
	if tenantID == "" || name == "" {
		logger.Warn("distribution rule create invalid input",
			"event", "distribution_rule_create_invalid_input",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", tenantID,
			"rule_name", name,
		)
		return entities.DistributionRule{}, domainerrors.ErrInvalidRuleInput
	}

	ruleID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.DistributionRule{}, err
	}
	now := uc.now()
	rule := entities.DistributionRule{
		ID:          ruleID,
		TenantID:    tenantID,
		ContractID:  strings.TrimSpace(cmd.ContractID),
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		Conditions:  entities.RuleConditions{Areas: normalizeSet(cmd.Areas)},
		Actions:     entities.RuleActions{RecipientUserIDs: normalizeSet(cmd.RecipientUserIDs)},
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.Rules.CreateRule(ctx, rule); err != nil {
		logger.Error("distribution rule create failed",
			"event", "distribution_rule_create_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", tenantID,
			"rule_id", rule.ID,
			"error", err.Error(),
		)
		return entities.DistributionRule{}, err
	}
	logger.Info("distribution rule created",
		"event", "distribution_rule_created",
		"module", "quality-docs/distribution-service",
		"layer", "application",
		"tenant_id", tenantID,
		"rule_id", rule.ID,
		"rule_name", rule.Name,
	)
	return rule, nil
}

func (uc UseCase) UpdateRule(ctx context.Context, cmd UpdateRuleCommand) (entities.DistributionRule, error) {
	logger := application.ResolveLogger(uc.Logger)
	tenantID := strings.TrimSpace(cmd.TenantID)
	ruleID := strings.TrimSpace(cmd.RuleID)
	name := strings.TrimSpace(cmd.Name)
	if tenantID == "" || ruleID == "" || name == "" {
		logger.Warn("distribution rule update invalid input",
			"event", "distribution_rule_update_invalid_input",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", tenantID,
			"rule_id", ruleID,
		)
		return entities.DistributionRule{}, domainerrors.ErrInvalidRuleInput
	}

	existing, err := uc.Rules.GetRule(ctx, tenantID, ruleID)
	if err != nil {
		logger.Warn("distribution rule update lookup failed",
			"event", "distribution_rule_update_lookup_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", tenantID,
			"rule_id", ruleID,
			"error", err.Error(),
		)
		return entities.DistributionRule{}, err
	}

	existing.Name = name
	existing.Description = strings.TrimSpace(cmd.Description)
	existing.Conditions = entities.RuleConditions{Areas: normalizeSet(cmd.Areas)}
	existing.Actions = entities.RuleActions{RecipientUserIDs: normalizeSet(cmd.RecipientUserIDs)}
	existing.IsActive = cmd.IsActive
	existing.UpdatedAt = uc.now()
	if err := uc.Rules.UpdateRule(ctx, existing); err != nil {
		logger.Error("distribution rule update failed",
			"event", "distribution_rule_update_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", tenantID,
			"rule_id", ruleID,
			"error", err.Error(),
		)
		return entities.DistributionRule{}, err
	}
	logger.Info("distribution rule updated",
		"event", "distribution_rule_updated",
		"module", "quality-docs/distribution-service",
		"layer", "application",
		"tenant_id", tenantID,
		"rule_id", ruleID,
	)
	return existing, nil
}

// DeactivateRule soft-disables a rule; the row is kept for audit history.
func (uc UseCase) DeactivateRule(ctx context.Context, tenantID string, ruleID string) error {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Rules.DeactivateRule(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(ruleID)); err != nil {
		logger.Warn("distribution rule deactivate failed",
			"event", "distribution_rule_deactivate_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", strings.TrimSpace(tenantID),
			"rule_id", strings.TrimSpace(ruleID),
			"error", err.Error(),
		)
		return err
	}
	logger.Info("distribution rule deactivated",
		"event", "distribution_rule_deactivated",
		"module", "quality-docs/distribution-service",
		"layer", "application",
		"tenant_id", strings.TrimSpace(tenantID),
		"rule_id", strings.TrimSpace(ruleID),
	)
	return nil
}

// SaveContractRules replaces every rule of a tenant+contract in one shot.
// The repository performs the delete-then-recreate inside one transaction.
func (uc UseCase) SaveContractRules(ctx context.Context, cmd SaveContractRulesCommand) ([]entities.DistributionRule, error) {
	logger := application.ResolveLogger(uc.Logger)
	tenantID := strings.TrimSpace(cmd.TenantID)
	contractID := strings.TrimSpace(cmd.ContractID)
	if tenantID == "" || contractID == "" {
		logger.Warn("distribution rules save invalid input",
			"event", "distribution_rules_save_invalid_input",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", tenantID,
			"contract_id", contractID,
		)
		return nil, domainerrors.ErrInvalidRuleInput
	}

	now := uc.now()
	rules := make([]entities.DistributionRule, 0, len(cmd.Rules))
	for _, input := range cmd.Rules {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return nil, domainerrors.ErrInvalidRuleInput
		}
		ruleID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		rules = append(rules, entities.DistributionRule{
			ID:          ruleID,
			TenantID:    tenantID,
			ContractID:  contractID,
			Name:        name,
			Description: strings.TrimSpace(input.Description),
			Conditions:  entities.RuleConditions{Areas: normalizeSet(input.Areas)},
			Actions:     entities.RuleActions{RecipientUserIDs: normalizeSet(input.RecipientUserIDs)},
			IsActive:    input.IsActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := uc.Rules.ReplaceContractRules(ctx, tenantID, contractID, rules); err != nil {
		logger.Error("distribution rules save failed",
			"event", "distribution_rules_save_failed",
			"module", "quality-docs/distribution-service",
			"layer", "application",
			"tenant_id", tenantID,
			"contract_id", contractID,
			"rule_count", len(rules),
			"error", err.Error(),
		)
		return nil, err
	}
	logger.Info("distribution rules saved",
		"event", "distribution_rules_saved",
		"module", "quality-docs/distribution-service",
		"layer", "application",
		"tenant_id", tenantID,
		"contract_id", contractID,
		"rule_count", len(rules),
	)
	return rules, nil
}

func normalizeSet(values []string) []string {
	normalized := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		normalized = append(normalized, value)
	}
	return normalized
}
