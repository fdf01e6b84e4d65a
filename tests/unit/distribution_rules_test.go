package unit

import (
	"context"
	"errors"
	"testing"

	distributionservice "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/adapters/memory"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application/commands"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/errors"
)

func TestCreateRuleValidatesInput(t *testing.T) {
	module := distributionservice.NewInMemoryModule(memory.Seed{}, nil)

	_, err := module.Handler.Commands.CreateRule(context.Background(), commands.CreateRuleCommand{
		TenantID: "tenant-1",
		Name:     "   ",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRuleInput) {
		t.Fatalf("expected ErrInvalidRuleInput for blank name, got %v", err)
	}

	_, err = module.Handler.Commands.CreateRule(context.Background(), commands.CreateRuleCommand{
		Name: "Regra sem tenant",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRuleInput) {
		t.Fatalf("expected ErrInvalidRuleInput for missing tenant, got %v", err)
	}
}

func TestCreateRuleNormalizesConditionSets(t *testing.T) {
	module := distributionservice.NewInMemoryModule(memory.Seed{}, nil)

	rule, err := module.Handler.Commands.CreateRule(context.Background(), commands.CreateRuleCommand{
		TenantID:         "tenant-1",
		ContractID:       "contract-1",
		Name:             "Engenharia",
		Areas:            []string{" Engenharia ", "Engenharia", "", "Qualidade"},
		RecipientUserIDs: []string{"user-1", " user-1", "user-2"},
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}
	if !rule.IsActive {
		t.Fatal("new rule must start active")
	}
	if len(rule.Conditions.Areas) != 2 {
		t.Fatalf("expected deduplicated areas, got %v", rule.Conditions.Areas)
	}
	if len(rule.Actions.RecipientUserIDs) != 2 {
		t.Fatalf("expected deduplicated recipients, got %v", rule.Actions.RecipientUserIDs)
	}
}

func TestUpdateRuleRejectsUnknownRule(t *testing.T) {
	module := distributionservice.NewInMemoryModule(memory.Seed{}, nil)

	_, err := module.Handler.Commands.UpdateRule(context.Background(), commands.UpdateRuleCommand{
		RuleID:   "missing",
		TenantID: "tenant-1",
		Name:     "Regra",
	})
	if !errors.Is(err, domainerrors.ErrRuleNotFound) {
		t.Fatalf("expected ErrRuleNotFound, got %v", err)
	}
}

func TestUpdateRuleIsTenantScoped(t *testing.T) {
	module := distributionservice.NewInMemoryModule(memory.Seed{}, nil)

	rule, err := module.Handler.Commands.CreateRule(context.Background(), commands.CreateRuleCommand{
		TenantID: "tenant-1",
		Name:     "Engenharia",
		Areas:    []string{"Engenharia"},
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}

	_, err = module.Handler.Commands.UpdateRule(context.Background(), commands.UpdateRuleCommand{
		RuleID:   rule.ID,
		TenantID: "tenant-2",
		Name:     "Sequestro",
	})
	if !errors.Is(err, domainerrors.ErrRuleNotFound) {
		t.Fatalf("cross-tenant update must fail with ErrRuleNotFound, got %v", err)
	}
}

func TestDeactivateRuleKeepsRowForHistory(t *testing.T) {
	module := distributionservice.NewInMemoryModule(memory.Seed{}, nil)

	rule, err := module.Handler.Commands.CreateRule(context.Background(), commands.CreateRuleCommand{
		TenantID: "tenant-1",
		Name:     "Engenharia",
		Areas:    []string{"Engenharia"},
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}

	if err := module.Handler.Commands.DeactivateRule(context.Background(), "tenant-1", rule.ID); err != nil {
		t.Fatalf("deactivate rule failed: %v", err)
	}

	rules, err := module.Handler.Queries.ListRules(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("list rules failed: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("deactivated rule must remain listed, got %d rules", len(rules))
	}
	if rules[0].IsActive {
		t.Fatal("rule must be inactive after deactivation")
	}
}

func TestSaveContractRulesReplacesExistingSet(t *testing.T) {
	module := distributionservice.NewInMemoryModule(memory.Seed{}, nil)

	_, err := module.Handler.Commands.CreateRule(context.Background(), commands.CreateRuleCommand{
		TenantID:   "tenant-1",
		ContractID: "contract-1",
		Name:       "Regra antiga",
		Areas:      []string{"Engenharia"},
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}
	// A rule of another contract must survive the replace.
	keep, err := module.Handler.Commands.CreateRule(context.Background(), commands.CreateRuleCommand{
		TenantID:   "tenant-1",
		ContractID: "contract-2",
		Name:       "Outro contrato",
		Areas:      []string{"Qualidade"},
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}

	saved, err := module.Handler.Commands.SaveContractRules(context.Background(), commands.SaveContractRulesCommand{
		TenantID:   "tenant-1",
		ContractID: "contract-1",
		Rules: []commands.RuleInput{
			{Name: "Regra nova A", Areas: []string{"Engenharia"}, IsActive: true},
			{Name: "Regra nova B", Areas: []string{"Qualidade"}, IsActive: true},
		},
	})
	if err != nil {
		t.Fatalf("save contract rules failed: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved rules, got %d", len(saved))
	}

	rules, err := module.Handler.Queries.ListRules(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("list rules failed: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules after replace (2 new + 1 other contract), got %d", len(rules))
	}
	var keptFound bool
	for _, rule := range rules {
		if rule.ID == keep.ID {
			keptFound = true
		}
		if rule.Name == "Regra antiga" {
			t.Fatal("replaced rule must be gone")
		}
	}
	if !keptFound {
		t.Fatal("rule of another contract must survive the replace")
	}
}

func TestSaveContractRulesRequiresContract(t *testing.T) {
	module := distributionservice.NewInMemoryModule(memory.Seed{}, nil)

	_, err := module.Handler.Commands.SaveContractRules(context.Background(), commands.SaveContractRulesCommand{
		TenantID: "tenant-1",
		Rules:    []commands.RuleInput{{Name: "Regra"}},
	})
	if !errors.Is(err, domainerrors.ErrInvalidRuleInput) {
		t.Fatalf("expected ErrInvalidRuleInput, got %v", err)
	}
}
