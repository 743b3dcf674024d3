// Package pricing implements the estimate calculation engine: unit-cost
// resolution per sourcing type, budget-tier multipliers, line-item generation,
// markup and tax composition, sheet-material costing and workflow staleness
// detection. Everything in this package is pure computation; persistence and
// transport live in the usecase and adapter layers.
package pricing

import "atelier_ops/internal/domain/entities"

// Default hourly rates per architectural role, used when the project has no
// saved rate configuration for the role.
var defaultRoleRates = map[string]float64{
	"principal":      180,
	"architect":      120,
	"designer":       90,
	"draftsperson":   60,
	"visualizer":     75,
	"project_manager": 100,
}

// RateTable resolves architectural hourly rates. Overrides come from the
// project's saved rate configuration and win over the default table.
type RateTable struct {
	Overrides map[string]float64
}

// RoleRate returns the hourly rate for a role. Unknown roles resolve to zero,
// which simply contributes nothing to the matrix sum.
func (r RateTable) RoleRate(role string) float64 {
	if r.Overrides != nil {
		if v, ok := r.Overrides[role]; ok {
			return v
		}
	}
	return defaultRoleRates[role]
}

// Budget-tier multipliers applied to the base unit cost before markup.
const (
	tierEconomyMultiplier  = 0.85
	tierStandardMultiplier = 1.0
	tierPremiumMultiplier  = 1.35
)

// TierMultiplier resolves the cost multiplier for an item. Resolution order:
// item-level strategy context, then project-level budget framework, then
// standard. Total: every input combination yields a defined multiplier.
func TierMultiplier(item entities.WorkItem, strategy *entities.Strategy) float64 {
	tier := entities.BudgetTierStandard
	if item.StrategyContext != nil && item.StrategyContext.BudgetTier != "" {
		tier = item.StrategyContext.BudgetTier
	} else if strategy != nil && strategy.BudgetFramework != nil && strategy.BudgetFramework.Tier != "" {
		tier = strategy.BudgetFramework.Tier
	}

	switch tier {
	case entities.BudgetTierEconomy:
		return tierEconomyMultiplier
	case entities.BudgetTierPremium:
		return tierPremiumMultiplier
	default:
		return tierStandardMultiplier
	}
}
