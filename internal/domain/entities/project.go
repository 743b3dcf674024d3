package entities

import "time"

// BudgetFramework is the project-level budget strategy; Tier is the fallback
// tier for items without their own StrategyContext.
type BudgetFramework struct {
	Tier BudgetTier `json:"tier,omitempty"`
}

// Strategy is the project strategy document consulted by the tier resolver.
type Strategy struct {
	BudgetFramework *BudgetFramework `json:"budget_framework,omitempty"`
}

// OptimizationState tracks the last cut/nesting optimization run for a
// project. ValidAt is when the result last became valid; InvalidatedAt is set
// when a change explicitly invalidates it.
type OptimizationState struct {
	IsValid       bool       `json:"is_valid"`
	ValidAt       *time.Time `json:"valid_at,omitempty"`
	InvalidatedAt *time.Time `json:"invalidated_at,omitempty"`
}

// Project is the single document per project.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The consolidated estimate is a nested attribute of this document (merge
// updated as one unit), never its own table. RateConfig, when present,
// overrides the default architectural hourly rates per role.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`

	Strategy     *Strategy             `json:"strategy,omitempty"`
	Optimization *OptimizationState    `json:"optimization,omitempty"`
	Estimate     *ConsolidatedEstimate `json:"estimate,omitempty"`
	RateConfig   map[string]float64    `json:"rate_config,omitempty"`

	OverheadPercent float64 `json:"overhead_percent"`
	MarginPercent   float64 `json:"margin_percent"`
	TaxRate         float64 `json:"tax_rate"`
	TaxMode         TaxMode `json:"tax_mode,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
