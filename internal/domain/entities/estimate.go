package entities

import "time"

// LineItemCategory buckets an estimate row for presentation and reporting.

type LineItemCategory string

const (
	LineItemCategoryMaterial     LineItemCategory = "material"
	LineItemCategoryLabor        LineItemCategory = "labor"
	LineItemCategoryProcurement  LineItemCategory = "procurement"
	LineItemCategoryConstruction LineItemCategory = "construction"
	LineItemCategoryOther        LineItemCategory = "other"
)

// TaxMode selects whether tax is added on top of the subtotal or is already
// embedded in it.

type TaxMode string

const (
	TaxModeExclusive TaxMode = "exclusive"
	TaxModeInclusive TaxMode = "inclusive"
)

// Monetary representation:
//   - All post-markup amounts are whole currency units (int64), rounded to the
//     nearest unit at the point they are produced. The domain has no fractional
//     minor units.
//   - Raw costing inputs (hours, rates, landed costs) stay float64 and are only
//     rounded once markup is applied.

// LineItem is one row of a consolidated estimate. UnitPrice and TotalPrice are
// post-markup. Invariant at (re)computation time:
//
//	TotalPrice == round(UnitPrice * Quantity)
type LineItem struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Category    LineItemCategory `json:"category"`
	Quantity    float64          `json:"quantity"`
	Unit        string           `json:"unit,omitempty"`
	UnitPrice   int64            `json:"unit_price"`
	TotalPrice  int64            `json:"total_price"`
	WorkItemID  string           `json:"work_item_id,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	IsManual    bool             `json:"is_manual,omitempty"`
}

// EstimateErrorCheck records a work item the generator could not price.
// Suggestion is a human-readable remediation hint surfaced in the UI.
type EstimateErrorCheck struct {
	WorkItemID   string `json:"work_item_id"`
	WorkItemName string `json:"work_item_name"`
	Issue        string `json:"issue"`
	Suggestion   string `json:"suggestion"`
}

// BudgetSummary aggregates per-item budget tracking over a generated estimate.
// Advisory only; exceeding a budget never blocks generation.
type BudgetSummary struct {
	TotalAllocated  int64 `json:"total_allocated"`
	TotalEstimated  int64 `json:"total_estimated"`
	ItemsOverBudget int   `json:"items_over_budget"`
}

// ConsolidatedEstimate is the priced snapshot of a project.
//
// It lives as an attribute of the Project document, never as its own table,
// and is superseded in place on every recalculation.
//
// Invariants:
//   - Subtotal == sum of LineItems[i].TotalPrice
//   - exclusive mode: Total == Subtotal + TaxAmount, TaxAmount == round(Subtotal*TaxRate)
//   - inclusive mode: Total == Subtotal, TaxAmount == round(Subtotal - Subtotal/(1+TaxRate))
//
// OverheadAmount and MarginAmount are back-derived from the pre-markup base
// subtotal for display; they are approximate, not exactly invertible.
type ConsolidatedEstimate struct {
	GeneratedAt time.Time `json:"generated_at"`
	GeneratedBy string    `json:"generated_by,omitempty"`

	LineItems []LineItem `json:"line_items"`

	Subtotal  int64   `json:"subtotal"`
	TaxRate   float64 `json:"tax_rate"`
	TaxMode   TaxMode `json:"tax_mode"`
	TaxAmount int64   `json:"tax_amount"`
	Total     int64   `json:"total"`
	Currency  string  `json:"currency"`

	OverheadPercent float64 `json:"overhead_percent"`
	OverheadAmount  int64   `json:"overhead_amount"`
	MarginPercent   float64 `json:"margin_percent"`
	MarginAmount    int64   `json:"margin_amount"`

	IsStale     bool   `json:"is_stale,omitempty"`
	StaleReason string `json:"stale_reason,omitempty"`

	ErrorChecks   []EstimateErrorCheck `json:"error_checks,omitempty"`
	BudgetSummary *BudgetSummary       `json:"budget_summary,omitempty"`
}
