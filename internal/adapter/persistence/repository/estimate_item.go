package repository

import (
	"time"

	"atelier_ops/internal/domain/entities"
)

// Wire representation of a consolidated estimate, shared by the project
// document (nested attribute) and the quote snapshot. Timestamps are stored
// as RFC3339Nano strings.

type estimateLineItem struct {
	ID          string  `dynamodbav:"id"`
	Description string  `dynamodbav:"description"`
	Category    string  `dynamodbav:"category"`
	Quantity    float64 `dynamodbav:"quantity"`
	Unit        string  `dynamodbav:"unit,omitempty"`
	UnitPrice   int64   `dynamodbav:"unit_price"`
	TotalPrice  int64   `dynamodbav:"total_price"`
	WorkItemID  string  `dynamodbav:"work_item_id,omitempty"`
	Notes       string  `dynamodbav:"notes,omitempty"`
	IsManual    bool    `dynamodbav:"is_manual,omitempty"`
}

type estimateErrorCheckItem struct {
	WorkItemID   string `dynamodbav:"work_item_id"`
	WorkItemName string `dynamodbav:"work_item_name"`
	Issue        string `dynamodbav:"issue"`
	Suggestion   string `dynamodbav:"suggestion"`
}

type budgetSummaryItem struct {
	TotalAllocated  int64 `dynamodbav:"total_allocated"`
	TotalEstimated  int64 `dynamodbav:"total_estimated"`
	ItemsOverBudget int   `dynamodbav:"items_over_budget"`
}

type estimateItem struct {
	GeneratedAt string `dynamodbav:"generated_at"`
	GeneratedBy string `dynamodbav:"generated_by,omitempty"`

	LineItems []estimateLineItem `dynamodbav:"line_items"`

	Subtotal  int64   `dynamodbav:"subtotal"`
	TaxRate   float64 `dynamodbav:"tax_rate"`
	TaxMode   string  `dynamodbav:"tax_mode"`
	TaxAmount int64   `dynamodbav:"tax_amount"`
	Total     int64   `dynamodbav:"total"`
	Currency  string  `dynamodbav:"currency"`

	OverheadPercent float64 `dynamodbav:"overhead_percent"`
	OverheadAmount  int64   `dynamodbav:"overhead_amount"`
	MarginPercent   float64 `dynamodbav:"margin_percent"`
	MarginAmount    int64   `dynamodbav:"margin_amount"`

	IsStale     bool   `dynamodbav:"is_stale"`
	StaleReason string `dynamodbav:"stale_reason,omitempty"`

	ErrorChecks   []estimateErrorCheckItem `dynamodbav:"error_checks,omitempty"`
	BudgetSummary *budgetSummaryItem       `dynamodbav:"budget_summary,omitempty"`
}

func toEstimateLineItems(items []entities.LineItem) []estimateLineItem {
	out := make([]estimateLineItem, 0, len(items))
	for _, li := range items {
		out = append(out, estimateLineItem{
			ID:          li.ID,
			Description: li.Description,
			Category:    string(li.Category),
			Quantity:    li.Quantity,
			Unit:        li.Unit,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
			WorkItemID:  li.WorkItemID,
			Notes:       li.Notes,
			IsManual:    li.IsManual,
		})
	}
	return out
}

func fromEstimateLineItems(items []estimateLineItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Category:    entities.LineItemCategory(it.Category),
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			WorkItemID:  it.WorkItemID,
			Notes:       it.Notes,
			IsManual:    it.IsManual,
		})
	}
	return out
}

func toEstimateItem(e entities.ConsolidatedEstimate) estimateItem {
	it := estimateItem{
		GeneratedAt:     e.GeneratedAt.UTC().Format(time.RFC3339Nano),
		GeneratedBy:     e.GeneratedBy,
		LineItems:       toEstimateLineItems(e.LineItems),
		Subtotal:        e.Subtotal,
		TaxRate:         e.TaxRate,
		TaxMode:         string(e.TaxMode),
		TaxAmount:       e.TaxAmount,
		Total:           e.Total,
		Currency:        e.Currency,
		OverheadPercent: e.OverheadPercent,
		OverheadAmount:  e.OverheadAmount,
		MarginPercent:   e.MarginPercent,
		MarginAmount:    e.MarginAmount,
		IsStale:         e.IsStale,
		StaleReason:     e.StaleReason,
	}
	for _, ec := range e.ErrorChecks {
		it.ErrorChecks = append(it.ErrorChecks, estimateErrorCheckItem(ec))
	}
	if e.BudgetSummary != nil {
		bs := budgetSummaryItem(*e.BudgetSummary)
		it.BudgetSummary = &bs
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.ConsolidatedEstimate {
	generatedAt, _ := time.Parse(time.RFC3339Nano, it.GeneratedAt)
	e := entities.ConsolidatedEstimate{
		GeneratedAt:     generatedAt,
		GeneratedBy:     it.GeneratedBy,
		LineItems:       fromEstimateLineItems(it.LineItems),
		Subtotal:        it.Subtotal,
		TaxRate:         it.TaxRate,
		TaxMode:         entities.TaxMode(it.TaxMode),
		TaxAmount:       it.TaxAmount,
		Total:           it.Total,
		Currency:        it.Currency,
		OverheadPercent: it.OverheadPercent,
		OverheadAmount:  it.OverheadAmount,
		MarginPercent:   it.MarginPercent,
		MarginAmount:    it.MarginAmount,
		IsStale:         it.IsStale,
		StaleReason:     it.StaleReason,
	}
	for _, ec := range it.ErrorChecks {
		e.ErrorChecks = append(e.ErrorChecks, entities.EstimateErrorCheck(ec))
	}
	if it.BudgetSummary != nil {
		bs := entities.BudgetSummary(*it.BudgetSummary)
		e.BudgetSummary = &bs
	}
	return e
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
