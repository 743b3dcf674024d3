package response

import (
	"time"

	"atelier_ops/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	UnitPrice   int64   `json:"unit_price"`
	TotalPrice  int64   `json:"total_price"`
	WorkItemID  string  `json:"work_item_id,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	IsManual    bool    `json:"is_manual"`
}

type ErrorCheckResponse struct {
	WorkItemID   string `json:"work_item_id"`
	WorkItemName string `json:"work_item_name"`
	Issue        string `json:"issue"`
	Suggestion   string `json:"suggestion"`
}

type BudgetSummaryResponse struct {
	TotalAllocated  int64 `json:"total_allocated"`
	TotalEstimated  int64 `json:"total_estimated"`
	ItemsOverBudget int   `json:"items_over_budget"`
}

type EstimateResponse struct {
	GeneratedAt time.Time `json:"generated_at"`
	GeneratedBy string    `json:"generated_by,omitempty"`

	LineItems []LineItemResponse `json:"line_items"`

	Subtotal  int64   `json:"subtotal"`
	TaxRate   float64 `json:"tax_rate"`
	TaxMode   string  `json:"tax_mode"`
	TaxAmount int64   `json:"tax_amount"`
	Total     int64   `json:"total"`
	Currency  string  `json:"currency"`

	OverheadPercent float64 `json:"overhead_percent"`
	OverheadAmount  int64   `json:"overhead_amount"`
	MarginPercent   float64 `json:"margin_percent"`
	MarginAmount    int64   `json:"margin_amount"`

	IsStale     bool   `json:"is_stale"`
	StaleReason string `json:"stale_reason,omitempty"`

	ErrorChecks   []ErrorCheckResponse   `json:"error_checks,omitempty"`
	BudgetSummary *BudgetSummaryResponse `json:"budget_summary,omitempty"`
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, LineItemResponse{
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

func FromConsolidatedEstimate(e entities.ConsolidatedEstimate) EstimateResponse {
	res := EstimateResponse{
		GeneratedAt:     e.GeneratedAt,
		GeneratedBy:     e.GeneratedBy,
		LineItems:       fromLineItems(e.LineItems),
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
		res.ErrorChecks = append(res.ErrorChecks, ErrorCheckResponse(ec))
	}
	if e.BudgetSummary != nil {
		bs := BudgetSummaryResponse(*e.BudgetSummary)
		res.BudgetSummary = &bs
	}
	return res
}
