package response

import (
	"testing"
	"time"

	"atelier_ops/internal/domain/entities"
)

func TestFromClientQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.ClientQuote{
		ID:          "q-1",
		ProjectID:   "p-1",
		QuoteNumber: "Q-2026-001",
		ClientName:  "Meera",
		ClientEmail: "meera@example.com",
		Status:      entities.QuoteStatusSent,
		AccessToken: "tok-1",
		LineItems:   []entities.LineItem{{ID: "li-1", Description: "Credenza", TotalPrice: 4125}},
		Subtotal:    4125,
		TaxAmount:   743,
		Total:       4868,
		Currency:    "INR",
		ValidUntil:  &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromClientQuote(q)
	if res.ID != "q-1" || res.AccessToken != "tok-1" {
		t.Fatalf("unexpected internal view: %+v", res)
	}
	if len(res.LineItems) != 1 || res.Total != 4868 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromClientQuoteForPortal_HidesSensitiveFields(t *testing.T) {
	q := entities.ClientQuote{
		ID:          "q-1",
		QuoteNumber: "Q-2026-001",
		ClientName:  "Meera",
		ClientEmail: "meera@example.com",
		Status:      entities.QuoteStatusViewed,
		AccessToken: "tok-1",
		Total:       4868,
	}

	res := FromClientQuoteForPortal(q)
	if res.QuoteNumber != "Q-2026-001" || res.Status != "viewed" || res.Total != 4868 {
		t.Fatalf("unexpected portal view: %+v", res)
	}
}

func TestFromConsolidatedEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.ConsolidatedEstimate{
		GeneratedAt: now,
		GeneratedBy: "pm",
		LineItems:   []entities.LineItem{{ID: "li-1", Quantity: 3, UnitPrice: 1375, TotalPrice: 4125}},
		Subtotal:    4125,
		TaxRate:     0.18,
		TaxMode:     entities.TaxModeExclusive,
		TaxAmount:   743,
		Total:       4868,
		Currency:    "INR",
		ErrorChecks: []entities.EstimateErrorCheck{{WorkItemID: "w-2", Issue: "missing costing"}},
		BudgetSummary: &entities.BudgetSummary{
			TotalAllocated: 5000, TotalEstimated: 4125,
		},
	}

	res := FromConsolidatedEstimate(e)
	if res.Subtotal != 4125 || res.Total != 4868 || res.TaxMode != "exclusive" {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if len(res.LineItems) != 1 || res.LineItems[0].UnitPrice != 1375 {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if len(res.ErrorChecks) != 1 || res.ErrorChecks[0].WorkItemID != "w-2" {
		t.Fatalf("unexpected error checks: %+v", res.ErrorChecks)
	}
	if res.BudgetSummary == nil || res.BudgetSummary.TotalAllocated != 5000 {
		t.Fatalf("unexpected budget summary: %+v", res.BudgetSummary)
	}
}
