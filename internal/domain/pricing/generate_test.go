package pricing

import (
	"testing"

	"atelier_ops/internal/domain/entities"
)

func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }

func TestGenerate_SortOrder(t *testing.T) {
	items := []entities.WorkItem{
		{ID: "c", Name: "no order", SourcingType: entities.SourcingConstruction, Construction: &entities.ConstructionCosting{TotalCost: 1}, RequiredQuantity: 1},
		{ID: "b", Name: "second", SortOrder: intPtr(2), SourcingType: entities.SourcingConstruction, Construction: &entities.ConstructionCosting{TotalCost: 1}, RequiredQuantity: 1},
		{ID: "a", Name: "first", SortOrder: intPtr(1), SourcingType: entities.SourcingConstruction, Construction: &entities.ConstructionCosting{TotalCost: 1}, RequiredQuantity: 1},
	}

	res := Generate(items, nil, RateTable{})
	if len(res.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(res.Items))
	}
	order := []string{res.Items[0].WorkItemID, res.Items[1].WorkItemID, res.Items[2].WorkItemID}
	if order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestGenerate_SkipsUnpriceableWithOneErrorCheck(t *testing.T) {
	items := []entities.WorkItem{
		{ID: "ok", Name: "good", SourcingType: entities.SourcingProcured, RequiredQuantity: 2,
			Procurement: &entities.ProcurementCosting{LandedCostPerUnit: 50}},
		{ID: "bad", Name: "uncosted", SourcingType: entities.SourcingManufactured, RequiredQuantity: 1},
	}

	res := Generate(items, nil, RateTable{})
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(res.Items))
	}
	if len(res.ErrorChecks) != 1 {
		t.Fatalf("expected exactly 1 error check, got %d", len(res.ErrorChecks))
	}
	ec := res.ErrorChecks[0]
	if ec.WorkItemID != "bad" || ec.WorkItemName != "uncosted" {
		t.Fatalf("unexpected error check: %+v", ec)
	}
	if ec.Suggestion == "" {
		t.Fatalf("expected a remediation suggestion")
	}
}

func TestGenerate_AppliesTierAndQuantity(t *testing.T) {
	strategy := &entities.Strategy{BudgetFramework: &entities.BudgetFramework{Tier: entities.BudgetTierPremium}}
	items := []entities.WorkItem{
		{ID: "w", Name: "shelf", SourcingType: entities.SourcingManufactured, RequiredQuantity: 4,
			Manufacturing: &entities.ManufacturingCosting{CostPerUnit: 100}},
	}

	res := Generate(items, strategy, RateTable{})
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(res.Items))
	}
	b := res.Items[0]
	if b.UnitCost != 135 {
		t.Fatalf("expected tiered unit cost 135, got %v", b.UnitCost)
	}
	if b.TotalCost != 540 {
		t.Fatalf("expected extended cost 540, got %v", b.TotalCost)
	}
	if b.Category != entities.LineItemCategoryMaterial {
		t.Fatalf("expected material category, got %s", b.Category)
	}
}

func TestGenerate_BudgetSummary(t *testing.T) {
	items := []entities.WorkItem{
		{ID: "over", Name: "over", SourcingType: entities.SourcingConstruction, RequiredQuantity: 1,
			Construction:   &entities.ConstructionCosting{TotalCost: 1500},
			BudgetTracking: &entities.BudgetTracking{AllocatedBudget: f64Ptr(1000)}},
		{ID: "under", Name: "under", SourcingType: entities.SourcingConstruction, RequiredQuantity: 1,
			Construction:   &entities.ConstructionCosting{TotalCost: 300},
			BudgetTracking: &entities.BudgetTracking{AllocatedBudget: f64Ptr(1000)}},
		{ID: "untracked", Name: "untracked", SourcingType: entities.SourcingConstruction, RequiredQuantity: 1,
			Construction: &entities.ConstructionCosting{TotalCost: 50}},
	}

	res := Generate(items, nil, RateTable{})
	if res.BudgetSummary == nil {
		t.Fatalf("expected a budget summary")
	}
	bs := res.BudgetSummary
	if bs.ItemsOverBudget != 1 {
		t.Fatalf("expected 1 item over budget, got %d", bs.ItemsOverBudget)
	}
	if bs.TotalAllocated != 2000 {
		t.Fatalf("expected allocated 2000, got %d", bs.TotalAllocated)
	}
	if bs.TotalEstimated != 1800 {
		t.Fatalf("expected estimated 1800, got %d", bs.TotalEstimated)
	}
	// Over-budget is advisory only; all three items must still be priced.
	if len(res.Items) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(res.Items))
	}
}

func TestGenerate_NoBudgetSummaryWithoutTracking(t *testing.T) {
	items := []entities.WorkItem{
		{ID: "w", Name: "shelf", SourcingType: entities.SourcingConstruction, RequiredQuantity: 1,
			Construction: &entities.ConstructionCosting{TotalCost: 10}},
	}
	if res := Generate(items, nil, RateTable{}); res.BudgetSummary != nil {
		t.Fatalf("expected no budget summary, got %+v", res.BudgetSummary)
	}
}
