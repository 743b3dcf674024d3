package pricing

import (
	"testing"

	"atelier_ops/internal/domain/entities"
)

func TestCompose_WorkedScenario(t *testing.T) {
	// Manufactured item at 1000/unit, qty 3, standard tier, 10% overhead,
	// 25% margin, 18% exclusive tax.
	gen := GenerationResult{
		Items: []BaseLineItem{{
			Description: "Walnut credenza",
			Category:    entities.LineItemCategoryMaterial,
			Quantity:    3,
			Unit:        "pcs",
			UnitCost:    1000,
			TotalCost:   3000,
		}},
	}
	est := Compose(gen, Options{
		OverheadPercent: 10,
		MarginPercent:   25,
		TaxRate:         0.18,
		TaxMode:         entities.TaxModeExclusive,
		Currency:        "INR",
	})

	if len(est.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(est.LineItems))
	}
	li := est.LineItems[0]
	if li.UnitPrice != 1375 {
		t.Fatalf("expected unit price 1375, got %d", li.UnitPrice)
	}
	if li.TotalPrice != 4125 {
		t.Fatalf("expected total price 4125, got %d", li.TotalPrice)
	}
	if est.Subtotal != 4125 {
		t.Fatalf("expected subtotal 4125, got %d", est.Subtotal)
	}
	if est.TaxAmount != 743 {
		t.Fatalf("expected tax 743, got %d", est.TaxAmount)
	}
	if est.Total != 4868 {
		t.Fatalf("expected total 4868, got %d", est.Total)
	}
}

func TestCompose_SubtotalIsSumOfLineTotals(t *testing.T) {
	gen := GenerationResult{
		Items: []BaseLineItem{
			{Description: "a", Quantity: 2, UnitCost: 333.33, TotalCost: 666.66},
			{Description: "b", Quantity: 1.5, UnitCost: 120.4, TotalCost: 180.6},
			{Description: "c", Quantity: 7, UnitCost: 99.99, TotalCost: 699.93},
		},
	}
	est := Compose(gen, Options{OverheadPercent: 12, MarginPercent: 18, TaxRate: 0.18, TaxMode: entities.TaxModeExclusive})

	sum := int64(0)
	for _, li := range est.LineItems {
		sum += li.TotalPrice
	}
	if est.Subtotal != sum {
		t.Fatalf("subtotal %d != sum of line totals %d", est.Subtotal, sum)
	}
	if est.Total != est.Subtotal+est.TaxAmount {
		t.Fatalf("exclusive mode: total %d != subtotal %d + tax %d", est.Total, est.Subtotal, est.TaxAmount)
	}
}

func TestCompose_InclusiveTax(t *testing.T) {
	gen := GenerationResult{
		Items: []BaseLineItem{{Description: "a", Quantity: 1, UnitCost: 1180, TotalCost: 1180}},
	}
	est := Compose(gen, Options{TaxRate: 0.18, TaxMode: entities.TaxModeInclusive})

	if est.Total != est.Subtotal {
		t.Fatalf("inclusive mode: total %d != subtotal %d", est.Total, est.Subtotal)
	}
	// subtotal 1180, embedded tax = round(1180 - 1180/1.18) = 180
	if est.Subtotal != 1180 {
		t.Fatalf("expected subtotal 1180, got %d", est.Subtotal)
	}
	if est.TaxAmount != 180 {
		t.Fatalf("expected embedded tax 180, got %d", est.TaxAmount)
	}
}

func TestRecompose_Idempotent(t *testing.T) {
	gen := GenerationResult{
		Items: []BaseLineItem{
			{Description: "a", Quantity: 3, UnitCost: 1000.4, TotalCost: 3001.2},
			{Description: "b", Quantity: 2, UnitCost: 57.77, TotalCost: 115.54},
		},
	}
	est := Compose(gen, Options{OverheadPercent: 10, MarginPercent: 25, TaxRate: 0.18, TaxMode: entities.TaxModeExclusive})

	once := Recompose(est)
	twice := Recompose(once)

	if once.Subtotal != twice.Subtotal || once.TaxAmount != twice.TaxAmount || once.Total != twice.Total {
		t.Fatalf("recompose not idempotent: %d/%d/%d vs %d/%d/%d",
			once.Subtotal, once.TaxAmount, once.Total, twice.Subtotal, twice.TaxAmount, twice.Total)
	}
	for i := range once.LineItems {
		if once.LineItems[i].TotalPrice != twice.LineItems[i].TotalPrice {
			t.Fatalf("line %d total changed on second recompose", i)
		}
	}
}

func TestRecompose_AddThenRemoveRestoresTotals(t *testing.T) {
	gen := GenerationResult{
		Items: []BaseLineItem{
			{Description: "a", Quantity: 1, UnitCost: 100, TotalCost: 100},
			{Description: "b", Quantity: 1, UnitCost: 200, TotalCost: 200},
		},
	}
	est := Compose(gen, Options{OverheadPercent: 5, MarginPercent: 10, TaxRate: 0.18, TaxMode: entities.TaxModeExclusive})
	before := est

	est.LineItems = append(est.LineItems, entities.LineItem{
		ID: "manual-1", Description: "site visit", Category: entities.LineItemCategoryOther,
		Quantity: 2, UnitPrice: 500, IsManual: true,
	})
	est = Recompose(est)
	if est.Subtotal == before.Subtotal {
		t.Fatalf("expected subtotal to change after add")
	}

	est.LineItems = est.LineItems[:len(est.LineItems)-1]
	est = Recompose(est)

	if est.Subtotal != before.Subtotal || est.TaxAmount != before.TaxAmount || est.Total != before.Total {
		t.Fatalf("add-then-remove did not restore totals: got %d/%d/%d want %d/%d/%d",
			est.Subtotal, est.TaxAmount, est.Total, before.Subtotal, before.TaxAmount, before.Total)
	}
}

func TestRecompose_RemovalRecomputes(t *testing.T) {
	est := entities.ConsolidatedEstimate{
		TaxRate: 0.18,
		TaxMode: entities.TaxModeExclusive,
		LineItems: []entities.LineItem{
			{ID: "keep", Quantity: 1, UnitPrice: 100},
			{ID: "drop", Quantity: 1, UnitPrice: 200, IsManual: true},
		},
	}
	est = Recompose(est)
	if est.Subtotal != 300 {
		t.Fatalf("expected subtotal 300, got %d", est.Subtotal)
	}

	est.LineItems = est.LineItems[:1]
	est = Recompose(est)
	if est.Subtotal != 100 {
		t.Fatalf("expected subtotal 100 after removal, got %d", est.Subtotal)
	}
	if est.TaxAmount != 18 {
		t.Fatalf("expected tax 18 after removal, got %d", est.TaxAmount)
	}
	if est.Total != 118 {
		t.Fatalf("expected total 118 after removal, got %d", est.Total)
	}
}
