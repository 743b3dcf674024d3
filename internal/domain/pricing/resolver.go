package pricing

import (
	"fmt"

	"atelier_ops/internal/domain/entities"
)

// UnpriceableError describes why a work item could not be priced, together
// with the remediation hint surfaced to the user. It is data for the
// estimate's error-check list, not a fatal condition.
type UnpriceableError struct {
	Issue      string
	Suggestion string
}

func (e *UnpriceableError) Error() string {
	return e.Issue
}

const suggestionSaveCosting = "go to Costing Summary tab and click Save Costing"

// ResolveUnitCost resolves the base (pre-tier, pre-markup) unit cost for a
// work item from the costing sub-record matching its sourcing type.
func ResolveUnitCost(item entities.WorkItem, rates RateTable) (float64, error) {
	switch item.SourcingType {
	case entities.SourcingManufactured:
		return resolveManufactured(item)
	case entities.SourcingProcured:
		return resolveProcured(item)
	case entities.SourcingDesignDocument:
		return resolveArchitectural(item, rates)
	case entities.SourcingConstruction:
		return resolveConstruction(item)
	default:
		return 0, &UnpriceableError{
			Issue:      fmt.Sprintf("unknown sourcing type %q", item.SourcingType),
			Suggestion: "set a sourcing type for this item",
		}
	}
}

func resolveManufactured(item entities.WorkItem) (float64, error) {
	m := item.Manufacturing
	if m == nil || (m.CostPerUnit <= 0 && m.TotalCost <= 0) {
		return 0, &UnpriceableError{
			Issue:      "manufacturing costing has neither cost per unit nor total cost",
			Suggestion: suggestionSaveCosting,
		}
	}
	if m.CostPerUnit > 0 {
		return m.CostPerUnit, nil
	}
	qty := m.Quantity
	if qty <= 0 {
		qty = item.RequiredQuantity
	}
	if qty <= 0 {
		return 0, &UnpriceableError{
			Issue:      "manufacturing costing has a total cost but no quantity to derive a unit cost",
			Suggestion: suggestionSaveCosting,
		}
	}
	return m.TotalCost / qty, nil
}

func resolveProcured(item entities.WorkItem) (float64, error) {
	p := item.Procurement
	if p == nil {
		return 0, &UnpriceableError{
			Issue:      "procurement costing is missing",
			Suggestion: suggestionSaveCosting,
		}
	}
	if p.LandedCostPerUnit > 0 {
		return p.LandedCostPerUnit, nil
	}
	if p.TotalLandedCost <= 0 {
		return 0, &UnpriceableError{
			Issue:      "procurement costing has no landed cost",
			Suggestion: suggestionSaveCosting,
		}
	}
	qty := p.Quantity
	if qty <= 0 {
		qty = item.RequiredQuantity
	}
	if qty <= 0 {
		return 0, &UnpriceableError{
			Issue:      "procurement costing has a total landed cost but no quantity to derive a unit cost",
			Suggestion: suggestionSaveCosting,
		}
	}
	return p.TotalLandedCost / qty, nil
}

func resolveArchitectural(item entities.WorkItem, rates RateTable) (float64, error) {
	a := item.Architectural
	if a == nil {
		return 0, &UnpriceableError{
			Issue:      "architectural costing is missing",
			Suggestion: suggestionSaveCosting,
		}
	}

	total := 0.0
	for role, stages := range a.Hours {
		rate := rates.RoleRate(role)
		for _, hours := range stages {
			total += hours * rate
		}
	}
	for _, l := range a.LogisticsItems {
		total += l.Cost
	}
	studies := 0.0
	for _, s := range a.ExternalStudies {
		studies += s.Cost
	}
	total += studies * (1 + a.AdminFeePercent/100)

	if total <= 0 {
		return 0, &UnpriceableError{
			Issue:      "architectural costing totals zero",
			Suggestion: "fill in the role/stage hour matrix and save the pricing",
		}
	}
	return total, nil
}

func resolveConstruction(item entities.WorkItem) (float64, error) {
	c := item.Construction
	if c == nil || c.TotalCost <= 0 {
		return 0, &UnpriceableError{
			Issue:      "construction costing has no total cost",
			Suggestion: suggestionSaveCosting,
		}
	}
	return c.TotalCost, nil
}
