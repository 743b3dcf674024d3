package pricing

import (
	"errors"
	"sort"

	"atelier_ops/internal/domain/entities"
)

// BaseLineItem is a pre-markup estimate row. UnitCost and TotalCost are exact
// floats; rounding to whole currency units happens in the composer, after the
// markup multiplication.
type BaseLineItem struct {
	Description string
	Category    entities.LineItemCategory
	Quantity    float64
	Unit        string
	UnitCost    float64
	TotalCost   float64
	WorkItemID  string
	Notes       string
	IsManual    bool
}

// GenerationResult is the explicit output of a generation pass: base rows,
// one error-check entry per skipped item, and the advisory budget summary
// (nil when no item carries an allocated budget).
type GenerationResult struct {
	Items         []BaseLineItem
	ErrorChecks   []entities.EstimateErrorCheck
	BudgetSummary *entities.BudgetSummary
}

// Generate emits one base line item per priceable work item.
//
// Items are processed sorted by SortOrder ascending with missing sort orders
// last; ties keep input order. Items whose costing cannot be resolved are
// skipped and recorded in ErrorChecks; generation always continues for the
// rest. Budget overruns are counted, never blocking.
func Generate(items []entities.WorkItem, strategy *entities.Strategy, rates RateTable) GenerationResult {
	sorted := make([]entities.WorkItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].SortOrder, sorted[j].SortOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	var res GenerationResult
	var budget entities.BudgetSummary
	budgetTracked := false

	for _, item := range sorted {
		unitCost, err := ResolveUnitCost(item, rates)
		if err != nil {
			res.ErrorChecks = append(res.ErrorChecks, toErrorCheck(item, err))
			continue
		}

		unitCost *= TierMultiplier(item, strategy)
		qty := item.RequiredQuantity
		if qty <= 0 {
			qty = 1
		}
		extended := unitCost * qty

		if item.BudgetTracking != nil && item.BudgetTracking.AllocatedBudget != nil {
			budgetTracked = true
			allocated := *item.BudgetTracking.AllocatedBudget
			budget.TotalAllocated += roundUnits(allocated)
			budget.TotalEstimated += roundUnits(extended)
			if extended > allocated {
				budget.ItemsOverBudget++
			}
		}

		res.Items = append(res.Items, BaseLineItem{
			Description: item.Name,
			Category:    categoryFor(item.SourcingType),
			Quantity:    qty,
			Unit:        "pcs",
			UnitCost:    unitCost,
			TotalCost:   extended,
			WorkItemID:  item.ID,
		})
	}

	if budgetTracked {
		res.BudgetSummary = &budget
	}
	return res
}

func categoryFor(st entities.SourcingType) entities.LineItemCategory {
	switch st {
	case entities.SourcingManufactured:
		return entities.LineItemCategoryMaterial
	case entities.SourcingProcured:
		return entities.LineItemCategoryProcurement
	case entities.SourcingDesignDocument:
		return entities.LineItemCategoryLabor
	case entities.SourcingConstruction:
		return entities.LineItemCategoryConstruction
	default:
		return entities.LineItemCategoryOther
	}
}

func toErrorCheck(item entities.WorkItem, err error) entities.EstimateErrorCheck {
	var up *UnpriceableError
	if errors.As(err, &up) {
		return entities.EstimateErrorCheck{
			WorkItemID:   item.ID,
			WorkItemName: item.Name,
			Issue:        up.Issue,
			Suggestion:   up.Suggestion,
		}
	}
	return entities.EstimateErrorCheck{
		WorkItemID:   item.ID,
		WorkItemName: item.Name,
		Issue:        err.Error(),
		Suggestion:   suggestionSaveCosting,
	}
}
