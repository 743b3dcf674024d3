package pricing

import (
	"math"
	"time"

	"atelier_ops/internal/domain/entities"

	"github.com/google/uuid"
)

// Options parameterizes markup and tax composition. Percents are expressed as
// percentages (10 means 10%), TaxRate as a fraction (0.18 means 18%).
type Options struct {
	OverheadPercent float64
	MarginPercent   float64
	TaxRate         float64
	TaxMode         entities.TaxMode
	Currency        string
	GeneratedBy     string
	Now             time.Time
}

func (o Options) markup() float64 {
	return (1 + o.OverheadPercent/100) * (1 + o.MarginPercent/100)
}

// roundUnits rounds to the nearest whole currency unit. Every monetary value
// in a composed estimate passes through here exactly once.
func roundUnits(v float64) int64 {
	return int64(math.Round(v))
}

// Compose applies overhead/margin markup and tax to a generation result and
// produces the consolidated estimate.
//
// Markup is applied per line item, rounding after the multiplication, never
// before: UnitPrice = round(baseUnit * markup), TotalPrice =
// round(UnitPrice * Quantity). The subtotal is the exact sum of rounded
// totals, so Subtotal == sum(TotalPrice) holds in integer arithmetic.
// Overhead/margin display amounts come from the exact pre-markup base
// subtotal; they are informational and not exactly invertible.
func Compose(gen GenerationResult, opts Options) entities.ConsolidatedEstimate {
	markup := opts.markup()

	lineItems := make([]entities.LineItem, 0, len(gen.Items))
	baseSubtotal := 0.0
	for _, b := range gen.Items {
		unitPrice := roundUnits(b.UnitCost * markup)
		lineItems = append(lineItems, entities.LineItem{
			ID:          uuid.NewString(),
			Description: b.Description,
			Category:    b.Category,
			Quantity:    b.Quantity,
			Unit:        b.Unit,
			UnitPrice:   unitPrice,
			TotalPrice:  roundUnits(float64(unitPrice) * b.Quantity),
			WorkItemID:  b.WorkItemID,
			Notes:       b.Notes,
			IsManual:    b.IsManual,
		})
		baseSubtotal += b.TotalCost
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	est := entities.ConsolidatedEstimate{
		GeneratedAt:     now,
		GeneratedBy:     opts.GeneratedBy,
		LineItems:       lineItems,
		TaxRate:         opts.TaxRate,
		TaxMode:         opts.TaxMode,
		Currency:        opts.Currency,
		OverheadPercent: opts.OverheadPercent,
		MarginPercent:   opts.MarginPercent,
		ErrorChecks:     gen.ErrorChecks,
		BudgetSummary:   gen.BudgetSummary,
	}
	applyTotals(&est, baseSubtotal)
	return est
}

// Recompose recomputes totals over an estimate whose line items already carry
// marked-up prices: each TotalPrice is re-derived from its UnitPrice and
// Quantity, then subtotal, tax and total follow. Idempotent over an unchanged
// line-item set.
//
// The pre-markup base subtotal is reverse-derived by dividing through the
// stored multiplier; an approximation, since markup was originally applied
// per line item with independent rounding.
func Recompose(est entities.ConsolidatedEstimate) entities.ConsolidatedEstimate {
	for i := range est.LineItems {
		li := &est.LineItems[i]
		li.TotalPrice = roundUnits(float64(li.UnitPrice) * li.Quantity)
	}

	opts := Options{OverheadPercent: est.OverheadPercent, MarginPercent: est.MarginPercent}
	subtotal := int64(0)
	for _, li := range est.LineItems {
		subtotal += li.TotalPrice
	}
	baseSubtotal := float64(subtotal) / opts.markup()

	applyTotals(&est, baseSubtotal)
	return est
}

func applyTotals(est *entities.ConsolidatedEstimate, baseSubtotal float64) {
	subtotal := int64(0)
	for _, li := range est.LineItems {
		subtotal += li.TotalPrice
	}
	est.Subtotal = subtotal

	switch est.TaxMode {
	case entities.TaxModeInclusive:
		est.TaxAmount = roundUnits(float64(subtotal) - float64(subtotal)/(1+est.TaxRate))
		est.Total = subtotal
	default:
		est.TaxMode = entities.TaxModeExclusive
		est.TaxAmount = roundUnits(float64(subtotal) * est.TaxRate)
		est.Total = subtotal + est.TaxAmount
	}

	est.OverheadAmount = roundUnits(baseSubtotal * est.OverheadPercent / 100)
	est.MarginAmount = roundUnits(baseSubtotal * (1 + est.OverheadPercent/100) * est.MarginPercent / 100)
}
