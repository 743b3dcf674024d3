package pricing

import (
	"fmt"
	"log"
	"math"
	"sort"

	"atelier_ops/internal/domain/entities"
)

// Standard sheet stock: 2440 x 1220 mm, with a 15% waste factor applied to the
// total part area before dividing into sheets.
const (
	sheetWidthMM  = 2440.0
	sheetHeightMM = 1220.0
	wasteFactor   = 1.15
)

// PriceResolver resolves a per-sheet price for a material. ok=false means the
// source does not know the material; a found material may still price at zero.
type PriceResolver func(materialName string, thicknessMM float64) (price float64, ok bool)

// Last-resort per-thickness sheet prices, used only when every configured
// price source misses. TODO: remove once the material inventory is fully
// migrated and the palette mapping covers all legacy projects.
var fallbackThicknessPrices = map[float64]float64{
	6:  2200,
	9:  2600,
	12: 3100,
	16: 3600,
	18: 3900,
	25: 5200,
}

// ResolveSheetPrice walks the resolver chain in order and returns the first
// hit. On full miss it falls back to the thickness-indexed default table and
// logs a warning, rounding the thickness to the nearest table entry.
func ResolveSheetPrice(resolvers []PriceResolver, materialName string, thicknessMM float64) float64 {
	for _, resolve := range resolvers {
		if price, ok := resolve(materialName, thicknessMM); ok {
			return price
		}
	}

	log.Printf("[pricing][sheets] no price source matched material=%q thickness=%.1fmm; using fallback table", materialName, thicknessMM)
	if price, ok := fallbackThicknessPrices[thicknessMM]; ok {
		return price
	}

	best := 18.0
	bestDiff := math.Inf(1)
	for t := range fallbackThicknessPrices {
		if d := math.Abs(t - thicknessMM); d < bestDiff {
			best, bestDiff = t, d
		}
	}
	return fallbackThicknessPrices[best]
}

// CutlistOptions parameterizes the legacy cutlist-derived estimate path.
type CutlistOptions struct {
	LaborMinutesPerPart float64
	ShopHourlyRate      float64
	Prices              []PriceResolver
}

type materialGroup struct {
	name        string
	thicknessMM float64
	totalAreaMM float64
	parts       int
}

// GenerateFromCutlist derives base line items from a cutlist's parts instead
// of per-item costing: one material line per (material, thickness) group with
// the required sheet count, plus a single flat labor line
// (totalParts x minutesPerPart / 60 at the shop rate).
//
// The output feeds the same markup/tax composer as the work-item path.
func GenerateFromCutlist(parts []entities.CutlistPart, opts CutlistOptions) GenerationResult {
	groups := map[string]*materialGroup{}
	var order []string
	totalParts := 0

	for _, p := range parts {
		if p.Count <= 0 {
			continue
		}
		key := fmt.Sprintf("%s|%.1f", p.MaterialName, p.ThicknessMM)
		g, ok := groups[key]
		if !ok {
			g = &materialGroup{name: p.MaterialName, thicknessMM: p.ThicknessMM}
			groups[key] = g
			order = append(order, key)
		}
		g.totalAreaMM += p.WidthMM * p.HeightMM * float64(p.Count)
		g.parts += p.Count
		totalParts += p.Count
	}
	sort.Strings(order)

	var res GenerationResult
	for _, key := range order {
		g := groups[key]
		sheets := math.Ceil(g.totalAreaMM * wasteFactor / (sheetWidthMM * sheetHeightMM))
		price := ResolveSheetPrice(opts.Prices, g.name, g.thicknessMM)
		res.Items = append(res.Items, BaseLineItem{
			Description: fmt.Sprintf("%s %.0fmm sheet", g.name, g.thicknessMM),
			Category:    entities.LineItemCategoryMaterial,
			Quantity:    sheets,
			Unit:        "sheet",
			UnitCost:    price,
			TotalCost:   price * sheets,
			Notes:       fmt.Sprintf("%d parts", g.parts),
		})
	}

	if totalParts > 0 && opts.LaborMinutesPerPart > 0 && opts.ShopHourlyRate > 0 {
		hours := float64(totalParts) * opts.LaborMinutesPerPart / 60
		res.Items = append(res.Items, BaseLineItem{
			Description: "Fabrication labor",
			Category:    entities.LineItemCategoryLabor,
			Quantity:    hours,
			Unit:        "hour",
			UnitCost:    opts.ShopHourlyRate,
			TotalCost:   opts.ShopHourlyRate * hours,
			Notes:       fmt.Sprintf("%d parts at %.0f min/part", totalParts, opts.LaborMinutesPerPart),
		})
	}
	return res
}
