package entities

// SheetMaterial is one priced sheet stock record in the centralized inventory.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name
//
// A material can legitimately carry a zero price; "not found" and "found at
// zero" are distinct outcomes for the price resolver.
type SheetMaterial struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ThicknessMM   float64 `json:"thickness_mm"`
	PricePerSheet float64 `json:"price_per_sheet"`
}

// CutlistPart is one rectangular part from a project cutlist, input to the
// legacy sheet-derived estimate path.
type CutlistPart struct {
	MaterialName string  `json:"material_name"`
	ThicknessMM  float64 `json:"thickness_mm"`
	WidthMM      float64 `json:"width_mm"`
	HeightMM     float64 `json:"height_mm"`
	Count        int     `json:"count"`
}
