package request

import (
	"errors"
	"strings"

	"atelier_ops/internal/domain/entities"
)

var (
	ErrEmptyCutlistParts = errors.New("cutlist has no parts")
	ErrInvalidPart       = errors.New("invalid cutlist part")
)

// GenerateEstimateRequest is the (optional) body of the estimate generation
// endpoint. GeneratedBy is recorded on the estimate for audit.
type GenerateEstimateRequest struct {
	GeneratedBy string `json:"generated_by"`
}

type CutlistPartRequest struct {
	MaterialName string  `json:"material_name" binding:"required"`
	ThicknessMM  float64 `json:"thickness_mm" binding:"required"`
	WidthMM      float64 `json:"width_mm" binding:"required"`
	HeightMM     float64 `json:"height_mm" binding:"required"`
	Count        int     `json:"count" binding:"required"`
}

// CutlistEstimateRequest is the legacy estimate path's payload: raw parts plus
// optional labor overrides and a palette price map keyed by material name.
type CutlistEstimateRequest struct {
	Parts               []CutlistPartRequest `json:"parts" binding:"required"`
	LaborMinutesPerPart float64              `json:"labor_minutes_per_part"`
	ShopHourlyRate      float64              `json:"shop_hourly_rate"`
	PalettePrices       map[string]float64   `json:"palette_prices"`
	GeneratedBy         string               `json:"generated_by"`
}

func (r CutlistEstimateRequest) ResolveParts() ([]entities.CutlistPart, error) {
	if len(r.Parts) == 0 {
		return nil, ErrEmptyCutlistParts
	}
	parts := make([]entities.CutlistPart, 0, len(r.Parts))
	for _, p := range r.Parts {
		if strings.TrimSpace(p.MaterialName) == "" || p.ThicknessMM <= 0 || p.WidthMM <= 0 || p.HeightMM <= 0 || p.Count <= 0 {
			return nil, ErrInvalidPart
		}
		parts = append(parts, entities.CutlistPart{
			MaterialName: strings.TrimSpace(p.MaterialName),
			ThicknessMM:  p.ThicknessMM,
			WidthMM:      p.WidthMM,
			HeightMM:     p.HeightMM,
			Count:        p.Count,
		})
	}
	return parts, nil
}

// LineItemRequest is the payload for manual line-item create/update. UnitPrice
// is a final post-markup whole-unit amount.
type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Unit        string  `json:"unit"`
	UnitPrice   int64   `json:"unit_price"`
	Notes       string  `json:"notes"`
}

// FlagStaleRequest marks the stored estimate stale with an optional reason.
type FlagStaleRequest struct {
	Reason string `json:"reason"`
}
