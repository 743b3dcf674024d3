package interfaces

import (
	"context"

	"atelier_ops/internal/domain/entities"
)

// IMaterialRepository abstracts the centralized sheet-material inventory.
//
// GetPrice distinguishes "not found" (found=false) from "found at zero price"
// (found=true, price 0); the sheet-pricing fallback chain depends on that
// distinction.

type IMaterialRepository interface {
	GetPrice(ctx context.Context, name string, thicknessMM float64) (price float64, found bool, err error)
	GetByID(ctx context.Context, id string) (entities.SheetMaterial, error)
}
