package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/domain/pricing"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrProjectNotFound  = errors.New("project not found")
	ErrEstimateNotFound = errors.New("estimate not found")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrInvalidLineItem  = errors.New("invalid line item")
	ErrEmptyCutlist     = errors.New("empty cutlist")
)

// Legacy cutlist labor defaults, used when the request does not override them.
const (
	defaultLaborMinutesPerPart = 30.0
	defaultShopHourlyRate      = 600.0
)

// LineItemInput is the manual line-item payload for the mutation API.
// UnitPrice is a final (post-markup) whole-unit price entered by the user.
type LineItemInput struct {
	Description string
	Category    entities.LineItemCategory
	Quantity    float64
	Unit        string
	UnitPrice   int64
	Notes       string
}

func (in LineItemInput) validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrInvalidLineItem
	}
	if in.Quantity <= 0 || in.UnitPrice < 0 {
		return ErrInvalidLineItem
	}
	return nil
}

// CutlistInput is the legacy estimate path's payload: raw cutlist parts plus
// optional labor overrides and a material-palette price mapping that takes
// precedence over the inventory lookup.
type CutlistInput struct {
	Parts               []entities.CutlistPart
	LaborMinutesPerPart float64
	ShopHourlyRate      float64
	PalettePrices       map[string]float64
}

// IEstimateUseCase exposes consolidated-estimate operations:
//   - generate from costed work items (the primary path)
//   - generate from a cutlist (legacy path, converges on the same composer)
//   - manual line-item mutations with idempotent recalculation

type IEstimateUseCase interface {
	CalculateEstimate(ctx context.Context, projectID, generatedBy string) (entities.ConsolidatedEstimate, error)
	CalculateEstimateFromCutlist(ctx context.Context, projectID string, in CutlistInput, generatedBy string) (entities.ConsolidatedEstimate, error)
	GetEstimate(ctx context.Context, projectID string) (entities.ConsolidatedEstimate, error)
	AddLineItem(ctx context.Context, projectID string, in LineItemInput) (entities.ConsolidatedEstimate, error)
	UpdateLineItem(ctx context.Context, projectID, lineItemID string, in LineItemInput) (entities.ConsolidatedEstimate, error)
	RemoveLineItem(ctx context.Context, projectID, lineItemID string) (entities.ConsolidatedEstimate, error)
}

type EstimateUseCase struct {
	projects  interfaces.IProjectRepository
	workItems interfaces.IWorkItemRepository
	materials interfaces.IMaterialRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(projects interfaces.IProjectRepository, workItems interfaces.IWorkItemRepository, materials interfaces.IMaterialRepository) *EstimateUseCase {
	return &EstimateUseCase{projects: projects, workItems: workItems, materials: materials}
}

func (u *EstimateUseCase) CalculateEstimate(ctx context.Context, projectID, generatedBy string) (entities.ConsolidatedEstimate, error) {
	project, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.ConsolidatedEstimate{}, err
	}

	items, err := u.workItems.ListByProjectID(ctx, project.ID)
	if err != nil {
		return entities.ConsolidatedEstimate{}, err
	}

	gen := pricing.Generate(items, project.Strategy, pricing.RateTable{Overrides: project.RateConfig})
	est := pricing.Compose(gen, composeOptions(project, generatedBy))
	log.Printf("[estimate][usecase] generated project_id=%s line_items=%d error_checks=%d subtotal=%d",
		project.ID, len(est.LineItems), len(est.ErrorChecks), est.Subtotal)

	return u.persist(ctx, project.ID, est)
}

func (u *EstimateUseCase) CalculateEstimateFromCutlist(ctx context.Context, projectID string, in CutlistInput, generatedBy string) (entities.ConsolidatedEstimate, error) {
	project, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.ConsolidatedEstimate{}, err
	}
	if len(in.Parts) == 0 {
		return entities.ConsolidatedEstimate{}, ErrEmptyCutlist
	}

	opts := pricing.CutlistOptions{
		LaborMinutesPerPart: in.LaborMinutesPerPart,
		ShopHourlyRate:      in.ShopHourlyRate,
		Prices:              u.priceResolvers(ctx, in.PalettePrices),
	}
	if opts.LaborMinutesPerPart <= 0 {
		opts.LaborMinutesPerPart = defaultLaborMinutesPerPart
	}
	if opts.ShopHourlyRate <= 0 {
		opts.ShopHourlyRate = defaultShopHourlyRate
	}

	gen := pricing.GenerateFromCutlist(in.Parts, opts)
	est := pricing.Compose(gen, composeOptions(project, generatedBy))
	log.Printf("[estimate][usecase] generated from cutlist project_id=%s parts=%d line_items=%d subtotal=%d",
		project.ID, len(in.Parts), len(est.LineItems), est.Subtotal)

	return u.persist(ctx, project.ID, est)
}

// priceResolvers builds the ordered sheet-price fallback chain: request
// palette first, then the centralized inventory. The hardcoded thickness
// table inside ResolveSheetPrice is the implicit last resort.
func (u *EstimateUseCase) priceResolvers(ctx context.Context, palette map[string]float64) []pricing.PriceResolver {
	var resolvers []pricing.PriceResolver

	if len(palette) > 0 {
		resolvers = append(resolvers, func(name string, _ float64) (float64, bool) {
			price, ok := palette[name]
			return price, ok
		})
	}

	if u.materials != nil {
		resolvers = append(resolvers, func(name string, thicknessMM float64) (float64, bool) {
			price, found, err := u.materials.GetPrice(ctx, name, thicknessMM)
			if err != nil {
				log.Printf("[estimate][usecase] inventory price lookup failed material=%q err=%v", name, err)
				return 0, false
			}
			return price, found
		})
	}
	return resolvers
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, projectID string) (entities.ConsolidatedEstimate, error) {
	project, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.ConsolidatedEstimate{}, err
	}
	if project.Estimate == nil {
		return entities.ConsolidatedEstimate{}, ErrEstimateNotFound
	}
	return *project.Estimate, nil
}

func (u *EstimateUseCase) AddLineItem(ctx context.Context, projectID string, in LineItemInput) (entities.ConsolidatedEstimate, error) {
	if err := in.validate(); err != nil {
		return entities.ConsolidatedEstimate{}, err
	}

	return u.mutate(ctx, projectID, func(est *entities.ConsolidatedEstimate) error {
		category := in.Category
		if category == "" {
			category = entities.LineItemCategoryOther
		}
		est.LineItems = append(est.LineItems, entities.LineItem{
			ID:          uuid.NewString(),
			Description: strings.TrimSpace(in.Description),
			Category:    category,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			UnitPrice:   in.UnitPrice,
			Notes:       in.Notes,
			IsManual:    true,
		})
		return nil
	})
}

func (u *EstimateUseCase) UpdateLineItem(ctx context.Context, projectID, lineItemID string, in LineItemInput) (entities.ConsolidatedEstimate, error) {
	lineItemID = strings.TrimSpace(lineItemID)
	if lineItemID == "" {
		return entities.ConsolidatedEstimate{}, ErrLineItemNotFound
	}
	if err := in.validate(); err != nil {
		return entities.ConsolidatedEstimate{}, err
	}

	return u.mutate(ctx, projectID, func(est *entities.ConsolidatedEstimate) error {
		for i := range est.LineItems {
			if est.LineItems[i].ID != lineItemID {
				continue
			}
			li := &est.LineItems[i]
			li.Description = strings.TrimSpace(in.Description)
			if in.Category != "" {
				li.Category = in.Category
			}
			li.Quantity = in.Quantity
			li.Unit = in.Unit
			li.UnitPrice = in.UnitPrice
			li.Notes = in.Notes
			return nil
		}
		return ErrLineItemNotFound
	})
}

func (u *EstimateUseCase) RemoveLineItem(ctx context.Context, projectID, lineItemID string) (entities.ConsolidatedEstimate, error) {
	lineItemID = strings.TrimSpace(lineItemID)
	if lineItemID == "" {
		return entities.ConsolidatedEstimate{}, ErrLineItemNotFound
	}

	return u.mutate(ctx, projectID, func(est *entities.ConsolidatedEstimate) error {
		for i := range est.LineItems {
			if est.LineItems[i].ID == lineItemID {
				est.LineItems = append(est.LineItems[:i], est.LineItems[i+1:]...)
				return nil
			}
		}
		return ErrLineItemNotFound
	})
}

// mutate runs one line-item mutation against the project's current estimate,
// recomputes totals and persists the result. Validation happens before any
// write; a failed mutation leaves stored state untouched.
func (u *EstimateUseCase) mutate(ctx context.Context, projectID string, apply func(*entities.ConsolidatedEstimate) error) (entities.ConsolidatedEstimate, error) {
	project, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.ConsolidatedEstimate{}, err
	}
	if project.Estimate == nil {
		return entities.ConsolidatedEstimate{}, ErrEstimateNotFound
	}

	est := *project.Estimate
	est.LineItems = append([]entities.LineItem(nil), project.Estimate.LineItems...)
	if err := apply(&est); err != nil {
		return entities.ConsolidatedEstimate{}, err
	}

	est = pricing.Recompose(est)
	return u.persist(ctx, project.ID, est)
}

func (u *EstimateUseCase) loadProject(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return project, nil
}

func (u *EstimateUseCase) persist(ctx context.Context, projectID string, est entities.ConsolidatedEstimate) (entities.ConsolidatedEstimate, error) {
	updated, err := u.projects.SaveEstimate(ctx, projectID, est)
	if err != nil {
		log.Printf("[estimate][usecase] persist failed project_id=%s err=%v", projectID, err)
		return entities.ConsolidatedEstimate{}, err
	}
	if updated.Estimate == nil {
		return est, nil
	}
	return *updated.Estimate, nil
}

func composeOptions(project entities.Project, generatedBy string) pricing.Options {
	currency := project.Currency
	if currency == "" {
		currency = "INR"
	}
	return pricing.Options{
		OverheadPercent: project.OverheadPercent,
		MarginPercent:   project.MarginPercent,
		TaxRate:         project.TaxRate,
		TaxMode:         project.TaxMode,
		Currency:        currency,
		GeneratedBy:     generatedBy,
		Now:             time.Now().UTC(),
	}
}
