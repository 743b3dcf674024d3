package entities

import "time"

// SourcingType discriminates the cost model a work item carries.
//
// Exactly one of the costing sub-records on WorkItem is meaningful for a given
// sourcing type; the others stay nil.

type SourcingType string

const (
	SourcingManufactured   SourcingType = "manufactured"
	SourcingProcured       SourcingType = "procured"
	SourcingDesignDocument SourcingType = "design_document"
	SourcingConstruction   SourcingType = "construction"
)

// BudgetTier selects the cost multiplier band for an item or project.

type BudgetTier string

const (
	BudgetTierEconomy  BudgetTier = "economy"
	BudgetTierStandard BudgetTier = "standard"
	BudgetTierPremium  BudgetTier = "premium"
)

// ManufacturingCosting is the costing sub-record for in-house manufactured and
// custom furniture items. CostPerUnit wins when present; otherwise the unit
// cost is derived from TotalCost/Quantity.
type ManufacturingCosting struct {
	CostPerUnit float64 `json:"cost_per_unit,omitempty" dynamodbav:"cost_per_unit,omitempty"`
	TotalCost   float64 `json:"total_cost,omitempty" dynamodbav:"total_cost,omitempty"`
	Quantity    float64 `json:"quantity,omitempty" dynamodbav:"quantity,omitempty"`
}

// ProcurementCosting is the costing sub-record for bought-in items.
type ProcurementCosting struct {
	LandedCostPerUnit float64 `json:"landed_cost_per_unit,omitempty" dynamodbav:"landed_cost_per_unit,omitempty"`
	TotalLandedCost   float64 `json:"total_landed_cost,omitempty" dynamodbav:"total_landed_cost,omitempty"`
	Quantity          float64 `json:"quantity,omitempty" dynamodbav:"quantity,omitempty"`
}

// CostedExtra is a priced auxiliary entry (logistics, external studies) on an
// architectural costing record.
type CostedExtra struct {
	Description string  `json:"description" dynamodbav:"description"`
	Cost        float64 `json:"cost" dynamodbav:"cost"`
}

// ArchitecturalCosting prices design-document deliverables from a role x stage
// hour matrix plus logistics and external studies.
//
// Hours is keyed hours[role][stage]. Hourly rates come from the project's
// saved rate configuration when present, else from the default rate table.
type ArchitecturalCosting struct {
	Hours           map[string]map[string]float64 `json:"hours,omitempty" dynamodbav:"hours,omitempty"`
	LogisticsItems  []CostedExtra                 `json:"logistics_items,omitempty" dynamodbav:"logistics_items,omitempty"`
	ExternalStudies []CostedExtra                 `json:"external_studies,omitempty" dynamodbav:"external_studies,omitempty"`
	AdminFeePercent float64                       `json:"admin_fee_percent,omitempty" dynamodbav:"admin_fee_percent,omitempty"`
}

// ConstructionCosting carries the already-composed construction total
// (quantity x unit rate + labor + materials, computed upstream).
type ConstructionCosting struct {
	TotalCost float64 `json:"total_cost,omitempty" dynamodbav:"total_cost,omitempty"`
}

// BudgetTracking holds the optional per-item budget allocation. A nil
// AllocatedBudget means the item is not budget-tracked.
type BudgetTracking struct {
	AllocatedBudget *float64 `json:"allocated_budget,omitempty" dynamodbav:"allocated_budget,omitempty"`
}

// StrategyContext is the item-level strategy override; its BudgetTier takes
// precedence over the project-level tier.
type StrategyContext struct {
	BudgetTier BudgetTier `json:"budget_tier,omitempty" dynamodbav:"budget_tier,omitempty"`
}

// WorkItem is one unit of project scope tracked for costing.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// SortOrder controls estimate ordering; items without a sort order sort last.
// CostingUpdatedAt is bumped only when the costing sub-record is saved, which
// is what the staleness detector compares against UpdatedAt.
type WorkItem struct {
	ID               string       `json:"id"`
	ProjectID        string       `json:"project_id"`
	Name             string       `json:"name"`
	Category         string       `json:"category,omitempty"`
	SourcingType     SourcingType `json:"sourcing_type"`
	RequiredQuantity float64      `json:"required_quantity"`
	SortOrder        *int         `json:"sort_order,omitempty"`

	Manufacturing *ManufacturingCosting `json:"manufacturing,omitempty"`
	Procurement   *ProcurementCosting   `json:"procurement,omitempty"`
	Architectural *ArchitecturalCosting `json:"architectural,omitempty"`
	Construction  *ConstructionCosting  `json:"construction,omitempty"`

	BudgetTracking  *BudgetTracking  `json:"budget_tracking,omitempty"`
	StrategyContext *StrategyContext `json:"strategy_context,omitempty"`

	UpdatedAt        time.Time  `json:"updated_at"`
	CostingUpdatedAt *time.Time `json:"costing_updated_at,omitempty"`
}

// HasCosting reports whether the sub-record matching the item's sourcing type
// is present at all. It does not validate the record's contents.
func (w WorkItem) HasCosting() bool {
	switch w.SourcingType {
	case SourcingManufactured:
		return w.Manufacturing != nil
	case SourcingProcured:
		return w.Procurement != nil
	case SourcingDesignDocument:
		return w.Architectural != nil
	case SourcingConstruction:
		return w.Construction != nil
	}
	return false
}
