package pricing

import (
	"fmt"
	"time"

	"atelier_ops/internal/domain/entities"
)

// Severity classifies a project staleness report.

type Severity string

const (
	SeverityNone    Severity = "none"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// StalenessCheck is one check's outcome with its human-readable reasons and
// suggested actions. Derived on demand, never persisted.
type StalenessCheck struct {
	IsStale bool     `json:"is_stale"`
	Reasons []string `json:"reasons,omitempty"`
	Actions []string `json:"actions,omitempty"`
}

// ProjectStalenessReport unions optimization, estimate and per-item costing
// checks over one project.
type ProjectStalenessReport struct {
	Severity     Severity       `json:"severity"`
	Optimization StalenessCheck `json:"optimization"`
	Estimate     StalenessCheck `json:"estimate"`
	StaleItemIDs []string       `json:"stale_item_ids,omitempty"`
	Reasons      []string       `json:"reasons,omitempty"`
	Actions      []string       `json:"actions,omitempty"`
}

// itemCostingTime returns the best-known moment an item's costing was last
// saved; zero when the item was never costed.
func itemCostingTime(item entities.WorkItem) time.Time {
	if item.CostingUpdatedAt != nil {
		return *item.CostingUpdatedAt
	}
	return time.Time{}
}

// DetectOptimizationStaleness reports whether the project's optimization
// result is out of date: explicitly invalidated after it last became valid,
// or any work item changed after the optimization ran.
//
// A project with no optimization run yet is "not started", not stale.
func DetectOptimizationStaleness(project entities.Project, items []entities.WorkItem) StalenessCheck {
	opt := project.Optimization
	if opt == nil || opt.ValidAt == nil {
		return StalenessCheck{}
	}

	var check StalenessCheck
	if opt.InvalidatedAt != nil && opt.InvalidatedAt.After(*opt.ValidAt) {
		check.IsStale = true
		check.Reasons = append(check.Reasons, "optimization was explicitly invalidated")
		check.Actions = append(check.Actions, "re-run the optimization")
	}

	for _, item := range items {
		if item.UpdatedAt.After(*opt.ValidAt) || itemCostingTime(item).After(*opt.ValidAt) {
			check.IsStale = true
			check.Reasons = append(check.Reasons, fmt.Sprintf("work item %q changed after the optimization ran", item.Name))
			check.Actions = append(check.Actions, "re-run the optimization")
			break
		}
	}
	return check
}

// DetectEstimateStaleness reports whether the consolidated estimate is out of
// date: explicitly flagged, an item re-costed after generation, or the
// optimization re-run after generation.
//
// A project with no estimate yet is "not started", not stale.
func DetectEstimateStaleness(project entities.Project, items []entities.WorkItem) StalenessCheck {
	est := project.Estimate
	if est == nil {
		return StalenessCheck{}
	}

	var check StalenessCheck
	if est.IsStale {
		check.IsStale = true
		reason := est.StaleReason
		if reason == "" {
			reason = "estimate was flagged stale"
		}
		check.Reasons = append(check.Reasons, reason)
		check.Actions = append(check.Actions, "regenerate the estimate")
	}

	for _, item := range items {
		if itemCostingTime(item).After(est.GeneratedAt) {
			check.IsStale = true
			check.Reasons = append(check.Reasons, fmt.Sprintf("work item %q was re-costed after the estimate was generated", item.Name))
			check.Actions = append(check.Actions, "regenerate the estimate")
			break
		}
	}

	if opt := project.Optimization; opt != nil && opt.ValidAt != nil && opt.ValidAt.After(est.GeneratedAt) {
		check.IsStale = true
		check.Reasons = append(check.Reasons, "optimization was re-run after the estimate was generated")
		check.Actions = append(check.Actions, "regenerate the estimate")
	}
	return check
}

// DetectItemCostingStaleness reports whether an item changed after its own
// costing was last saved. Items never costed are not stale; they show up as
// unpriceable instead.
func DetectItemCostingStaleness(item entities.WorkItem) bool {
	costedAt := itemCostingTime(item)
	if costedAt.IsZero() {
		return false
	}
	return item.UpdatedAt.After(costedAt)
}

// BuildProjectReport unions all three staleness checks. Severity is error
// when any item has no valid costing at all, warning when anything is stale,
// none otherwise.
func BuildProjectReport(project entities.Project, items []entities.WorkItem) ProjectStalenessReport {
	report := ProjectStalenessReport{
		Optimization: DetectOptimizationStaleness(project, items),
		Estimate:     DetectEstimateStaleness(project, items),
	}

	anyUncosted := false
	for _, item := range items {
		if !item.HasCosting() {
			anyUncosted = true
			report.Reasons = append(report.Reasons, fmt.Sprintf("work item %q has no costing", item.Name))
			report.Actions = append(report.Actions, "save costing for every work item")
			continue
		}
		if DetectItemCostingStaleness(item) {
			report.StaleItemIDs = append(report.StaleItemIDs, item.ID)
			report.Reasons = append(report.Reasons, fmt.Sprintf("work item %q changed after its costing was saved", item.Name))
			report.Actions = append(report.Actions, "re-save costing for the changed items")
		}
	}

	report.Reasons = append(report.Reasons, report.Optimization.Reasons...)
	report.Reasons = append(report.Reasons, report.Estimate.Reasons...)
	report.Actions = append(report.Actions, report.Optimization.Actions...)
	report.Actions = append(report.Actions, report.Estimate.Actions...)

	switch {
	case anyUncosted:
		report.Severity = SeverityError
	case report.Optimization.IsStale || report.Estimate.IsStale || len(report.StaleItemIDs) > 0:
		report.Severity = SeverityWarning
	default:
		report.Severity = SeverityNone
	}
	return report
}
