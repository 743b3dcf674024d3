package usecase

import (
	"context"
	"log"
	"strings"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/domain/pricing"
	"atelier_ops/internal/usecase/interfaces"
)

// IStalenessUseCase computes workflow staleness on demand. Reports are
// derived values and never persisted; FlagEstimateStale only writes the
// advisory flag onto the stored estimate, without recomputing it.

type IStalenessUseCase interface {
	ProjectReport(ctx context.Context, projectID string) (pricing.ProjectStalenessReport, error)
	FlagEstimateStale(ctx context.Context, projectID, reason string) (entities.ConsolidatedEstimate, error)
}

type StalenessUseCase struct {
	projects  interfaces.IProjectRepository
	workItems interfaces.IWorkItemRepository
}

var _ IStalenessUseCase = (*StalenessUseCase)(nil)

func NewStalenessUseCase(projects interfaces.IProjectRepository, workItems interfaces.IWorkItemRepository) *StalenessUseCase {
	return &StalenessUseCase{projects: projects, workItems: workItems}
}

func (u *StalenessUseCase) ProjectReport(ctx context.Context, projectID string) (pricing.ProjectStalenessReport, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return pricing.ProjectStalenessReport{}, ErrInvalidProjectID
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return pricing.ProjectStalenessReport{}, err
	}
	if project.ID == "" {
		return pricing.ProjectStalenessReport{}, ErrProjectNotFound
	}

	items, err := u.workItems.ListByProjectID(ctx, projectID)
	if err != nil {
		return pricing.ProjectStalenessReport{}, err
	}

	report := pricing.BuildProjectReport(project, items)
	log.Printf("[staleness][usecase] report project_id=%s severity=%s reasons=%d", projectID, report.Severity, len(report.Reasons))
	return report, nil
}

func (u *StalenessUseCase) FlagEstimateStale(ctx context.Context, projectID, reason string) (entities.ConsolidatedEstimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.ConsolidatedEstimate{}, ErrInvalidProjectID
	}

	project, err := u.projects.FlagEstimateStale(ctx, projectID, reason)
	if err != nil {
		return entities.ConsolidatedEstimate{}, err
	}
	if project.ID == "" {
		return entities.ConsolidatedEstimate{}, ErrProjectNotFound
	}
	if project.Estimate == nil {
		return entities.ConsolidatedEstimate{}, ErrEstimateNotFound
	}
	return *project.Estimate, nil
}
