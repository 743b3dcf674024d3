package interfaces

import (
	"context"

	"atelier_ops/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// The consolidated estimate is a nested attribute of the project document;
// SaveEstimate and FlagEstimateStale replace that single attribute as a unit
// (merge-style update), leaving the rest of the document untouched.
// Repositories return a zero-value entity when the document does not exist.

type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	SaveEstimate(ctx context.Context, projectID string, est entities.ConsolidatedEstimate) (entities.Project, error)
	FlagEstimateStale(ctx context.Context, projectID, reason string) (entities.Project, error)
}
