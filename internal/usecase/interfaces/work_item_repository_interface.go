package interfaces

import (
	"context"

	"atelier_ops/internal/domain/entities"
)

// IWorkItemRepository abstracts DynamoDB persistence for WorkItem.
//
// ListByProjectID returns every work item of a project; ordering is applied
// by the pricing engine, not the store.

type IWorkItemRepository interface {
	ListByProjectID(ctx context.Context, projectID string) ([]entities.WorkItem, error)
}
