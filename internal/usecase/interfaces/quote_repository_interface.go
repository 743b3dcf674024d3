package interfaces

import (
	"context"

	"atelier_ops/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for ClientQuote.
//
// GetByAccessToken backs the unauthenticated client portal. Update replaces
// the whole quote document; quote state transitions always flow through the
// use case, never through partial field updates.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.ClientQuote) (entities.ClientQuote, error)
	GetByID(ctx context.Context, id string) (entities.ClientQuote, error)
	GetByAccessToken(ctx context.Context, token string) (entities.ClientQuote, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ClientQuote, error)
	Update(ctx context.Context, q entities.ClientQuote) (entities.ClientQuote, error)
}
