package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidQuoteToken   = errors.New("invalid quote token")
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrQuoteNotSendable    = errors.New("quote is not in a sendable state")
	ErrQuoteAlreadyDecided = errors.New("quote already decided")
	ErrQuoteExpired        = errors.New("quote expired")
	ErrInvalidClientName   = errors.New("invalid client name")
)

const defaultQuoteValidityDays = 14

// IQuoteUseCase drives the client-quote lifecycle: snapshot an estimate into
// a draft, send it, and record the client's portal decision by access token.

type IQuoteUseCase interface {
	CreateFromEstimate(ctx context.Context, projectID, clientName, clientEmail string) (entities.ClientQuote, error)
	Send(ctx context.Context, quoteID string, validDays int) (entities.ClientQuote, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ClientQuote, error)
	GetByToken(ctx context.Context, token string) (entities.ClientQuote, error)
	ApproveByToken(ctx context.Context, token, comment string) (entities.ClientQuote, error)
	RejectByToken(ctx context.Context, token, comment string) (entities.ClientQuote, error)
	RequestRevisionByToken(ctx context.Context, token, comment string) (entities.ClientQuote, error)
}

type QuoteUseCase struct {
	quotes   interfaces.IQuoteRepository
	projects interfaces.IProjectRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, projects interfaces.IProjectRepository) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, projects: projects}
}

// CreateFromEstimate snapshots the project's current consolidated estimate
// into a draft quote. The snapshot is frozen: later estimate recalculations
// do not touch existing quotes.
func (u *QuoteUseCase) CreateFromEstimate(ctx context.Context, projectID, clientName, clientEmail string) (entities.ClientQuote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.ClientQuote{}, ErrInvalidProjectID
	}
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return entities.ClientQuote{}, ErrInvalidClientName
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.ClientQuote{}, err
	}
	if project.ID == "" {
		return entities.ClientQuote{}, ErrProjectNotFound
	}
	if project.Estimate == nil {
		return entities.ClientQuote{}, ErrEstimateNotFound
	}

	existing, err := u.quotes.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.ClientQuote{}, err
	}

	est := project.Estimate
	now := time.Now().UTC()
	q := entities.ClientQuote{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		QuoteNumber: fmt.Sprintf("Q-%d-%03d", now.Year(), len(existing)+1),
		ClientName:  clientName,
		ClientEmail: strings.TrimSpace(clientEmail),
		Status:      entities.QuoteStatusDraft,
		AccessToken: uuid.NewString(),
		LineItems:   append([]entities.LineItem(nil), est.LineItems...),
		Subtotal:    est.Subtotal,
		TaxAmount:   est.TaxAmount,
		Total:       est.Total,
		Currency:    est.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.ClientQuote{}, err
	}
	log.Printf("[quote][usecase] created quote_id=%s project_id=%s number=%s total=%d", created.ID, projectID, created.QuoteNumber, created.Total)
	return created, nil
}

func (u *QuoteUseCase) Send(ctx context.Context, quoteID string, validDays int) (entities.ClientQuote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.ClientQuote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.ClientQuote{}, err
	}
	if q.ID == "" {
		return entities.ClientQuote{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.ClientQuote{}, ErrQuoteNotSendable
	}

	if validDays <= 0 {
		validDays = defaultQuoteValidityDays
	}
	now := time.Now().UTC()
	validUntil := now.AddDate(0, 0, validDays)

	q.Status = entities.QuoteStatusSent
	q.ValidUntil = &validUntil
	q.UpdatedAt = now

	updated, err := u.quotes.Update(ctx, q)
	if err != nil {
		return entities.ClientQuote{}, err
	}
	log.Printf("[quote][usecase] sent quote_id=%s valid_until=%s", updated.ID, validUntil.Format(time.RFC3339))
	return updated, nil
}

func (u *QuoteUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.ClientQuote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.quotes.ListByProjectID(ctx, projectID)
}

// GetByToken resolves a quote for the client portal. Expiry is applied lazily
// here; a first read of a sent quote marks it viewed.
func (u *QuoteUseCase) GetByToken(ctx context.Context, token string) (entities.ClientQuote, error) {
	q, err := u.loadByToken(ctx, token)
	if err != nil {
		return entities.ClientQuote{}, err
	}

	now := time.Now().UTC()
	if q.IsExpired(now) {
		return u.transition(ctx, q, entities.QuoteStatusExpired, "")
	}
	if q.Status == entities.QuoteStatusSent {
		return u.transition(ctx, q, entities.QuoteStatusViewed, "")
	}
	return q, nil
}

func (u *QuoteUseCase) ApproveByToken(ctx context.Context, token, comment string) (entities.ClientQuote, error) {
	return u.decide(ctx, token, entities.QuoteStatusApproved, comment)
}

func (u *QuoteUseCase) RejectByToken(ctx context.Context, token, comment string) (entities.ClientQuote, error) {
	return u.decide(ctx, token, entities.QuoteStatusRejected, comment)
}

func (u *QuoteUseCase) RequestRevisionByToken(ctx context.Context, token, comment string) (entities.ClientQuote, error) {
	return u.decide(ctx, token, entities.QuoteStatusRevisionRequested, comment)
}

func (u *QuoteUseCase) decide(ctx context.Context, token string, status entities.QuoteStatus, comment string) (entities.ClientQuote, error) {
	q, err := u.loadByToken(ctx, token)
	if err != nil {
		return entities.ClientQuote{}, err
	}

	now := time.Now().UTC()
	if q.IsDecided() {
		return entities.ClientQuote{}, ErrQuoteAlreadyDecided
	}
	if q.Status == entities.QuoteStatusExpired || q.IsExpired(now) {
		if q.Status != entities.QuoteStatusExpired {
			// Persist the lazy expiry even though the decision is refused.
			if _, err := u.transition(ctx, q, entities.QuoteStatusExpired, ""); err != nil {
				return entities.ClientQuote{}, err
			}
		}
		return entities.ClientQuote{}, ErrQuoteExpired
	}
	if q.Status != entities.QuoteStatusSent && q.Status != entities.QuoteStatusViewed {
		return entities.ClientQuote{}, ErrQuoteNotSendable
	}

	return u.transition(ctx, q, status, strings.TrimSpace(comment))
}

func (u *QuoteUseCase) transition(ctx context.Context, q entities.ClientQuote, status entities.QuoteStatus, comment string) (entities.ClientQuote, error) {
	now := time.Now().UTC()
	q.Status = status
	q.UpdatedAt = now
	if comment != "" {
		q.ClientComment = comment
	}
	if q.IsDecided() {
		q.DecidedAt = &now
	}

	updated, err := u.quotes.Update(ctx, q)
	if err != nil {
		return entities.ClientQuote{}, err
	}
	log.Printf("[quote][usecase] transition quote_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *QuoteUseCase) loadByToken(ctx context.Context, token string) (entities.ClientQuote, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.ClientQuote{}, ErrInvalidQuoteToken
	}
	q, err := u.quotes.GetByAccessToken(ctx, token)
	if err != nil {
		return entities.ClientQuote{}, err
	}
	if q.ID == "" {
		return entities.ClientQuote{}, ErrQuoteNotFound
	}
	return q, nil
}
