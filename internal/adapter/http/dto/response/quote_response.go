package response

import (
	"time"

	"atelier_ops/internal/domain/entities"
)

// QuoteResponse is the internal (authenticated) view of a quote. It carries
// the access token so the office can hand the portal link to the client.
type QuoteResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	QuoteNumber string `json:"quote_number"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email,omitempty"`

	Status      string `json:"status"`
	AccessToken string `json:"access_token"`

	LineItems []LineItemResponse `json:"line_items"`
	Subtotal  int64              `json:"subtotal"`
	TaxAmount int64              `json:"tax_amount"`
	Total     int64              `json:"total"`
	Currency  string             `json:"currency"`

	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	ClientComment string     `json:"client_comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PortalQuoteResponse is the client-facing view. It never echoes the access
// token or the client's email back to the browser.
type PortalQuoteResponse struct {
	QuoteNumber string `json:"quote_number"`
	ClientName  string `json:"client_name"`
	Status      string `json:"status"`

	LineItems []LineItemResponse `json:"line_items"`
	Subtotal  int64              `json:"subtotal"`
	TaxAmount int64              `json:"tax_amount"`
	Total     int64              `json:"total"`
	Currency  string             `json:"currency"`

	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	ClientComment string     `json:"client_comment,omitempty"`
}

func FromClientQuote(q entities.ClientQuote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		ProjectID:     q.ProjectID,
		QuoteNumber:   q.QuoteNumber,
		ClientName:    q.ClientName,
		ClientEmail:   q.ClientEmail,
		Status:        string(q.Status),
		AccessToken:   q.AccessToken,
		LineItems:     fromLineItems(q.LineItems),
		Subtotal:      q.Subtotal,
		TaxAmount:     q.TaxAmount,
		Total:         q.Total,
		Currency:      q.Currency,
		ValidUntil:    q.ValidUntil,
		DecidedAt:     q.DecidedAt,
		ClientComment: q.ClientComment,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func FromClientQuotes(quotes []entities.ClientQuote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromClientQuote(q))
	}
	return out
}

func FromClientQuoteForPortal(q entities.ClientQuote) PortalQuoteResponse {
	return PortalQuoteResponse{
		QuoteNumber:   q.QuoteNumber,
		ClientName:    q.ClientName,
		Status:        string(q.Status),
		LineItems:     fromLineItems(q.LineItems),
		Subtotal:      q.Subtotal,
		TaxAmount:     q.TaxAmount,
		Total:         q.Total,
		Currency:      q.Currency,
		ValidUntil:    q.ValidUntil,
		DecidedAt:     q.DecidedAt,
		ClientComment: q.ClientComment,
	}
}
