package entities

import "time"

// QuoteStatus represents the client-quote lifecycle.
//
// Transitions:
//   - draft -> sent (internal user sends the quote)
//   - sent -> viewed (client opens the portal link)
//   - sent|viewed -> approved | rejected | revision_requested (client decision)
//   - sent|viewed -> expired (ValidUntil passed; applied lazily on read)

type QuoteStatus string

const (
	QuoteStatusDraft             QuoteStatus = "draft"
	QuoteStatusSent              QuoteStatus = "sent"
	QuoteStatusViewed            QuoteStatus = "viewed"
	QuoteStatusApproved          QuoteStatus = "approved"
	QuoteStatusRejected          QuoteStatus = "rejected"
	QuoteStatusRevisionRequested QuoteStatus = "revision_requested"
	QuoteStatusExpired           QuoteStatus = "expired"
)

// ClientQuote is a customer-facing snapshot of a consolidated estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//   - GSI2 (access_token-index): access_token
//
// AccessToken grants unauthenticated portal access; it is an opaque random
// token, never guessable from the quote id. Line items and totals are copied
// from the estimate at creation time and do not track later recalculations.
type ClientQuote struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	QuoteNumber string `json:"quote_number"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email,omitempty"`

	Status      QuoteStatus `json:"status"`
	AccessToken string      `json:"access_token"`

	LineItems []LineItem `json:"line_items"`
	Subtotal  int64      `json:"subtotal"`
	TaxAmount int64      `json:"tax_amount"`
	Total     int64      `json:"total"`
	Currency  string     `json:"currency"`

	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	ClientComment string     `json:"client_comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDecided reports whether the client has already acted on the quote.
func (q ClientQuote) IsDecided() bool {
	switch q.Status {
	case QuoteStatusApproved, QuoteStatusRejected, QuoteStatusRevisionRequested:
		return true
	}
	return false
}

// IsExpired reports whether the quote's validity window has passed at the
// given instant. Draft quotes never expire; decided quotes stay decided.
func (q ClientQuote) IsExpired(now time.Time) bool {
	if q.Status == QuoteStatusDraft || q.IsDecided() {
		return false
	}
	return q.ValidUntil != nil && now.After(*q.ValidUntil)
}
