package request

// CreateQuoteRequest snapshots the project's current estimate into a draft
// quote addressed to one client.
type CreateQuoteRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email"`
}

// SendQuoteRequest moves a draft quote to sent. ValidDays <= 0 falls back to
// the default validity window.
type SendQuoteRequest struct {
	ValidDays int `json:"valid_days"`
}

// QuoteDecisionRequest is the portal decision body; the comment is optional
// for approvals and usually present for rejections and revision requests.
type QuoteDecisionRequest struct {
	Comment string `json:"comment"`
}
