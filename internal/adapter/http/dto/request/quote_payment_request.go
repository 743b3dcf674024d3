package request

import "encoding/json"

// DepositCreateRequest is the payload for recording a deposit on an approved
// quote.
//
// `provider_payload` is stored as-is (raw JSON) to support varying payment
// provider schemas.

type DepositCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
