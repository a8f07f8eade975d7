package entities

import "time"

// BillingProfile is the stored payment method and autopay preference for a
// policy. One per policy, replace-in-place semantics: an upsert overwrites
// the whole record, no history is kept.
//
// Storage model (DynamoDB):
//   - PK: policy_id
//
// Card data is masked before it reaches this struct (brand + last four
// only); the full number is never persisted. The autopay flag is a plain
// recorded preference; recurring-charge scheduling belongs to the external
// billing collaborator.
type BillingProfile struct {
	PolicyID          string    `json:"policy_id"`
	PaymentMethod     string    `json:"payment_method,omitempty"`
	AccountName       string    `json:"account_name,omitempty"`
	AccountIdentifier string    `json:"account_identifier,omitempty"`
	CardBrand         string    `json:"card_brand,omitempty"`
	CardLastFour      string    `json:"card_last_four,omitempty"`
	CardExpiryMonth   int       `json:"card_expiry_month,omitempty"`
	CardExpiryYear    int       `json:"card_expiry_year,omitempty"`
	BillingZip        string    `json:"billing_zip,omitempty"`
	AutopayEnabled    bool      `json:"autopay_enabled"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
