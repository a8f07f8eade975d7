package entities

import "time"

// ContractState is the lifecycle of a signable contract document.
//
// draft -> sent -> signed, with void as an administrative terminal state.
// Creation and delivery are atomic in this system, so operators only ever
// see sent/signed/void; draft exists for completeness.

type ContractState string

const (
	ContractStateDraft  ContractState = "draft"
	ContractStateSent   ContractState = "sent"
	ContractStateSigned ContractState = "signed"
	ContractStateVoid   ContractState = "void"
)

// Terminal reports whether no further transition may leave the state.
func (s ContractState) Terminal() bool {
	return s == ContractStateSigned || s == ContractStateVoid
}

// Address is a captured billing or shipping address.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country,omitempty"`
}

// Complete reports whether the fields the sign flow requires are present.
func (a Address) Complete() bool {
	return a.Line1 != "" && a.City != "" && a.State != "" && a.PostalCode != ""
}

// PaymentCapture is the masked snapshot stored when a contract is signed.
// The full card number and CVV are validated and discarded; only brand,
// last four and expiry survive. Never re-displayed beyond these fields.
type PaymentCapture struct {
	Method       string `json:"method,omitempty"`
	CardBrand    string `json:"card_brand,omitempty"`
	CardLastFour string `json:"card_last_four,omitempty"`
	ExpMonth     int    `json:"exp_month,omitempty"`
	ExpYear      int    `json:"exp_year,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Contract is one signable document instance tied to a quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (quote_id-index): quote_id
//
// A quote may accumulate contracts over time (re-sent after an upload
// correction); the operator-facing signing status is read from the most
// recently created one. SignedAt is set iff State == signed, and a contract
// signs at most once.
type Contract struct {
	ID             string         `json:"id"`
	QuoteID        string         `json:"quote_id"`
	State          ContractState  `json:"state"`
	FileURL        string         `json:"file_url,omitempty"`
	Placeholder    bool           `json:"placeholder,omitempty"`
	SignerName     string         `json:"signer_name,omitempty"`
	SignerEmail    string         `json:"signer_email,omitempty"`
	Consent        bool           `json:"consent"`
	Payment        PaymentCapture `json:"payment,omitempty"`
	BillingAddress Address        `json:"billing_address,omitempty"`
	ShippingAddress Address       `json:"shipping_address,omitempty"`
	SentAt         time.Time      `json:"sent_at"`
	SignedAt       *time.Time     `json:"signed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
