package entities

import "time"

type QuoteStatus string

const (
	QuoteStatusOpen     QuoteStatus = "open"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusExpired  QuoteStatus = "expired"
)

type CoveragePlan string

const (
	CoveragePlanBasic  CoveragePlan = "basic"
	CoveragePlanSilver CoveragePlan = "silver"
	CoveragePlanGold   CoveragePlan = "gold"
)

func (p CoveragePlan) IsValid() bool {
	switch p {
	case CoveragePlanBasic, CoveragePlanSilver, CoveragePlanGold:
		return true
	}
	return false
}

type PaymentOption string

const (
	PaymentOptionOneTime PaymentOption = "one-time"
	PaymentOptionMonthly PaymentOption = "monthly"
)

func (o PaymentOption) IsValid() bool {
	return o == PaymentOptionOneTime || o == PaymentOptionMonthly
}

// QuoteBreakdown carries the extras a quote was priced with, kept for
// downstream display alongside the quote itself.
type QuoteBreakdown struct {
	ExpirationMiles int64         `json:"expiration_miles,omitempty"`
	PaymentOption   PaymentOption `json:"payment_option,omitempty"`
}

// Quote is a priced coverage offer attached to a lead. Immutable once
// created; repricing produces a new quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (lead_id-index): lead_id
//
// Monetary representation: integer cents throughout. The creation invariant
// PriceTotalCents == PriceMonthlyCents * TermMonths is enforced by the use
// case before persistence.
type Quote struct {
	ID                string          `json:"id"`
	LeadID            string          `json:"lead_id"`
	Plan              CoveragePlan    `json:"plan"`
	DeductibleCents   int64           `json:"deductible_cents"`
	TermMonths        int             `json:"term_months"`
	PriceTotalCents   int64           `json:"price_total_cents"`
	PriceMonthlyCents int64           `json:"price_monthly_cents"`
	Status            QuoteStatus     `json:"status"`
	Breakdown         *QuoteBreakdown `json:"breakdown,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
