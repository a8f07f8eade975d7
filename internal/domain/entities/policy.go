package entities

import "time"

// Policy is the issued coverage record, created exactly once per lead via
// the conversion use case. No other code path may attach a policy to a lead.
//
// Storage model (DynamoDB):
//   - PK: lead_id
//
// The lead id doubles as the partition key so the conditional put that
// creates a policy is also the at-most-once guard: two concurrent convert
// calls cannot both insert.
//
// Invariants:
//   - PaymentOption == monthly => MonthlyPaymentCents > 0 and TotalPayments > 0.
//   - ExpirationDate defaults to PolicyStartDate + 5 years unless an operator
//     set it explicitly (ExpirationDateManual records that, so later edits
//     never silently overwrite a deliberate choice).
type Policy struct {
	ID                    string        `json:"id"`
	LeadID                string        `json:"lead_id"`
	Package               CoveragePlan  `json:"package"`
	PolicyStartDate       time.Time     `json:"policy_start_date"`
	ExpirationDate        time.Time     `json:"expiration_date"`
	ExpirationDateManual  bool          `json:"expiration_date_manual"`
	ExpirationMiles       int64         `json:"expiration_miles"`
	DeductibleCents       int64         `json:"deductible_cents"`
	TotalPremiumCents     int64         `json:"total_premium_cents"`
	DownPaymentCents      int64         `json:"down_payment_cents,omitempty"`
	MonthlyPaymentCents   int64         `json:"monthly_payment_cents,omitempty"`
	TotalPayments         int           `json:"total_payments,omitempty"`
	PaymentOption         PaymentOption `json:"payment_option"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}
