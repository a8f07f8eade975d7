package entities

import (
	"encoding/json"
	"time"
)

// ChargeStatus is the billing outcome reported by the external payment
// collaborator. The ledger stores whatever the provider said; it never
// transitions a status on its own.

type ChargeStatus string

const (
	ChargeStatusPending    ChargeStatus = "pending"
	ChargeStatusProcessing ChargeStatus = "processing"
	ChargeStatusPaid       ChargeStatus = "paid"
	ChargeStatusFailed     ChargeStatus = "failed"
	ChargeStatusRefunded   ChargeStatus = "refunded"
)

// PolicyCharge is one ledger entry representing a billing attempt against a
// policy. Append-only: entries are added or status-updated from provider
// reports, never rewritten, and listings are most-recent-first by ChargedAt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (policy_id-index): policy_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider response (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation for debugging.
type PolicyCharge struct {
	ID          string       `json:"id"`
	PolicyID    string       `json:"policy_id"`
	AmountCents int64        `json:"amount_cents"`
	Status      ChargeStatus `json:"status"`
	Description string       `json:"description,omitempty"`
	ChargedAt   time.Time    `json:"charged_at"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
