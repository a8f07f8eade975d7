package request

import (
	"encoding/json"

	"autocover/pkg/money"
)

// UpsertBillingProfileRequest replaces the policy's billing profile
// wholesale. Only card metadata is accepted; there is no PAN field.
type UpsertBillingProfileRequest struct {
	PaymentMethod     string `json:"payment_method" binding:"required"`
	AccountName       string `json:"account_name"`
	AccountIdentifier string `json:"account_identifier"`
	CardBrand         string `json:"card_brand"`
	CardLastFour      string `json:"card_last_four"`
	CardExpiryMonth   int    `json:"card_expiry_month"`
	CardExpiryYear    int    `json:"card_expiry_year"`
	BillingZip        string `json:"billing_zip"`
	AutopayEnabled    bool   `json:"autopay_enabled"`
	Notes             string `json:"notes"`
}

// RecordChargeRequest asks the gateway to execute a charge and appends the
// outcome to the policy's ledger. Amount is a decimal dollar string.
//
// `provider_payload` is forwarded to the provider as-is (raw JSON) to
// support varying Mercado Pago schemas.
type RecordChargeRequest struct {
	Amount          string          `json:"amount" binding:"required"`
	Description     string          `json:"description"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}

func (r RecordChargeRequest) ResolveAmountCents() (int64, error) {
	return money.ParseDecimalToCents(r.Amount)
}

// ApplyChargeStatusRequest records a provider-reported status change (e.g. a
// refund notification) against an existing ledger entry.
type ApplyChargeStatusRequest struct {
	ProviderStatus string `json:"provider_status" binding:"required"`
}
