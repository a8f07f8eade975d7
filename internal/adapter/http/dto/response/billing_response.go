package response

import (
	"time"

	"autocover/internal/domain/entities"
	"autocover/pkg/money"
)

type BillingProfileResponse struct {
	PolicyID          string    `json:"policy_id"`
	PaymentMethod     string    `json:"payment_method"`
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

func FromBillingProfile(p entities.BillingProfile) BillingProfileResponse {
	return BillingProfileResponse{
		PolicyID:          p.PolicyID,
		PaymentMethod:     p.PaymentMethod,
		AccountName:       p.AccountName,
		AccountIdentifier: p.AccountIdentifier,
		CardBrand:         p.CardBrand,
		CardLastFour:      p.CardLastFour,
		CardExpiryMonth:   p.CardExpiryMonth,
		CardExpiryYear:    p.CardExpiryYear,
		BillingZip:        p.BillingZip,
		AutopayEnabled:    p.AutopayEnabled,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type PolicyChargeResponse struct {
	ID          string    `json:"id"`
	PolicyID    string    `json:"policy_id"`
	AmountCents int64     `json:"amount_cents"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	ChargedAt   time.Time `json:"charged_at"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPolicyCharge(c entities.PolicyCharge) PolicyChargeResponse {
	return PolicyChargeResponse{
		ID:                 c.ID,
		PolicyID:           c.PolicyID,
		AmountCents:        c.AmountCents,
		Amount:             money.FormatCentsToDecimal(c.AmountCents),
		Status:             string(c.Status),
		Description:        c.Description,
		ChargedAt:          c.ChargedAt,
		ProviderPaymentID:  c.ProviderPaymentID,
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
		ProviderPayload:    c.ProviderPayload,
	}
}

func FromPolicyCharges(charges []entities.PolicyCharge) []PolicyChargeResponse {
	out := make([]PolicyChargeResponse, 0, len(charges))
	for _, c := range charges {
		out = append(out, FromPolicyCharge(c))
	}
	return out
}
