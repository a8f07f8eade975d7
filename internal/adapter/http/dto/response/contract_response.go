package response

import (
	"time"

	"autocover/internal/domain/entities"
)

type AddressResponse struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// PaymentCaptureResponse exposes only masked card metadata; the full number
// and CVV are never stored, so they can never be echoed.
type PaymentCaptureResponse struct {
	Method       string `json:"method,omitempty"`
	CardBrand    string `json:"card_brand,omitempty"`
	CardLastFour string `json:"card_last_four,omitempty"`
	ExpMonth     int    `json:"exp_month,omitempty"`
	ExpYear      int    `json:"exp_year,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type ContractResponse struct {
	ID              string                  `json:"id"`
	QuoteID         string                  `json:"quote_id"`
	State           string                  `json:"state"`
	FileURL         string                  `json:"file_url,omitempty"`
	Placeholder     bool                    `json:"placeholder"`
	SignerName      string                  `json:"signer_name,omitempty"`
	SignerEmail     string                  `json:"signer_email,omitempty"`
	Consent         bool                    `json:"consent"`
	Payment         *PaymentCaptureResponse `json:"payment,omitempty"`
	BillingAddress  *AddressResponse        `json:"billing_address,omitempty"`
	ShippingAddress *AddressResponse        `json:"shipping_address,omitempty"`
	SentAt          time.Time               `json:"sent_at"`
	SignedAt        *time.Time              `json:"signed_at,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	resp := ContractResponse{
		ID:          c.ID,
		QuoteID:     c.QuoteID,
		State:       string(c.State),
		FileURL:     c.FileURL,
		Placeholder: c.Placeholder,
		SignerName:  c.SignerName,
		SignerEmail: c.SignerEmail,
		Consent:     c.Consent,
		SentAt:      c.SentAt,
		SignedAt:    c.SignedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Payment != (entities.PaymentCapture{}) {
		resp.Payment = &PaymentCaptureResponse{
			Method:       c.Payment.Method,
			CardBrand:    c.Payment.CardBrand,
			CardLastFour: c.Payment.CardLastFour,
			ExpMonth:     c.Payment.ExpMonth,
			ExpYear:      c.Payment.ExpYear,
			Notes:        c.Payment.Notes,
		}
	}
	if c.BillingAddress != (entities.Address{}) {
		resp.BillingAddress = fromAddress(c.BillingAddress)
	}
	if c.ShippingAddress != (entities.Address{}) {
		resp.ShippingAddress = fromAddress(c.ShippingAddress)
	}
	return resp
}

func fromAddress(a entities.Address) *AddressResponse {
	return &AddressResponse{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
