package request

import (
	"autocover/internal/domain/entities"
)

// CreateContractRequest selects the document to send: an uploaded file URL
// or the standard placeholder contract.
type CreateContractRequest struct {
	FileURL     string `json:"file_url"`
	Placeholder bool   `json:"placeholder"`
}

type AddressRequest struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (r AddressRequest) ToAddress() entities.Address {
	return entities.Address{
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// SignContractRequest is the signature capture. The card number and CVV are
// validated downstream and never stored or echoed back.
type SignContractRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Consent bool   `json:"consent"`

	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number" binding:"required"`
	Cvv           string `json:"cvv" binding:"required"`
	ExpMonth      int    `json:"exp_month" binding:"required"`
	ExpYear       int    `json:"exp_year" binding:"required"`
	PaymentNotes  string `json:"payment_notes"`

	BillingAddress        AddressRequest `json:"billing_address"`
	ShippingAddress       AddressRequest `json:"shipping_address"`
	ShippingSameAsBilling bool           `json:"shipping_same_as_billing"`
}
