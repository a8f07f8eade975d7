package request

import (
	"strings"

	"autocover/internal/domain/entities"
	"autocover/internal/domain/pricing"
	"autocover/pkg/money"
)

// CreateQuoteRequest carries monetary fields as decimal dollar strings
// (`"124.96"`, `"$2,999.00"`); they are parsed to integer cents before the
// use case ever sees them.
type CreateQuoteRequest struct {
	Plan            string `json:"plan" binding:"required"`
	Deductible      string `json:"deductible"`
	TermMonths      int    `json:"term_months" binding:"required"`
	PriceMonthly    string `json:"price_monthly" binding:"required"`
	PaymentOption   string `json:"payment_option"`
	ExpirationMiles *int64 `json:"expiration_miles"`
}

func (r CreateQuoteRequest) ResolvePlan() entities.CoveragePlan {
	return entities.CoveragePlan(strings.TrimSpace(strings.ToLower(r.Plan)))
}

// ResolvePaymentOption defaults to monthly, matching how quotes are sold.
func (r CreateQuoteRequest) ResolvePaymentOption() entities.PaymentOption {
	v := strings.TrimSpace(strings.ToLower(r.PaymentOption))
	if v == "" {
		return entities.PaymentOptionMonthly
	}
	return entities.PaymentOption(v)
}

func (r CreateQuoteRequest) ResolveDeductibleCents() (int64, error) {
	if strings.TrimSpace(r.Deductible) == "" {
		return 0, nil
	}
	return money.ParseDecimalToCents(r.Deductible)
}

func (r CreateQuoteRequest) ResolvePriceMonthlyCents() (int64, error) {
	return money.ParseDecimalToCents(r.PriceMonthly)
}

// ReconcileQuoteDraftRequest applies one edit event to a client-held quote
// draft. Price fields carry integer cents here because the draft round-trips
// between client and server; only the edit value is the raw typed string.
type ReconcileQuoteDraftRequest struct {
	Plan                 string `json:"plan"`
	DeductibleCents      int64  `json:"deductible_cents"`
	TermMonths           int    `json:"term_months"`
	PriceTotalCents      int64  `json:"price_total_cents"`
	PriceMonthlyCents    int64  `json:"price_monthly_cents"`
	ExpirationMiles      int64  `json:"expiration_miles"`
	PaymentOption        string `json:"payment_option"`
	LastEditedPriceField string `json:"last_edited_price_field"`

	Edit QuoteDraftEditRequest `json:"edit" binding:"required"`
}

type QuoteDraftEditRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (r ReconcileQuoteDraftRequest) ToDraft() pricing.Draft {
	return pricing.Draft{
		Plan:                 entities.CoveragePlan(strings.TrimSpace(strings.ToLower(r.Plan))),
		DeductibleCents:      r.DeductibleCents,
		TermMonths:           r.TermMonths,
		PriceTotalCents:      r.PriceTotalCents,
		PriceMonthlyCents:    r.PriceMonthlyCents,
		ExpirationMiles:      r.ExpirationMiles,
		PaymentOption:        entities.PaymentOption(strings.TrimSpace(strings.ToLower(r.PaymentOption))),
		LastEditedPriceField: pricing.PriceField(r.LastEditedPriceField),
	}
}

func (r ReconcileQuoteDraftRequest) ToEdit() pricing.Edit {
	return pricing.Edit{
		Field: pricing.EditField(strings.TrimSpace(r.Edit.Field)),
		Value: r.Edit.Value,
	}
}
