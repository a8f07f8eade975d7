package response

import (
	"time"

	"autocover/internal/domain/entities"
	"autocover/internal/domain/pricing"
	"autocover/pkg/money"
)

type QuoteBreakdownResponse struct {
	ExpirationMiles int64  `json:"expiration_miles,omitempty"`
	PaymentOption   string `json:"payment_option,omitempty"`
}

// QuoteResponse carries every monetary value twice: exact integer cents for
// machines and a formatted decimal dollar string for display.
type QuoteResponse struct {
	ID                string                  `json:"id"`
	LeadID            string                  `json:"lead_id"`
	Plan              string                  `json:"plan"`
	DeductibleCents   int64                   `json:"deductible_cents"`
	Deductible        string                  `json:"deductible"`
	TermMonths        int                     `json:"term_months"`
	PriceTotalCents   int64                   `json:"price_total_cents"`
	PriceTotal        string                  `json:"price_total"`
	PriceMonthlyCents int64                   `json:"price_monthly_cents"`
	PriceMonthly      string                  `json:"price_monthly"`
	Status            string                  `json:"status"`
	Breakdown         *QuoteBreakdownResponse `json:"breakdown,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:                q.ID,
		LeadID:            q.LeadID,
		Plan:              string(q.Plan),
		DeductibleCents:   q.DeductibleCents,
		Deductible:        money.FormatCentsToDecimal(q.DeductibleCents),
		TermMonths:        q.TermMonths,
		PriceTotalCents:   q.PriceTotalCents,
		PriceTotal:        money.FormatCentsToDecimal(q.PriceTotalCents),
		PriceMonthlyCents: q.PriceMonthlyCents,
		PriceMonthly:      money.FormatCentsToDecimal(q.PriceMonthlyCents),
		Status:            string(q.Status),
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
	if q.Breakdown != nil {
		resp.Breakdown = &QuoteBreakdownResponse{
			ExpirationMiles: q.Breakdown.ExpirationMiles,
			PaymentOption:   string(q.Breakdown.PaymentOption),
		}
	}
	return resp
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// QuoteDraftResponse is the reconciled draft sent back to the client, with
// formatted dollar strings alongside the cents so the form can re-render
// either price field.
type QuoteDraftResponse struct {
	Plan                 string `json:"plan,omitempty"`
	DeductibleCents      int64  `json:"deductible_cents"`
	Deductible           string `json:"deductible"`
	TermMonths           int    `json:"term_months"`
	PriceTotalCents      int64  `json:"price_total_cents"`
	PriceTotal           string `json:"price_total"`
	PriceMonthlyCents    int64  `json:"price_monthly_cents"`
	PriceMonthly         string `json:"price_monthly"`
	ExpirationMiles      int64  `json:"expiration_miles"`
	PaymentOption        string `json:"payment_option,omitempty"`
	LastEditedPriceField string `json:"last_edited_price_field,omitempty"`
	Consistent           bool   `json:"consistent"`
}

func FromQuoteDraft(d pricing.Draft) QuoteDraftResponse {
	return QuoteDraftResponse{
		Plan:                 string(d.Plan),
		DeductibleCents:      d.DeductibleCents,
		Deductible:           money.FormatCentsToDecimal(d.DeductibleCents),
		TermMonths:           d.TermMonths,
		PriceTotalCents:      d.PriceTotalCents,
		PriceTotal:           money.FormatCentsToDecimal(d.PriceTotalCents),
		PriceMonthlyCents:    d.PriceMonthlyCents,
		PriceMonthly:         money.FormatCentsToDecimal(d.PriceMonthlyCents),
		ExpirationMiles:      d.ExpirationMiles,
		PaymentOption:        string(d.PaymentOption),
		LastEditedPriceField: string(d.LastEditedPriceField),
		Consistent:           pricing.Consistent(d),
	}
}
