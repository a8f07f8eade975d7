package response

import (
	"time"

	"autocover/internal/domain/entities"
	"autocover/pkg/money"
)

const dateLayout = "2006-01-02"

type PolicyResponse struct {
	ID                   string    `json:"id"`
	LeadID               string    `json:"lead_id"`
	Package              string    `json:"package"`
	PolicyStartDate      string    `json:"policy_start_date"`
	ExpirationDate       string    `json:"expiration_date"`
	ExpirationDateManual bool      `json:"expiration_date_manual"`
	ExpirationMiles      int64     `json:"expiration_miles"`
	DeductibleCents      int64     `json:"deductible_cents"`
	Deductible           string    `json:"deductible"`
	TotalPremiumCents    int64     `json:"total_premium_cents"`
	TotalPremium         string    `json:"total_premium"`
	DownPaymentCents     int64     `json:"down_payment_cents"`
	DownPayment          string    `json:"down_payment"`
	MonthlyPaymentCents  int64     `json:"monthly_payment_cents,omitempty"`
	MonthlyPayment       string    `json:"monthly_payment,omitempty"`
	TotalPayments        int       `json:"total_payments,omitempty"`
	PaymentOption        string    `json:"payment_option"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromPolicy(p entities.Policy) PolicyResponse {
	resp := PolicyResponse{
		ID:                   p.ID,
		LeadID:               p.LeadID,
		Package:              string(p.Package),
		PolicyStartDate:      p.PolicyStartDate.Format(dateLayout),
		ExpirationDate:       p.ExpirationDate.Format(dateLayout),
		ExpirationDateManual: p.ExpirationDateManual,
		ExpirationMiles:      p.ExpirationMiles,
		DeductibleCents:      p.DeductibleCents,
		Deductible:           money.FormatCentsToDecimal(p.DeductibleCents),
		TotalPremiumCents:    p.TotalPremiumCents,
		TotalPremium:         money.FormatCentsToDecimal(p.TotalPremiumCents),
		DownPaymentCents:     p.DownPaymentCents,
		DownPayment:          money.FormatCentsToDecimal(p.DownPaymentCents),
		PaymentOption:        string(p.PaymentOption),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
	if p.MonthlyPaymentCents > 0 {
		resp.MonthlyPaymentCents = p.MonthlyPaymentCents
		resp.MonthlyPayment = money.FormatCentsToDecimal(p.MonthlyPaymentCents)
		resp.TotalPayments = p.TotalPayments
	}
	return resp
}
