package request

import (
	"strings"
	"time"

	"autocover/internal/domain/entities"
	"autocover/pkg/money"
)

const dateLayout = "2006-01-02"

// ConvertPolicyRequest is the conversion payload. Every field is optional;
// omitted fields take the conversion defaults. Monetary fields are decimal
// dollar strings, dates are plain `YYYY-MM-DD`.
type ConvertPolicyRequest struct {
	Package         string `json:"package"`
	PolicyStartDate string `json:"policy_start_date"`
	ExpirationDate  string `json:"expiration_date"`
	ExpirationMiles *int64 `json:"expiration_miles"`
	Deductible      string `json:"deductible"`
	TotalPremium    string `json:"total_premium"`
	DownPayment     string `json:"down_payment"`
	MonthlyPayment  string `json:"monthly_payment"`
	TotalPayments   int    `json:"total_payments"`
	PaymentOption   string `json:"payment_option"`
}

func (r ConvertPolicyRequest) ResolvePackage() entities.CoveragePlan {
	return entities.CoveragePlan(strings.TrimSpace(strings.ToLower(r.Package)))
}

func (r ConvertPolicyRequest) ResolvePaymentOption() entities.PaymentOption {
	return entities.PaymentOption(strings.TrimSpace(strings.ToLower(r.PaymentOption)))
}

func (r ConvertPolicyRequest) ResolveStartDate() (*time.Time, error) {
	return parseDate(r.PolicyStartDate)
}

func (r ConvertPolicyRequest) ResolveExpirationDate() (*time.Time, error) {
	return parseDate(r.ExpirationDate)
}

func (r ConvertPolicyRequest) ResolveDeductibleCents() (int64, error) {
	return parseOptionalAmount(r.Deductible)
}

func (r ConvertPolicyRequest) ResolveTotalPremiumCents() (int64, error) {
	return parseOptionalAmount(r.TotalPremium)
}

func (r ConvertPolicyRequest) ResolveDownPaymentCents() (int64, error) {
	return parseOptionalAmount(r.DownPayment)
}

func (r ConvertPolicyRequest) ResolveMonthlyPaymentCents() (int64, error) {
	return parseOptionalAmount(r.MonthlyPayment)
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseOptionalAmount(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return money.ParseDecimalToCents(s)
}
