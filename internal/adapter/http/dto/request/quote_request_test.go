package request

import (
	"testing"
	"time"

	"autocover/internal/domain/entities"
)

func TestCreateQuoteRequest_ResolveAmounts(t *testing.T) {
	r := CreateQuoteRequest{
		Plan:         " Gold ",
		Deductible:   "$100.00",
		TermMonths:   24,
		PriceMonthly: "124.96",
	}

	if got := r.ResolvePlan(); got != entities.CoveragePlanGold {
		t.Fatalf("expected gold, got %q", got)
	}
	if got := r.ResolvePaymentOption(); got != entities.PaymentOptionMonthly {
		t.Fatalf("expected monthly default, got %q", got)
	}

	deductible, err := r.ResolveDeductibleCents()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deductible != 10000 {
		t.Fatalf("expected 10000, got %d", deductible)
	}

	monthly, err := r.ResolvePriceMonthlyCents()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if monthly != 12496 {
		t.Fatalf("expected 12496, got %d", monthly)
	}

	r2 := CreateQuoteRequest{PriceMonthly: "eighty"}
	if _, err := r2.ResolvePriceMonthlyCents(); err == nil {
		t.Fatalf("expected parse error")
	}

	r3 := CreateQuoteRequest{Deductible: "  "}
	d, err := r3.ResolveDeductibleCents()
	if err != nil || d != 0 {
		t.Fatalf("expected zero default, got %d err=%v", d, err)
	}
}

func TestConvertPolicyRequest_ResolveDates(t *testing.T) {
	r := ConvertPolicyRequest{PolicyStartDate: "2024-03-15"}
	start, err := r.ResolveStartDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if start == nil || !start.Equal(want) {
		t.Fatalf("expected %s, got %v", want, start)
	}

	r2 := ConvertPolicyRequest{}
	exp, err := r2.ResolveExpirationDate()
	if err != nil || exp != nil {
		t.Fatalf("expected nil for omitted date, got %v err=%v", exp, err)
	}

	r3 := ConvertPolicyRequest{ExpirationDate: "03/15/2024"}
	if _, err := r3.ResolveExpirationDate(); err == nil {
		t.Fatalf("expected parse error for non ISO date")
	}
}

func TestConvertPolicyRequest_ResolveAmounts(t *testing.T) {
	r := ConvertPolicyRequest{
		TotalPremium:   "2,999.00",
		MonthlyPayment: "83.31",
	}

	premium, err := r.ResolveTotalPremiumCents()
	if err != nil || premium != 299900 {
		t.Fatalf("expected 299900, got %d err=%v", premium, err)
	}
	monthly, err := r.ResolveMonthlyPaymentCents()
	if err != nil || monthly != 8331 {
		t.Fatalf("expected 8331, got %d err=%v", monthly, err)
	}
	down, err := r.ResolveDownPaymentCents()
	if err != nil || down != 0 {
		t.Fatalf("expected zero default, got %d err=%v", down, err)
	}
}

func TestRecordChargeRequest_ResolveAmountCents(t *testing.T) {
	r := RecordChargeRequest{Amount: "$83.31"}
	cents, err := r.ResolveAmountCents()
	if err != nil || cents != 8331 {
		t.Fatalf("expected 8331, got %d err=%v", cents, err)
	}

	r2 := RecordChargeRequest{Amount: "abc"}
	if _, err := r2.ResolveAmountCents(); err == nil {
		t.Fatalf("expected parse error")
	}
}
