package pricing

import (
	"errors"
	"strconv"
	"strings"

	"autocover/internal/domain/entities"
	"autocover/pkg/money"
)

// Package pricing keeps a quote draft's total price, monthly price and term
// mutually consistent under partial, out-of-order edits.
//
// The rule is last-writer-wins: whichever price field the user touched most
// recently is ground truth and the other one is always derived from it.
// That flag, not any edit ordering, is the single tie-break, so a sequence
// like total -> monthly -> term never oscillates.

var (
	ErrInvalidEditField = errors.New("unknown edit field")
	ErrInvalidEditValue = errors.New("invalid edit value")
)

// PriceField names which of the two price fields the user last edited.
type PriceField string

const (
	PriceFieldTotal   PriceField = "total"
	PriceFieldMonthly PriceField = "monthly"
)

// EditField is the single draft field an edit event targets.
type EditField string

const (
	EditTotal           EditField = "total"
	EditMonthly         EditField = "monthly"
	EditTerm            EditField = "term"
	EditDeductible      EditField = "deductible"
	EditExpirationMiles EditField = "expirationMiles"
)

// Draft is the client-held, mutable quote state. Prices are integer cents;
// edits arrive as the raw strings users typed.
type Draft struct {
	Plan                 entities.CoveragePlan
	DeductibleCents      int64
	TermMonths           int
	PriceTotalCents      int64
	PriceMonthlyCents    int64
	ExpirationMiles      int64
	PaymentOption        entities.PaymentOption
	LastEditedPriceField PriceField
}

// Edit is a single-field edit event against a draft.
type Edit struct {
	Field EditField
	Value string
}

// Apply reconciles a draft with one edit and returns the updated draft.
//
// Non-numeric input leaves the draft untouched and returns
// ErrInvalidEditValue; the caller surfaces the validation message. The
// returned draft always satisfies: when TermMonths > 0 and both prices are
// known, the non-last-edited price equals the derivation from the
// last-edited one (division rounded half away from zero, so at most one
// cent of residue, never accumulated across edits).
func Apply(d Draft, e Edit) (Draft, error) {
	switch e.Field {
	case EditTotal:
		cents, err := money.ParseDecimalToCents(e.Value)
		if err != nil {
			return d, ErrInvalidEditValue
		}
		d.PriceTotalCents = cents
		if d.TermMonths > 0 {
			d.PriceMonthlyCents = roundDiv(d.PriceTotalCents, int64(d.TermMonths))
		}
		d.LastEditedPriceField = PriceFieldTotal
		return d, nil

	case EditMonthly:
		cents, err := money.ParseDecimalToCents(e.Value)
		if err != nil {
			return d, ErrInvalidEditValue
		}
		d.PriceMonthlyCents = cents
		if d.TermMonths > 0 {
			d.PriceTotalCents = d.PriceMonthlyCents * int64(d.TermMonths)
		}
		d.LastEditedPriceField = PriceFieldMonthly
		return d, nil

	case EditTerm:
		term, err := parseInt(e.Value)
		if err != nil || term < 0 {
			return d, ErrInvalidEditValue
		}
		d.TermMonths = int(term)
		if d.TermMonths == 0 {
			// No derivation possible; clear the derived field instead of
			// dividing by zero.
			if d.LastEditedPriceField == PriceFieldMonthly {
				d.PriceTotalCents = 0
			} else {
				d.PriceMonthlyCents = 0
			}
			return d, nil
		}
		if d.LastEditedPriceField == PriceFieldMonthly {
			d.PriceTotalCents = d.PriceMonthlyCents * int64(d.TermMonths)
		} else {
			d.PriceMonthlyCents = roundDiv(d.PriceTotalCents, int64(d.TermMonths))
		}
		return d, nil

	case EditDeductible:
		cents, err := money.ParseDecimalToCents(e.Value)
		if err != nil || cents < 0 {
			return d, ErrInvalidEditValue
		}
		d.DeductibleCents = cents
		return d, nil

	case EditExpirationMiles:
		miles, err := parseInt(e.Value)
		if err != nil {
			return d, ErrInvalidEditValue
		}
		if miles < 0 {
			miles = 0
		}
		d.ExpirationMiles = miles
		return d, nil
	}

	return d, ErrInvalidEditField
}

// Consistent reports whether the draft satisfies the price invariant, with
// the one-cent rounding tolerance.
func Consistent(d Draft) bool {
	if d.TermMonths <= 0 || d.PriceTotalCents == 0 || d.PriceMonthlyCents == 0 {
		return true
	}
	if d.LastEditedPriceField == PriceFieldMonthly {
		return d.PriceTotalCents == d.PriceMonthlyCents*int64(d.TermMonths)
	}
	derived := roundDiv(d.PriceTotalCents, int64(d.TermMonths))
	diff := d.PriceMonthlyCents - derived
	return diff >= -1 && diff <= 1
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// roundDiv divides a by b rounding half away from zero. b must be > 0.
func roundDiv(a, b int64) int64 {
	if a >= 0 {
		return (a + b/2) / b
	}
	return -((-a + b/2) / b)
}
