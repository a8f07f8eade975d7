package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"autocover/internal/domain/entities"
	"autocover/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingPaymentDetails = errors.New("monthly payment option requires monthly payment and total payments")
	ErrInvalidPolicyPremium  = errors.New("invalid total premium")
)

// The lead is expected to have covered at least this much more road by the
// time a default policy expires.
const defaultExpirationMilesDelta = 100_000

const defaultExpirationYears = 5

// ConvertPolicyInput is an arbitrary subset of policy fields; unset fields
// take the documented defaults. Monetary fields are integer cents (the HTTP
// DTO converts from decimal dollars).
//
// Pointer fields distinguish "caller set it" from "take the default". For
// ExpirationDate that distinction is the manual-override flag: a non-nil
// value is a deliberate operator choice the five-year default must never
// overwrite.
type ConvertPolicyInput struct {
	Package             entities.CoveragePlan
	PolicyStartDate     *time.Time
	ExpirationDate      *time.Time
	ExpirationMiles     *int64
	DeductibleCents     int64
	TotalPremiumCents   int64
	DownPaymentCents    int64
	MonthlyPaymentCents int64
	TotalPayments       int
	PaymentOption       entities.PaymentOption
}

// IConversionUseCase is the single path through which a lead acquires a
// policy.

type IConversionUseCase interface {
	Convert(ctx context.Context, leadID string, in ConvertPolicyInput) (policy entities.Policy, created bool, err error)
}

type ConversionUseCase struct {
	policyRepo interfaces.IPolicyRepository
	leadRepo   interfaces.ILeadRepository
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(policyRepo interfaces.IPolicyRepository, leadRepo interfaces.ILeadRepository) *ConversionUseCase {
	return &ConversionUseCase{policyRepo: policyRepo, leadRepo: leadRepo}
}

// Convert turns a lead into a policy, at most once.
//
// A second call against an already-converted lead is a no-op returning the
// existing policy (created == false); it never errors and never creates a
// duplicate. All validation runs before any write, so a rejected call
// leaves no partial state. The precondition check and the insert are
// evaluated atomically by the policy repository's conditional put, so two
// concurrent converts also cannot both insert.
func (u *ConversionUseCase) Convert(ctx context.Context, leadID string, in ConvertPolicyInput) (entities.Policy, bool, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Policy{}, false, ErrInvalidLeadID
	}

	lead, err := u.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return entities.Policy{}, false, err
	}
	if lead.ID == "" {
		return entities.Policy{}, false, ErrLeadNotFound
	}

	// Fast path for replays: the conditional put below still guards the
	// concurrent case.
	if existing, err := u.policyRepo.GetByLeadID(ctx, leadID); err != nil {
		return entities.Policy{}, false, err
	} else if existing.ID != "" {
		log.Printf("[conversion][usecase] lead already converted lead_id=%s policy_id=%s", leadID, existing.ID)
		return existing, false, nil
	}

	if in.PaymentOption == "" {
		in.PaymentOption = entities.PaymentOptionOneTime
	}
	if !in.PaymentOption.IsValid() {
		return entities.Policy{}, false, ErrInvalidPaymentOption
	}
	if in.PaymentOption == entities.PaymentOptionMonthly &&
		(in.MonthlyPaymentCents <= 0 || in.TotalPayments <= 0) {
		return entities.Policy{}, false, ErrMissingPaymentDetails
	}
	if in.TotalPremiumCents < 0 {
		return entities.Policy{}, false, ErrInvalidPolicyPremium
	}
	if in.Package == "" {
		in.Package = entities.CoveragePlanBasic
	}
	if !in.Package.IsValid() {
		return entities.Policy{}, false, ErrInvalidQuotePlan
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if in.PolicyStartDate != nil {
		startDate = in.PolicyStartDate.UTC()
	}

	expirationDate := addYears(startDate, defaultExpirationYears)
	manual := false
	if in.ExpirationDate != nil {
		expirationDate = in.ExpirationDate.UTC()
		manual = true
	}

	expirationMiles := lead.Vehicle.Odometer + defaultExpirationMilesDelta
	if in.ExpirationMiles != nil && *in.ExpirationMiles >= 0 {
		expirationMiles = *in.ExpirationMiles
	}

	now := time.Now().UTC()
	p := entities.Policy{
		ID:                   uuid.NewString(),
		LeadID:               leadID,
		Package:              in.Package,
		PolicyStartDate:      startDate,
		ExpirationDate:       expirationDate,
		ExpirationDateManual: manual,
		ExpirationMiles:      expirationMiles,
		DeductibleCents:      in.DeductibleCents,
		TotalPremiumCents:    in.TotalPremiumCents,
		DownPaymentCents:     in.DownPaymentCents,
		PaymentOption:        in.PaymentOption,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if in.PaymentOption == entities.PaymentOptionMonthly {
		p.MonthlyPaymentCents = in.MonthlyPaymentCents
		p.TotalPayments = in.TotalPayments
	}

	stored, created, err := u.policyRepo.Create(ctx, p)
	if err != nil {
		return entities.Policy{}, false, err
	}
	if !created {
		// Lost the race to a concurrent convert; hand back the winner's row.
		log.Printf("[conversion][usecase] concurrent convert resolved lead_id=%s policy_id=%s", leadID, stored.ID)
		return stored, false, nil
	}

	if _, err := u.leadRepo.UpdateStage(ctx, leadID, entities.LeadStageFunded); err != nil {
		log.Printf("[conversion][usecase] stage update failed lead_id=%s err=%v", leadID, err)
	}

	log.Printf("[conversion][usecase] converted lead_id=%s policy_id=%s", leadID, stored.ID)
	return stored, true, nil
}

// addYears adds whole calendar years preserving month and day. A Feb-29
// start landing in a non-leap year clamps to Feb-28 rather than rolling
// into March.
func addYears(t time.Time, years int) time.Time {
	y, m, d := t.Date()
	y += years
	if last := daysInMonth(y, m); d > last {
		d = last
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
