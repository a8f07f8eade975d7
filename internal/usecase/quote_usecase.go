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
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidQuotePlan       = errors.New("invalid coverage plan")
	ErrInvalidQuoteTerm       = errors.New("invalid term months")
	ErrInvalidQuotePrice      = errors.New("invalid quote price")
	ErrInvalidPaymentOption   = errors.New("invalid payment option")
	ErrInvalidQuoteDeductible = errors.New("invalid deductible")
)

// CreateQuoteInput is the normalized quote creation command. Monetary
// fields are already integer cents; the HTTP DTO does the dollar parsing.
type CreateQuoteInput struct {
	Plan              entities.CoveragePlan
	DeductibleCents   int64
	TermMonths        int
	PriceMonthlyCents int64
	PaymentOption     entities.PaymentOption
	ExpirationMiles   *int64
}

// IQuoteUseCase exposes quote operations.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, leadID string, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	leadRepo interfaces.ILeadRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, leadRepo interfaces.ILeadRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, leadRepo: leadRepo}
}

// CreateQuote persists an immutable quote for a lead.
//
// The total is derived from the monthly price: PriceTotalCents ==
// PriceMonthlyCents * TermMonths, all in integer cents, so the stored triple
// is exact by construction. Creating a quote advances the lead to the
// quoted stage when it is still earlier in the pipeline.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, leadID string, in CreateQuoteInput) (entities.Quote, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Quote{}, ErrInvalidLeadID
	}
	if !in.Plan.IsValid() {
		return entities.Quote{}, ErrInvalidQuotePlan
	}
	if in.TermMonths <= 0 {
		return entities.Quote{}, ErrInvalidQuoteTerm
	}
	if in.PriceMonthlyCents <= 0 {
		return entities.Quote{}, ErrInvalidQuotePrice
	}
	if in.DeductibleCents < 0 {
		return entities.Quote{}, ErrInvalidQuoteDeductible
	}
	if !in.PaymentOption.IsValid() {
		return entities.Quote{}, ErrInvalidPaymentOption
	}

	lead, err := u.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return entities.Quote{}, err
	}
	if lead.ID == "" {
		return entities.Quote{}, ErrLeadNotFound
	}

	breakdown := &entities.QuoteBreakdown{PaymentOption: in.PaymentOption}
	if in.ExpirationMiles != nil {
		miles := *in.ExpirationMiles
		if miles < 0 {
			miles = 0
		}
		breakdown.ExpirationMiles = miles
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:                uuid.NewString(),
		LeadID:            leadID,
		Plan:              in.Plan,
		DeductibleCents:   in.DeductibleCents,
		TermMonths:        in.TermMonths,
		PriceMonthlyCents: in.PriceMonthlyCents,
		PriceTotalCents:   in.PriceMonthlyCents * int64(in.TermMonths),
		Status:            entities.QuoteStatusOpen,
		Breakdown:         breakdown,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if !lead.Stage.IsDisposition() && lead.Stage.Rank() < entities.LeadStageQuoted.Rank() {
		if _, err := u.leadRepo.UpdateStage(ctx, leadID, entities.LeadStageQuoted); err != nil {
			// The quote row exists; a failed stage bump is logged, not fatal.
			log.Printf("[quote][usecase] stage bump failed lead_id=%s err=%v", leadID, err)
		}
	}

	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	return u.repo.ListByLeadID(ctx, leadID)
}
