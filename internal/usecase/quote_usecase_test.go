package usecase

import (
	"context"
	"errors"
	"testing"

	"autocover/internal/domain/entities"
	mock_interfaces "autocover/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validQuoteInput() CreateQuoteInput {
	return CreateQuoteInput{
		Plan:              entities.CoveragePlanGold,
		DeductibleCents:   10000,
		TermMonths:        24,
		PriceMonthlyCents: 12496,
		PaymentOption:     entities.PaymentOptionMonthly,
	}
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("invalid lead id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.CreateQuote(context.Background(), "  ", validQuoteInput())
		if !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("invalid plan", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		in := validQuoteInput()
		in.Plan = "platinum"
		_, err := uc.CreateQuote(context.Background(), "lead-1", in)
		if !errors.Is(err, ErrInvalidQuotePlan) {
			t.Fatalf("expected ErrInvalidQuotePlan, got %v", err)
		}
	})

	t.Run("invalid term", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		in := validQuoteInput()
		in.TermMonths = 0
		_, err := uc.CreateQuote(context.Background(), "lead-1", in)
		if !errors.Is(err, ErrInvalidQuoteTerm) {
			t.Fatalf("expected ErrInvalidQuoteTerm, got %v", err)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		in := validQuoteInput()
		in.PriceMonthlyCents = 0
		_, err := uc.CreateQuote(context.Background(), "lead-1", in)
		if !errors.Is(err, ErrInvalidQuotePrice) {
			t.Fatalf("expected ErrInvalidQuotePrice, got %v", err)
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuoteUseCase(repo, leadRepo)
		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, nil)

		_, err := uc.CreateQuote(context.Background(), "lead-1", validQuoteInput())
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("total derived from monthly times term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuoteUseCase(repo, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1", Stage: entities.LeadStageContacted}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.LeadID != "lead-1" || q.Status != entities.QuoteStatusOpen {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.PriceTotalCents != 12496*24 {
					t.Fatalf("expected total %d, got %d", 12496*24, q.PriceTotalCents)
				}
				return q, nil
			},
		)
		leadRepo.EXPECT().UpdateStage(gomock.Any(), "lead-1", entities.LeadStageQuoted).
			Return(entities.Lead{ID: "lead-1", Stage: entities.LeadStageQuoted}, nil)

		res, err := uc.CreateQuote(context.Background(), " lead-1 ", validQuoteInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PriceTotalCents != 299904 {
			t.Fatalf("unexpected total: %d", res.PriceTotalCents)
		}
	})

	t.Run("no stage bump for funded lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuoteUseCase(repo, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1", Stage: entities.LeadStageFunded}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		if _, err := uc.CreateQuote(context.Background(), "lead-1", validQuoteInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stage bump failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuoteUseCase(repo, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1", Stage: entities.LeadStageNew}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		leadRepo.EXPECT().UpdateStage(gomock.Any(), "lead-1", entities.LeadStageQuoted).
			Return(entities.Lead{}, errors.New("db"))

		if _, err := uc.CreateQuote(context.Background(), "lead-1", validQuoteInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative expiration miles clamp to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuoteUseCase(repo, leadRepo)

		miles := int64(-500)
		in := validQuoteInput()
		in.ExpirationMiles = &miles

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1", Stage: entities.LeadStageQuoted}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Breakdown == nil || q.Breakdown.ExpirationMiles != 0 {
					t.Fatalf("expected clamped miles, got %+v", q.Breakdown)
				}
				return q, nil
			},
		)

		if _, err := uc.CreateQuote(context.Background(), "lead-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Getters(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("get by id success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		res, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("list by lead id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)
		repo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		res, err := uc.ListByLeadID(context.Background(), "lead-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(res))
		}
	})
}
