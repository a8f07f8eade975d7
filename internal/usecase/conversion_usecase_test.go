package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autocover/internal/domain/entities"
	mock_interfaces "autocover/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestConversionUseCase_Convert(t *testing.T) {
	t.Run("invalid lead id", func(t *testing.T) {
		uc := NewConversionUseCase(nil, nil)
		_, _, err := uc.Convert(context.Background(), "  ", ConvertPolicyInput{})
		if !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewConversionUseCase(policyRepo, leadRepo)
		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, nil)

		_, _, err := uc.Convert(context.Background(), "lead-1", ConvertPolicyInput{})
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("replay returns existing policy without writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewConversionUseCase(policyRepo, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1", Stage: entities.LeadStageFunded}, nil)
		policyRepo.EXPECT().GetByLeadID(gomock.Any(), "lead-1").Return(entities.Policy{ID: "pol-1", LeadID: "lead-1"}, nil)

		policy, created, err := uc.Convert(context.Background(), "lead-1", ConvertPolicyInput{
			Package: entities.CoveragePlanGold,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created {
			t.Fatalf("expected created == false on replay")
		}
		if policy.ID != "pol-1" {
			t.Fatalf("expected existing policy, got %+v", policy)
		}
	})

	t.Run("monthly without payment details rejected before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewConversionUseCase(policyRepo, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		policyRepo.EXPECT().GetByLeadID(gomock.Any(), "lead-1").Return(entities.Policy{}, nil)

		_, _, err := uc.Convert(context.Background(), "lead-1", ConvertPolicyInput{
			PaymentOption:     entities.PaymentOptionMonthly,
			TotalPremiumCents: 299900,
		})
		if !errors.Is(err, ErrMissingPaymentDetails) {
			t.Fatalf("expected ErrMissingPaymentDetails, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewConversionUseCase(policyRepo, leadRepo)

		start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		lead := entities.Lead{ID: "lead-1", Stage: entities.LeadStageQuoted, Vehicle: entities.Vehicle{Odometer: 42000}}

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		policyRepo.EXPECT().GetByLeadID(gomock.Any(), "lead-1").Return(entities.Policy{}, nil)
		policyRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Policy{})).DoAndReturn(
			func(_ context.Context, p entities.Policy) (entities.Policy, bool, error) {
				if p.Package != entities.CoveragePlanBasic {
					t.Fatalf("expected basic default, got %s", p.Package)
				}
				if p.PaymentOption != entities.PaymentOptionOneTime {
					t.Fatalf("expected one-time default, got %s", p.PaymentOption)
				}
				want := time.Date(2029, 3, 15, 0, 0, 0, 0, time.UTC)
				if !p.ExpirationDate.Equal(want) {
					t.Fatalf("expected expiration %s, got %s", want, p.ExpirationDate)
				}
				if p.ExpirationDateManual {
					t.Fatalf("defaulted expiration must not be flagged manual")
				}
				if p.ExpirationMiles != 142000 {
					t.Fatalf("expected odometer+100000, got %d", p.ExpirationMiles)
				}
				return p, true, nil
			},
		)
		leadRepo.EXPECT().UpdateStage(gomock.Any(), "lead-1", entities.LeadStageFunded).
			Return(entities.Lead{ID: "lead-1", Stage: entities.LeadStageFunded}, nil)

		_, created, err := uc.Convert(context.Background(), "lead-1", ConvertPolicyInput{
			PolicyStartDate:   &start,
			TotalPremiumCents: 299900,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Fatalf("expected created == true")
		}
	})

	t.Run("leap day start clamps to feb 28", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewConversionUseCase(policyRepo, leadRepo)

		start := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		policyRepo.EXPECT().GetByLeadID(gomock.Any(), "lead-1").Return(entities.Policy{}, nil)
		policyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Policy) (entities.Policy, bool, error) {
				want := time.Date(2029, 2, 28, 0, 0, 0, 0, time.UTC)
				if !p.ExpirationDate.Equal(want) {
					t.Fatalf("expected %s, got %s", want, p.ExpirationDate)
				}
				return p, true, nil
			},
		)
		leadRepo.EXPECT().UpdateStage(gomock.Any(), "lead-1", entities.LeadStageFunded).
			Return(entities.Lead{}, nil)

		if _, _, err := uc.Convert(context.Background(), "lead-1", ConvertPolicyInput{PolicyStartDate: &start}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit expiration date sets manual flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewConversionUseCase(policyRepo, leadRepo)

		exp := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		policyRepo.EXPECT().GetByLeadID(gomock.Any(), "lead-1").Return(entities.Policy{}, nil)
		policyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Policy) (entities.Policy, bool, error) {
				if !p.ExpirationDateManual {
					t.Fatalf("expected manual flag")
				}
				if !p.ExpirationDate.Equal(exp) {
					t.Fatalf("expected %s, got %s", exp, p.ExpirationDate)
				}
				return p, true, nil
			},
		)
		leadRepo.EXPECT().UpdateStage(gomock.Any(), "lead-1", entities.LeadStageFunded).
			Return(entities.Lead{}, nil)

		if _, _, err := uc.Convert(context.Background(), "lead-1", ConvertPolicyInput{ExpirationDate: &exp}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost race hands back winner row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewConversionUseCase(policyRepo, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		policyRepo.EXPECT().GetByLeadID(gomock.Any(), "lead-1").Return(entities.Policy{}, nil)
		policyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Policy{ID: "winner", LeadID: "lead-1"}, false, nil)

		policy, created, err := uc.Convert(context.Background(), "lead-1", ConvertPolicyInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created || policy.ID != "winner" {
			t.Fatalf("expected winner row with created == false, got %+v created=%t", policy, created)
		}
	})

	t.Run("monthly fields only kept for monthly option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policyRepo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewConversionUseCase(policyRepo, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		policyRepo.EXPECT().GetByLeadID(gomock.Any(), "lead-1").Return(entities.Policy{}, nil)
		policyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Policy) (entities.Policy, bool, error) {
				if p.MonthlyPaymentCents != 0 || p.TotalPayments != 0 {
					t.Fatalf("one-time policy must not keep monthly fields: %+v", p)
				}
				return p, true, nil
			},
		)
		leadRepo.EXPECT().UpdateStage(gomock.Any(), "lead-1", entities.LeadStageFunded).
			Return(entities.Lead{}, nil)

		_, _, err := uc.Convert(context.Background(), "lead-1", ConvertPolicyInput{
			PaymentOption:       entities.PaymentOptionOneTime,
			MonthlyPaymentCents: 8331,
			TotalPayments:       36,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAddYears(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		want  time.Time
	}{
		{
			name:  "plain date",
			start: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2029, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day clamps",
			start: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2029, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "end of january keeps day",
			start: time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2028, 1, 31, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := addYears(tc.start, 5)
			if !got.Equal(tc.want) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
