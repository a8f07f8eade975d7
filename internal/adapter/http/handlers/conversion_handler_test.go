package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autocover/internal/adapter/http/handlers/mocks"
	"autocover/internal/domain/entities"
	"autocover/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestConversionHandler_ConvertLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ConversionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/leads/:lead_id/policy", h.ConvertLead)
		return r
	}

	t.Run("invalid date format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversionUseCase(ctrl)
		h := NewConversionHandler(uc)
		r := newRouter(h)

		body := `{"policy_start_date":"03/15/2024"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/policy", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payment details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversionUseCase(ctrl)
		h := NewConversionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Convert(gomock.Any(), "lead-1", gomock.Any()).
			Return(entities.Policy{}, false, usecase.ErrMissingPaymentDetails)

		body := `{"payment_option":"monthly","total_premium":"2999.00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/policy", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "MISSING_PAYMENT_DETAILS" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("new conversion answers 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversionUseCase(ctrl)
		h := NewConversionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Convert(gomock.Any(), "lead-1", gomock.AssignableToTypeOf(usecase.ConvertPolicyInput{})).DoAndReturn(
			func(_ any, _ string, in usecase.ConvertPolicyInput) (entities.Policy, bool, error) {
				if in.TotalPremiumCents != 299900 || in.MonthlyPaymentCents != 8331 || in.TotalPayments != 36 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.PolicyStartDate == nil || !in.PolicyStartDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected start date: %v", in.PolicyStartDate)
				}
				return entities.Policy{
					ID:              "pol-1",
					LeadID:          "lead-1",
					PolicyStartDate: *in.PolicyStartDate,
					ExpirationDate:  time.Date(2029, 3, 15, 0, 0, 0, 0, time.UTC),
				}, true, nil
			},
		)

		body := `{"payment_option":"monthly","total_premium":"2,999.00","monthly_payment":"83.31","total_payments":36,"policy_start_date":"2024-03-15"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/policy", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["expiration_date"] != "2029-03-15" {
			t.Fatalf("unexpected expiration: %v", resp["expiration_date"])
		}
	})

	t.Run("replay answers 200 with existing policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversionUseCase(ctrl)
		h := NewConversionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Convert(gomock.Any(), "lead-1", gomock.Any()).
			Return(entities.Policy{ID: "pol-1", LeadID: "lead-1"}, false, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/policy", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "pol-1" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}
