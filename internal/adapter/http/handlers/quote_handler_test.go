package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autocover/internal/adapter/http/handlers/mocks"
	"autocover/internal/domain/entities"
	"autocover/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/quotes", h.CreateQuote)

		body := `{"plan":"gold","term_months":24,"price_monthly":"a lot"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("dollars converted to cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().CreateQuote(gomock.Any(), "lead-1", gomock.AssignableToTypeOf(usecase.CreateQuoteInput{})).DoAndReturn(
			func(_ any, _ string, in usecase.CreateQuoteInput) (entities.Quote, error) {
				if in.PriceMonthlyCents != 12496 || in.DeductibleCents != 10000 {
					t.Fatalf("unexpected cents: %+v", in)
				}
				if in.Plan != entities.CoveragePlanGold || in.PaymentOption != entities.PaymentOptionMonthly {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Quote{ID: "q-1", LeadID: "lead-1", PriceMonthlyCents: 12496, PriceTotalCents: 299904, TermMonths: 24}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/quotes", h.CreateQuote)

		body := `{"plan":"gold","deductible":"$100.00","term_months":24,"price_monthly":"124.96"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quotes", bytes.NewBufferString(body))
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
		if resp["price_total"] != "2999.04" {
			t.Fatalf("unexpected formatted total: %v", resp["price_total"])
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().CreateQuote(gomock.Any(), "missing", gomock.Any()).
			Return(entities.Quote{}, usecase.ErrLeadNotFound)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/quotes", h.CreateQuote)

		body := `{"plan":"basic","term_months":12,"price_monthly":"50.00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/missing/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListQuotesByLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	uc.EXPECT().ListByLeadID(gomock.Any(), "lead-1").
		Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

	r := gin.New()
	r.GET("/v1/leads/:lead_id/quotes", h.ListQuotesByLead)

	req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1/quotes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(resp))
	}
}

func TestQuoteHandler_ReconcileQuoteDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		h := NewQuoteHandler(nil)
		r := gin.New()
		r.POST("/v1/quotes/reconcile", h.ReconcileQuoteDraft)
		return r
	}

	t.Run("monthly edit derives total", func(t *testing.T) {
		r := newRouter()

		body := `{"term_months":24,"price_total_cents":300000,"last_edited_price_field":"total","edit":{"field":"monthly","value":"124.96"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/reconcile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["price_total"] != "2999.04" || resp["last_edited_price_field"] != "monthly" {
			t.Fatalf("unexpected draft: %v", resp)
		}
		if resp["consistent"] != true {
			t.Fatalf("expected consistent draft: %v", resp)
		}
	})

	t.Run("non numeric edit answers 400 without mutating", func(t *testing.T) {
		r := newRouter()

		body := `{"term_months":24,"price_monthly_cents":12496,"last_edited_price_field":"monthly","edit":{"field":"total","value":"abc"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/reconcile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_DRAFT_EDIT" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("term cleared zeroes the derived field", func(t *testing.T) {
		r := newRouter()

		body := `{"term_months":24,"price_total_cents":299904,"price_monthly_cents":12496,"last_edited_price_field":"monthly","edit":{"field":"term","value":"0"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/reconcile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["price_total_cents"] != float64(0) || resp["price_monthly_cents"] != float64(12496) {
			t.Fatalf("unexpected draft after term clear: %v", resp)
		}
	})
}
