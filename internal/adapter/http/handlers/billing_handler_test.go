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

func TestBillingHandler_UpsertBillingProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.PUT("/v1/policies/:policy_id/billing-profile", h.UpsertBillingProfile)

		req := httptest.NewRequest(http.MethodPut, "/v1/policies/pol-1/billing-profile", bytes.NewBufferString(`{"autopay_enabled":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("policy not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		uc.EXPECT().UpsertProfile(gomock.Any(), "missing", gomock.Any()).
			Return(entities.BillingProfile{}, usecase.ErrPolicyNotFound)

		r := gin.New()
		r.PUT("/v1/policies/:policy_id/billing-profile", h.UpsertBillingProfile)

		req := httptest.NewRequest(http.MethodPut, "/v1/policies/missing/billing-profile", bytes.NewBufferString(`{"payment_method":"card"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		uc.EXPECT().UpsertProfile(gomock.Any(), "pol-1", gomock.AssignableToTypeOf(usecase.UpsertProfileInput{})).DoAndReturn(
			func(_ any, _ string, in usecase.UpsertProfileInput) (entities.BillingProfile, error) {
				if in.PaymentMethod != "card" || !in.AutopayEnabled {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.BillingProfile{PolicyID: "pol-1", PaymentMethod: "card", CardLastFour: "1111", CardBrand: "visa", AutopayEnabled: true}, nil
			},
		)

		r := gin.New()
		r.PUT("/v1/policies/:policy_id/billing-profile", h.UpsertBillingProfile)

		body := `{"payment_method":"card","card_brand":"visa","card_last_four":"1111","autopay_enabled":true}`
		req := httptest.NewRequest(http.MethodPut, "/v1/policies/pol-1/billing-profile", bytes.NewBufferString(body))
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
		if resp["card_last_four"] != "1111" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestBillingHandler_GetBillingProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingUseCase(ctrl)
	h := NewBillingHandler(uc)

	uc.EXPECT().GetProfile(gomock.Any(), "pol-1").
		Return(entities.BillingProfile{}, usecase.ErrBillingProfileNotFound)

	r := gin.New()
	r.GET("/v1/policies/:policy_id/billing-profile", h.GetBillingProfile)

	req := httptest.NewRequest(http.MethodGet, "/v1/policies/pol-1/billing-profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["code"] != "BILLING_PROFILE_NOT_FOUND" {
		t.Fatalf("unexpected error code: %v", resp)
	}
}

func TestBillingHandler_RecordCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		uc.EXPECT().RecordCharge(gomock.Any(), "pol-1", int64(8331), "installment 1", gomock.Any()).
			Return(entities.PolicyCharge{}, usecase.ErrGatewayNotConfigured)

		r := gin.New()
		r.POST("/v1/policies/:policy_id/charges", h.RecordCharge)

		body := `{"amount":"83.31","description":"installment 1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/policies/pol-1/charges", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "PAYMENT_GATEWAY_NOT_CONFIGURED" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("unparseable amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/policies/:policy_id/charges", h.RecordCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/policies/pol-1/charges", bytes.NewBufferString(`{"amount":"eighty"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty payload defaults to object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		uc.EXPECT().RecordCharge(gomock.Any(), "pol-1", int64(8331), "", gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ int64, _ string, payload json.RawMessage) (entities.PolicyCharge, error) {
				if string(payload) != "{}" {
					t.Fatalf("expected empty object payload, got %s", payload)
				}
				return entities.PolicyCharge{ID: "chg-1", PolicyID: "pol-1", AmountCents: 8331, Status: entities.ChargeStatusPaid}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/policies/:policy_id/charges", h.RecordCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/policies/pol-1/charges", bytes.NewBufferString(`{"amount":"83.31"}`))
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
		if resp["amount"] != "83.31" || resp["status"] != "paid" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestBillingHandler_ListCharges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingUseCase(ctrl)
	h := NewBillingHandler(uc)

	uc.EXPECT().ListCharges(gomock.Any(), "pol-1").
		Return([]entities.PolicyCharge{{ID: "chg-2"}, {ID: "chg-1"}}, nil)

	r := gin.New()
	r.GET("/v1/policies/:policy_id/charges", h.ListCharges)

	req := httptest.NewRequest(http.MethodGet, "/v1/policies/pol-1/charges", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "chg-2" {
		t.Fatalf("unexpected list: %v", resp)
	}
}

func TestBillingHandler_ApplyChargeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("charge not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		uc.EXPECT().ApplyProviderStatus(gomock.Any(), "missing", "approved").
			Return(entities.PolicyCharge{}, usecase.ErrChargeNotFound)

		r := gin.New()
		r.PATCH("/v1/charges/:charge_id/status", h.ApplyChargeStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/charges/missing/status", bytes.NewBufferString(`{"provider_status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		uc.EXPECT().ApplyProviderStatus(gomock.Any(), "chg-1", "charged_back").
			Return(entities.PolicyCharge{ID: "chg-1", Status: entities.ChargeStatusRefunded}, nil)

		r := gin.New()
		r.PATCH("/v1/charges/:charge_id/status", h.ApplyChargeStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/charges/chg-1/status", bytes.NewBufferString(`{"provider_status":"charged_back"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "refunded" {
			t.Fatalf("unexpected status: %v", resp)
		}
	})
}
