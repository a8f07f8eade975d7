package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "autocover/internal/adapter/http/dto/request"
	response "autocover/internal/adapter/http/dto/response"
	"autocover/internal/usecase"
	"autocover/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBillingPayload = pkg.NewDomainErrorSimple("INVALID_BILLING_INPUT", "Invalid billing payload", http.StatusBadRequest)

// BillingHandler handles the billing profile and the per-policy charge
// ledger endpoints.

type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// UpsertBillingProfile replaces the policy's billing profile wholesale.
func (h *BillingHandler) UpsertBillingProfile(c *gin.Context) {
	policyID := c.Param("policy_id")

	var payload request.UpsertBillingProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	profile, err := h.usecase.UpsertProfile(c.Request.Context(), policyID, usecase.UpsertProfileInput{
		PaymentMethod:     payload.PaymentMethod,
		AccountName:       payload.AccountName,
		AccountIdentifier: payload.AccountIdentifier,
		CardBrand:         payload.CardBrand,
		CardLastFour:      payload.CardLastFour,
		CardExpiryMonth:   payload.CardExpiryMonth,
		CardExpiryYear:    payload.CardExpiryYear,
		BillingZip:        payload.BillingZip,
		AutopayEnabled:    payload.AutopayEnabled,
		Notes:             payload.Notes,
	})
	if err != nil {
		log.Printf("[billing][handler] profile upsert failed policy_id=%s err=%v", policyID, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillingProfile(profile))
}

func (h *BillingHandler) GetBillingProfile(c *gin.Context) {
	profile, err := h.usecase.GetProfile(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillingProfile(profile))
}

// RecordCharge executes a charge through the payment gateway and appends
// the reported outcome to the policy's ledger.
func (h *BillingHandler) RecordCharge(c *gin.Context) {
	policyID := c.Param("policy_id")
	log.Printf("[billing][handler] charge start policy_id=%s", policyID)

	var payload request.RecordChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	amountCents, err := payload.ResolveAmountCents()
	if err != nil {
		log.Printf("[billing][handler] invalid amount policy_id=%s err=%v", policyID, err)
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	providerPayload := payload.ProviderPayload
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}

	charge, err := h.usecase.RecordCharge(c.Request.Context(), policyID, amountCents, payload.Description, providerPayload)
	if err != nil {
		log.Printf("[billing][handler] charge failed policy_id=%s err=%v", policyID, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[billing][handler] charge recorded policy_id=%s charge_id=%s status=%s", policyID, charge.ID, charge.Status)
	c.JSON(http.StatusCreated, response.FromPolicyCharge(charge))
}

// ListCharges returns the ledger most-recent-first.
func (h *BillingHandler) ListCharges(c *gin.Context) {
	charges, err := h.usecase.ListCharges(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyCharges(charges))
}

// ApplyChargeStatus records a provider-reported status change for an
// existing ledger entry.
func (h *BillingHandler) ApplyChargeStatus(c *gin.Context) {
	chargeID := c.Param("charge_id")

	var payload request.ApplyChargeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	charge, err := h.usecase.ApplyProviderStatus(c.Request.Context(), chargeID, payload.ProviderStatus)
	if err != nil {
		log.Printf("[billing][handler] status update failed charge_id=%s err=%v", chargeID, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyCharge(charge))
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyID),
		errors.Is(err, usecase.ErrInvalidChargeID),
		errors.Is(err, usecase.ErrInvalidChargeAmount),
		errors.Is(err, usecase.ErrInvalidChargePayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillingProfileNotFound):
		return pkg.NewDomainErrorSimple("BILLING_PROFILE_NOT_FOUND", "Billing profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
