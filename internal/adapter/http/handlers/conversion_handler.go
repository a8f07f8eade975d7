package handlers

import (
	"errors"
	"log"
	"net/http"

	request "autocover/internal/adapter/http/dto/request"
	response "autocover/internal/adapter/http/dto/response"
	"autocover/internal/usecase"
	"autocover/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConversionPayload = pkg.NewDomainErrorSimple("INVALID_CONVERSION_INPUT", "Invalid conversion payload", http.StatusBadRequest)

// ConversionHandler handles the lead-to-policy conversion endpoint.
//
// Replays answer 200 with the existing policy; only a genuinely new
// conversion answers 201.

type ConversionHandler struct {
	usecase usecase.IConversionUseCase
}

func NewConversionHandler(uc usecase.IConversionUseCase) *ConversionHandler {
	return &ConversionHandler{usecase: uc}
}

func (h *ConversionHandler) ConvertLead(c *gin.Context) {
	leadID := c.Param("lead_id")
	log.Printf("[conversion][handler] convert start lead_id=%s", leadID)

	var payload request.ConvertPolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConversionPayload.HTTPStatus, errInvalidConversionPayload.ToHTTPError())
		return
	}

	in, err := resolveConvertInput(payload)
	if err != nil {
		log.Printf("[conversion][handler] invalid payload lead_id=%s err=%v", leadID, err)
		c.JSON(errInvalidConversionPayload.HTTPStatus, errInvalidConversionPayload.ToHTTPError())
		return
	}

	policy, created, err := h.usecase.Convert(c.Request.Context(), leadID, in)
	if err != nil {
		log.Printf("[conversion][handler] convert failed lead_id=%s err=%v", leadID, err)
		appErr := mapConversionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	log.Printf("[conversion][handler] convert done lead_id=%s policy_id=%s created=%t", leadID, policy.ID, created)
	c.JSON(status, response.FromPolicy(policy))
}

func resolveConvertInput(payload request.ConvertPolicyRequest) (usecase.ConvertPolicyInput, error) {
	startDate, err := payload.ResolveStartDate()
	if err != nil {
		return usecase.ConvertPolicyInput{}, err
	}
	expirationDate, err := payload.ResolveExpirationDate()
	if err != nil {
		return usecase.ConvertPolicyInput{}, err
	}
	deductibleCents, err := payload.ResolveDeductibleCents()
	if err != nil {
		return usecase.ConvertPolicyInput{}, err
	}
	premiumCents, err := payload.ResolveTotalPremiumCents()
	if err != nil {
		return usecase.ConvertPolicyInput{}, err
	}
	downCents, err := payload.ResolveDownPaymentCents()
	if err != nil {
		return usecase.ConvertPolicyInput{}, err
	}
	monthlyCents, err := payload.ResolveMonthlyPaymentCents()
	if err != nil {
		return usecase.ConvertPolicyInput{}, err
	}

	return usecase.ConvertPolicyInput{
		Package:             payload.ResolvePackage(),
		PolicyStartDate:     startDate,
		ExpirationDate:      expirationDate,
		ExpirationMiles:     payload.ExpirationMiles,
		DeductibleCents:     deductibleCents,
		TotalPremiumCents:   premiumCents,
		DownPaymentCents:    downCents,
		MonthlyPaymentCents: monthlyCents,
		TotalPayments:       payload.TotalPayments,
		PaymentOption:       payload.ResolvePaymentOption(),
	}, nil
}

func mapConversionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPaymentDetails):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_DETAILS", "Monthly payment option requires monthly payment and total payments", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLeadID),
		errors.Is(err, usecase.ErrInvalidPolicyPremium),
		errors.Is(err, usecase.ErrInvalidPaymentOption),
		errors.Is(err, usecase.ErrInvalidQuotePlan):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
