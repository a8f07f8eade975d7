package handlers

import (
	"errors"
	"net/http"

	request "autocover/internal/adapter/http/dto/request"
	response "autocover/internal/adapter/http/dto/response"
	"autocover/internal/domain/pricing"
	"autocover/internal/usecase"
	"autocover/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quotes.
//
// Monetary inputs arrive as decimal dollar strings and are converted to
// integer cents at this boundary; nothing past the DTO layer sees dollars.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	deductibleCents, err := payload.ResolveDeductibleCents()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	monthlyCents, err := payload.ResolvePriceMonthlyCents()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), c.Param("lead_id"), usecase.CreateQuoteInput{
		Plan:              payload.ResolvePlan(),
		DeductibleCents:   deductibleCents,
		TermMonths:        payload.TermMonths,
		PriceMonthlyCents: monthlyCents,
		PaymentOption:     payload.ResolvePaymentOption(),
		ExpirationMiles:   payload.ExpirationMiles,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotesByLead(c *gin.Context) {
	quotes, err := h.usecase.ListByLeadID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// ReconcileQuoteDraft applies one edit event to a client-held quote draft
// and returns the reconciled draft. Stateless: nothing is persisted, so the
// handler calls the pure pricing rules directly.
func (h *QuoteHandler) ReconcileQuoteDraft(c *gin.Context) {
	var payload request.ReconcileQuoteDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	draft, err := pricing.Apply(payload.ToDraft(), payload.ToEdit())
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DRAFT_EDIT", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDraft(draft))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidQuotePlan),
		errors.Is(err, usecase.ErrInvalidQuoteTerm),
		errors.Is(err, usecase.ErrInvalidQuotePrice),
		errors.Is(err, usecase.ErrInvalidQuoteDeductible),
		errors.Is(err, usecase.ErrInvalidPaymentOption):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
