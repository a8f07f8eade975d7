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

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler handles the contract send and sign endpoints.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract sends a new contract for a quote, voiding any older one
// still awaiting signature.
func (h *ContractHandler) CreateContract(c *gin.Context) {
	quoteID := c.Param("quote_id")

	var payload request.CreateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.CreateContract(c.Request.Context(), quoteID, usecase.CreateContractInput{
		FileURL:     payload.FileURL,
		Placeholder: payload.Placeholder,
	})
	if err != nil {
		log.Printf("[contract][handler] create failed quote_id=%s err=%v", quoteID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContract(contract))
}

// SignContract commits the sent -> signed transition.
func (h *ContractHandler) SignContract(c *gin.Context) {
	contractID := c.Param("contract_id")

	var payload request.SignContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.Sign(c.Request.Context(), contractID, usecase.SignatureInput{
		Name:                  payload.Name,
		Email:                 payload.Email,
		Consent:               payload.Consent,
		PaymentMethod:         payload.PaymentMethod,
		CardNumber:            payload.CardNumber,
		Cvv:                   payload.Cvv,
		ExpMonth:              payload.ExpMonth,
		ExpYear:               payload.ExpYear,
		PaymentNotes:          payload.PaymentNotes,
		BillingAddress:        payload.BillingAddress.ToAddress(),
		ShippingAddress:       payload.ShippingAddress.ToAddress(),
		ShippingSameAsBilling: payload.ShippingSameAsBilling,
	})
	if err != nil {
		log.Printf("[contract][handler] sign failed contract_id=%s err=%v", contractID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[contract][handler] sign success contract_id=%s quote_id=%s", contract.ID, contract.QuoteID)
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// GetLatestContract returns the most recent contract for a quote; operators
// read this as the quote's signing status.
func (h *ContractHandler) GetLatestContract(c *gin.Context) {
	contract, err := h.usecase.LatestByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContractFile):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACT_FILE", "Contract needs an uploaded file or the placeholder flag", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingConsent):
		return pkg.NewDomainErrorSimple("MISSING_CONSENT", "Consent is required to sign", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingSignatureName):
		return pkg.NewDomainErrorSimple("MISSING_SIGNATURE_NAME", "Signature name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCardNumber):
		return pkg.NewDomainErrorSimple("INVALID_CARD_NUMBER", "Card number must be 13 to 19 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCvv):
		return pkg.NewDomainErrorSimple("INVALID_CVV", "CVV must be 3 or 4 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExpiry):
		return pkg.NewDomainErrorSimple("INVALID_EXPIRY", "Card expiry is invalid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteBillingAddress):
		return pkg.NewDomainErrorSimple("INCOMPLETE_BILLING_ADDRESS", "Billing address is incomplete", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteShippingAddress):
		return pkg.NewDomainErrorSimple("INCOMPLETE_SHIPPING_ADDRESS", "Shipping address is incomplete", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotSignable):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_SIGNABLE", "Contract is not awaiting signature", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
