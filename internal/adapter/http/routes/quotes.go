package routes

import (
	"autocover/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathContracts = "/contracts"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, contractHandler *handlers.ContractHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/reconcile", quoteHandler.ReconcileQuoteDraft)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/contracts", contractHandler.CreateContract)
		quotes.GET("/:quote_id/contracts/latest", contractHandler.GetLatestContract)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("/:contract_id/sign", contractHandler.SignContract)
	}
}
