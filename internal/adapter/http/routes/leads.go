package routes

import (
	"autocover/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads = "/leads"
)

func addLeadRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler, quoteHandler *handlers.QuoteHandler, conversionHandler *handlers.ConversionHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("/:lead_id", leadHandler.GetLead)
		leads.PATCH("/:lead_id/stage", leadHandler.UpdateLeadStage)
		leads.POST("/:lead_id/notes", leadHandler.AddLeadNote)

		leads.POST("/:lead_id/quotes", quoteHandler.CreateQuote)
		leads.GET("/:lead_id/quotes", quoteHandler.ListQuotesByLead)

		// Conversion is idempotent: replays answer 200 with the policy
		// created by the first call.
		leads.POST("/:lead_id/policy", conversionHandler.ConvertLead)
	}
}
