package routes

import (
	"autocover/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPolicies = "/policies"
	PathCharges  = "/charges"
)

func addPolicyRoutes(rg *gin.RouterGroup, billingHandler *handlers.BillingHandler) {
	policies := rg.Group(PathPolicies)
	{
		policies.PUT("/:policy_id/billing-profile", billingHandler.UpsertBillingProfile)
		policies.GET("/:policy_id/billing-profile", billingHandler.GetBillingProfile)
		policies.POST("/:policy_id/charges", billingHandler.RecordCharge)
		policies.GET("/:policy_id/charges", billingHandler.ListCharges)
	}

	charges := rg.Group(PathCharges)
	{
		charges.PATCH("/:charge_id/status", billingHandler.ApplyChargeStatus)
	}
}
