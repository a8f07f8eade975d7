package routes

import (
	"log"
	"os"
	"strconv"

	_ "autocover/docs" // This will be auto-generated
	"autocover/internal/adapter/http/handlers"
	repository2 "autocover/internal/adapter/persistence/repository"
	"autocover/internal/infrastructure/database"
	"autocover/internal/infrastructure/payments"
	"autocover/internal/usecase"
	"autocover/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	policyRepo := repository2.NewPolicyDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	profileRepo := repository2.NewBillingProfileDynamoRepository(ddb)
	chargeRepo := repository2.NewPolicyChargeDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, leadRepo)
	conversionUseCase := usecase.NewConversionUseCase(policyRepo, leadRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo, quoteRepo)
	billingUseCase := usecase.NewBillingUseCase(profileRepo, chargeRepo, policyRepo, paymentGateway)

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	conversionHandler := handlers.NewConversionHandler(conversionUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLeadRoutes(v1, leadHandler, quoteHandler, conversionHandler)
	addQuoteRoutes(v1, quoteHandler, contractHandler)
	addPolicyRoutes(v1, billingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
