package routes

import (
	"log"
	"os"
	"strconv"

	_ "atelier_ops/docs" // This will be auto-generated
	"atelier_ops/internal/adapter/http/handlers"
	repository2 "atelier_ops/internal/adapter/persistence/repository"
	"atelier_ops/internal/infrastructure/database"
	"atelier_ops/internal/infrastructure/payments"
	"atelier_ops/internal/usecase"
	"atelier_ops/internal/usecase/interfaces"

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

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	workItemRepo := repository2.NewWorkItemDynamoRepository(ddb)
	materialRepo := repository2.NewMaterialDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	quotePaymentRepo := repository2.NewQuotePaymentDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(projectRepo, workItemRepo, materialRepo)
	stalenessUseCase := usecase.NewStalenessUseCase(projectRepo, workItemRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, projectRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quotePaymentUseCase := usecase.NewQuotePaymentUseCase(quotePaymentRepo, quoteRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	stalenessHandler := handlers.NewStalenessHandler(stalenessUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	quotePaymentHandler := handlers.NewQuotePaymentHandler(quotePaymentUseCase)

	// Internal (office-facing) routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, estimateHandler, stalenessHandler)
	addQuoteRoutes(v1, quoteHandler, quotePaymentHandler)

	// Token-addressed client portal routes
	portal := router.Group("/portal")
	addPortalRoutes(portal, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
