package routes

import (
	"log"
	"os"
	"strconv"

	_ "kalkulacka/docs" // This will be auto-generated
	"kalkulacka/internal/adapter/http/handlers"
	repository2 "kalkulacka/internal/adapter/persistence/repository"
	"kalkulacka/internal/domain/catalog"
	"kalkulacka/internal/infrastructure/billing"
	"kalkulacka/internal/infrastructure/database"
	"kalkulacka/internal/infrastructure/documents"
	"kalkulacka/internal/infrastructure/pricing"
	"kalkulacka/internal/infrastructure/sinks"
	"kalkulacka/internal/token"
	"kalkulacka/internal/usecase"
	"kalkulacka/internal/usecase/interfaces"

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

// getRoutes wires the application: each component is constructed exactly
// once here and handed to its callers, so there is a single logical codec,
// ledger and record store per running application without hidden globals.
func getRoutes() {
	ddb := database.ConnectDynamoDB()
	kvRepo := repository2.NewKeyValueDynamoRepository(ddb)

	codec := token.NewCodec()
	ids := token.NewOrderIDGenerator()
	cat := catalog.Default()

	ledger := usecase.NewSubmissionLedger(kvRepo, codec, ids)
	records := usecase.NewClientRecordUseCase(kvRepo)
	calculator := pricing.NewCoefficientCalculator(cat)
	renderer := documents.NewOutlineRenderer()

	var contractGateway interfaces.IContractGateway
	mpGateway, err := billing.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Contract gateway not configured: %v", err)
	} else {
		contractGateway = mpGateway
	}

	flow := usecase.NewOrderFlowUseCase(
		codec, ids, cat, calculator,
		ledger, records, renderer, contractGateway,
		[]interfaces.ISubmissionSink{sinks.NewSpreadsheetLogSink(), sinks.NewEmailSyncSink()},
	)

	calculatorHandler := handlers.NewCalculatorHandler(flow)
	leadHandler := handlers.NewLeadHandler(flow)
	recordHandler := handlers.NewClientRecordHandler(records, ledger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCalculatorRoutes(v1, calculatorHandler, leadHandler, recordHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
