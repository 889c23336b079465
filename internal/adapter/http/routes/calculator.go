package routes

import (
	"kalkulacka/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCalculator = "/calculator"
	PathClients    = "/calculator/clients"
)

func addCalculatorRoutes(
	rg *gin.RouterGroup,
	calculatorHandler *handlers.CalculatorHandler,
	leadHandler *handlers.LeadHandler,
	recordHandler *handlers.ClientRecordHandler,
) {
	calc := rg.Group(PathCalculator)
	{
		calc.POST("/quotes", calculatorHandler.CreateQuote)
		calc.GET("/result", calculatorHandler.GetResult)
		calc.GET("/submitted", calculatorHandler.GetSubmitted)
		calc.POST("/leads", leadHandler.SubmitLead)
	}

	clients := rg.Group(PathClients)
	{
		clients.PUT("/:client_id/record", recordHandler.UpsertRecord)
		clients.GET("/:client_id/record", recordHandler.GetRecord)
		clients.DELETE("/:client_id/record", recordHandler.ClearRecord)
		clients.DELETE("/:client_id/ledger", recordHandler.ClearLedger)
		clients.GET("/:client_id/ledger/count", recordHandler.LedgerCount)
	}
}
