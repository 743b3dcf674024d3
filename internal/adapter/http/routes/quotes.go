package routes

import (
	"atelier_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler) {
	rg.POST(PathProjects+"/:project_id/quotes", quoteHandler.CreateQuote)
	rg.GET(PathProjects+"/:project_id/quotes", quoteHandler.ListQuotes)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/:quote_id/send", quoteHandler.SendQuote)
		quotes.POST("/:quote_id/payments", paymentHandler.RecordDeposit)
		quotes.GET("/:quote_id/payments", paymentHandler.GetLatestDeposit)
	}
}

// addPortalRoutes registers the unauthenticated, token-addressed client
// routes. The access token in the path is the sole credential.
func addPortalRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:token", quoteHandler.GetQuoteByToken)
		quotes.POST("/:token/approve", quoteHandler.ApproveQuote)
		quotes.POST("/:token/reject", quoteHandler.RejectQuote)
		quotes.POST("/:token/request-revision", quoteHandler.RequestQuoteRevision)
	}
}
