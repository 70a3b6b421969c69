package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tinhour/line-rent-bot/internal/api/handlers"
	"github.com/tinhour/line-rent-bot/internal/api/middleware"
	"github.com/tinhour/line-rent-bot/internal/bot"
	"github.com/tinhour/line-rent-bot/internal/config"
	"github.com/tinhour/line-rent-bot/internal/line"
	"github.com/tinhour/line-rent-bot/internal/services"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(
	cfg *config.Config,
	client *line.Client,
	b *bot.Bot,
	userService services.IUserService,
	propertyService services.IPropertyService,
	inquiryService services.IInquiryService,
	transactionService services.ITransactionService,
) *gin.Engine {
	r := gin.Default()

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)

	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(client, b)
	restPropertyHandler := handlers.NewRestPropertyHandler(propertyService, userService)
	restInquiryHandler := handlers.NewRestInquiryHandler(inquiryService, propertyService, userService)
	restTransactionHandler := handlers.NewRestTransactionHandler(transactionService)

	// The webhook is authenticated by its channel signature, not rate limited.
	r.POST("/webhook", webhookHandler.HandleWebhook)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	apiGroup.Use(rateLimiter.Limit())
	{
		apiGroup.GET("/properties", restPropertyHandler.SearchProperties)
		apiGroup.POST("/properties", restPropertyHandler.CreateProperty)
		apiGroup.GET("/properties/:id", restPropertyHandler.GetPropertyByID)
		apiGroup.PATCH("/properties/:id", restPropertyHandler.UpdatePropertyStatus)

		apiGroup.POST("/inquiries", restInquiryHandler.CreateInquiry)
		apiGroup.GET("/inquiries/:id", restInquiryHandler.GetInquiryByID)

		apiGroup.POST("/transactions", restTransactionHandler.CreateTransaction)
		apiGroup.GET("/transactions/:id", restTransactionHandler.GetTransactionByID)
		apiGroup.PATCH("/transactions/:id", restTransactionHandler.UpdateTransactionStatus)
	}

	return r
}
