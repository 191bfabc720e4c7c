package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"transverse/internal/handler"
	"transverse/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	RideHandler     *handler.RideHandler
	ChatHandler     *handler.ChatHandler
	CatalogHandler  *handler.CatalogHandler
	DeliveryHandler *handler.DeliveryHandler
	CurrencyHandler *handler.CurrencyHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Auth routes.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/logout", deps.AuthHandler.Logout)
			auth.POST("/admin/login", deps.AuthHandler.AdminLogin)
			auth.GET("/session", deps.AuthHandler.GetSession)
		}

		// Profile and settings routes.
		profile := v1.Group("/profile")
		{
			profile.GET("", deps.ProfileHandler.GetUser)
			profile.PUT("", deps.ProfileHandler.UpdateUser)
			profile.GET("/editor", deps.ProfileHandler.GetProfile)
			profile.PUT("/editor", deps.ProfileHandler.SaveProfile)
			profile.GET("/username-available", deps.ProfileHandler.UsernameAvailable)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", deps.ProfileHandler.GetSettings)
			settings.PUT("/dark-mode", deps.ProfileHandler.SetDarkMode)
		}

		// Catalog routes.
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/vehicle-classes", deps.CatalogHandler.GetVehicleClasses)
			catalog.GET("/payment-methods", deps.CatalogHandler.GetPaymentMethods)
		}

		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.GET("/quote", deps.RideHandler.Quote)
			rides.POST("", deps.RideHandler.RequestRide)
			rides.GET("/current", deps.RideHandler.Current)
			rides.POST("/cancel", deps.RideHandler.Cancel)
			rides.POST("/complete", deps.RideHandler.Complete)
			rides.GET("/history", deps.RideHandler.History)
		}

		// Delivery routes.
		delivery := v1.Group("/delivery")
		{
			delivery.GET("/categories", deps.DeliveryHandler.GetCategories)
			delivery.GET("/restaurants", deps.DeliveryHandler.GetRestaurants)
			delivery.GET("/restaurants/:id", deps.DeliveryHandler.GetRestaurant)
			delivery.GET("/restaurants/:id/menu", deps.DeliveryHandler.GetMenu)
			delivery.GET("/cart", deps.DeliveryHandler.GetCart)
			delivery.POST("/cart/items", deps.DeliveryHandler.AddToCart)
			delivery.DELETE("/cart/items/:id", deps.DeliveryHandler.RemoveFromCart)
			delivery.DELETE("/cart", deps.DeliveryHandler.ClearCart)
			delivery.POST("/orders", deps.DeliveryHandler.PlaceOrder)
			delivery.GET("/orders", deps.DeliveryHandler.GetOrders)
			delivery.GET("/orders/:id", deps.DeliveryHandler.GetOrder)
		}

		// Currency routes.
		currency := v1.Group("/currency")
		{
			currency.GET("", deps.CurrencyHandler.GetCurrent)
			currency.PUT("", deps.CurrencyHandler.ChangeCountry)
			currency.GET("/countries", deps.CurrencyHandler.GetCountries)
			currency.POST("/detect", deps.CurrencyHandler.DetectCountry)
			currency.GET("/format", deps.CurrencyHandler.FormatPrice)
		}

		// Chat routes.
		chat := v1.Group("/chat")
		{
			// Search lives on the collection path: a static /users/search
			// sibling would conflict with the :id wildcard.
			chat.GET("/users", deps.ChatHandler.SearchUser)
			chat.GET("/users/:id", deps.ChatHandler.GetUser)
			chat.GET("/conversations", deps.ChatHandler.GetConversations)
			chat.POST("/conversations", deps.ChatHandler.CreateConversation)
			chat.GET("/conversations/:id/messages", deps.ChatHandler.GetMessages)
			chat.POST("/conversations/:id/messages", deps.ChatHandler.SendMessage)
			chat.POST("/conversations/:id/read", deps.ChatHandler.MarkAsRead)
			chat.GET("/unread", deps.ChatHandler.GetUnreadCount)
		}
	}

	return router
}
