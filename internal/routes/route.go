package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/live/internal/container"
	"github.com/joshua-takyi/live/internal/handlers"
	"github.com/joshua-takyi/live/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	if container.Config.EnableMetrics {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	ls := container.LiveService

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", handlers.Health(ls))
		v1.GET("/me", handlers.GetProfile(ls))

		v1.GET("/filters", handlers.GetFilters(ls))
		v1.PATCH("/filters", handlers.UpdateFilters(ls))

		v1.GET("/discovery", handlers.GetDiscovery(ls))
		v1.POST("/discovery/dismiss", handlers.DismissDiscovery(ls))
	}

	eventRoutes := v1.Group("/events")
	{
		eventRoutes.GET("", handlers.ListEvents(ls))
		eventRoutes.GET("/sections", handlers.EventSections(ls))
		eventRoutes.GET("/featured", handlers.FeaturedEvent(ls))
		eventRoutes.GET("/:id", handlers.GetEvent(ls))
	}

	cartRoutes := v1.Group("/cart")
	{
		cartRoutes.GET("", handlers.GetCart(ls))
		cartRoutes.POST("", handlers.AddToCart(ls))
		cartRoutes.DELETE("", handlers.ClearCart(ls))
		cartRoutes.PATCH("/:eventId", handlers.UpdateCartItem(ls))
		cartRoutes.DELETE("/:eventId", handlers.RemoveFromCart(ls))
	}

	savedRoutes := v1.Group("/saved")
	{
		savedRoutes.GET("", handlers.ListSaved(ls))
		savedRoutes.POST("/:eventId", handlers.ToggleSaved(ls))
	}

	checkoutRoutes := v1.Group("/checkout")
	{
		checkoutRoutes.POST("/quote", handlers.CheckoutQuote(ls))
		checkoutRoutes.POST("", handlers.Checkout(ls))
	}

	ticketRoutes := v1.Group("/tickets")
	{
		ticketRoutes.GET("", handlers.ListTickets(ls))
		ticketRoutes.GET("/verify", handlers.VerifyTicket(ls))
	}

	return r
}
