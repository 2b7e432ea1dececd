package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"curbside/handlers"
	"curbside/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Catalog *handlers.CatalogHandler
	Orders  *handlers.OrderHandler
	Ratings *handlers.RatingHandler
	Streams *handlers.StreamHandler

	// Auth verifies the Firebase ID token and attaches the caller identity.
	Auth gin.HandlerFunc
}

// RegisterTruckRoutes registers the truck and menu endpoints.
func RegisterTruckRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/trucks")
	{
		// Public read paths.
		api.GET("/:id", h.Catalog.GetTruckHandler)
		api.GET("/:id/menu", h.Catalog.GetMenuHandler)
		api.GET("/:id/reviews", h.Ratings.TopReviewsHandler)

		// Vendor-only catalog management.
		vendor := api.Group("")
		vendor.Use(h.Auth, middleware.RequireRole("vendor"))
		vendor.POST("", h.Catalog.CreateTruckHandler)
		vendor.PATCH("/:id", h.Catalog.UpdateTruckHandler)
		vendor.POST("/:id/menu", h.Catalog.AddMenuItemHandler)

		// Customer actions gated on a verified email.
		customer := api.Group("")
		customer.Use(h.Auth, middleware.RequireRole("customer"), middleware.RequireVerifiedEmail())
		customer.POST("/:id/reviews", h.Ratings.UpsertRatingHandler)
		customer.POST("/:id/orders", h.Orders.CreateOrderHandler)
	}
}

// RegisterVendorRoutes registers the vendor dashboard endpoints.
func RegisterVendorRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/vendor")
	api.Use(h.Auth, middleware.RequireRole("vendor"))
	{
		api.GET("/trucks", h.Catalog.MyTrucksHandler)
		api.PATCH("/trucks/:id/orders/:orderId/status", h.Orders.SetStatusHandler)
	}
}

// RegisterOrderRoutes registers the customer order endpoints.
func RegisterOrderRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/orders")
	api.Use(h.Auth)
	{
		api.GET("/mine", h.Orders.MyOrdersHandler)
	}
}

// RegisterStreamRoutes registers the live snapshot streams.
func RegisterStreamRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/streams")
	{
		api.GET("/trucks", h.Streams.TrucksStreamHandler)
		api.GET("/trucks/:id/menu", h.Streams.MenuStreamHandler)
		api.GET("/trucks/:id/reviews", h.Streams.ReviewsStreamHandler)

		auth := api.Group("")
		auth.Use(h.Auth)
		auth.GET("/trucks/:id/orders", h.Streams.TruckOrdersStreamHandler)
		auth.GET("/orders/mine", h.Streams.MyOrdersStreamHandler)
	}
}

// RegisterRoutes wires up all route groups and shared middleware.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterTruckRoutes(r, h)
	RegisterVendorRoutes(r, h)
	RegisterOrderRoutes(r, h)
	RegisterStreamRoutes(r, h)
}
