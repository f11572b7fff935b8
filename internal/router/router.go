// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/niyorhq/niyor-server/internal/config"
	"github.com/niyorhq/niyor-server/internal/handlers"
	"github.com/niyorhq/niyor-server/internal/middleware"
	"github.com/niyorhq/niyor-server/internal/services"
	"github.com/niyorhq/niyor-server/internal/storage"
	"github.com/niyorhq/niyor-server/internal/utils"
)

// Initialize wires services and handlers over the injected stores and
// returns the configured engine. Stores come in as interfaces so tests can
// substitute the in-memory implementation.
func Initialize(users storage.UserStore, products storage.ProductStore, cfg *config.Config) *gin.Engine {
	// Initialize services
	userService := services.NewUserService(users)
	productService := services.NewProductService(products)
	tokenService := services.NewTokenService(users, cfg.JWT.TTLHours)
	storageService, _ := services.NewStorageService(cfg)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	tokenHandler := handlers.NewTokenHandler(tokenService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	r.Use(middleware.Metrics())

	r.GET("/metrics", middleware.MetricsHandler())

	// Token issuance
	r.POST("/jwt", tokenHandler.IssueToken)

	api := r.Group("/api")
	{
		api.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "Niyor server is up and running")
		})

		users := api.Group("/users")
		{
			users.PATCH("", userHandler.UpsertUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:email", userHandler.GetUserByEmail)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.POST("", productHandler.CreateProduct)
			products.POST("/upload-images", uploadHandler.UploadProductImages)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}
	}

	return r
}
