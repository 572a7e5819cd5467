package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/antu41/ECommerceInventory/cmd/docs"
	portssvc "github.com/antu41/ECommerceInventory/internal/core/ports/services"
	"github.com/antu41/ECommerceInventory/internal/middleware"
	"github.com/antu41/ECommerceInventory/internal/platform/config"
	"github.com/antu41/ECommerceInventory/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public authentication routes
	registerAuthRoutes(r, services.Auth)

	// API routes behind JWT auth
	setupAPIRoutes(r, cfg, services, analytics)

	// Swagger routes (off in production)
	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes sets up the public authentication endpoints. Login is
// rate limited per IP to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/refresh", h.Refresh)
	}
}

// setupAPIRoutes configures the protected /api group and delegates to specific
// entity route registrations.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg), middleware.PosthogMiddleware(analytics))

	registerProductRoutes(api, services.Product, cfg.UploadDir)
	registerCategoryRoutes(api, services.Category)
}

func registerProductRoutes(api *gin.RouterGroup, productService portssvc.ProductSvcFacade, uploadDir string) {
	h := NewProductHandler(productService, uploadDir)

	products := api.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/search", h.SearchProducts)
		products.GET("/:productID", h.GetProduct)
		products.PUT("/:productID", h.UpdateProduct)
		products.DELETE("/:productID", h.DeleteProduct)
	}
}

func registerCategoryRoutes(api *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := NewCategoryHandler(categoryService)

	categories := api.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.GET("/:categoryID", h.GetCategory)
		categories.PUT("/:categoryID", h.UpdateCategory)
		categories.DELETE("/:categoryID", h.DeleteCategory)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
