package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/cmd/docs"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
	"github.com/schergr/interiordesign/internal/metrics"
	"github.com/schergr/interiordesign/internal/middleware"
	"github.com/schergr/interiordesign/internal/platform/config"
	"github.com/schergr/interiordesign/internal/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes installs the global middleware and every application route.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	posthogClient *utils.PosthogClientWrapper,
	logger *slog.Logger,
) error {
	dto.RegisterValidators()

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(m),
		middleware.RequestTimeout(cfg.RequestTimeout),
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
	)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	authLimiter, err := middleware.NewRateLimiter(cfg.AuthRateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure auth rate limit: %w", err)
	}
	registerAuthRoutes(r, services.User, services.Token, middleware.RateLimit(authLimiter))

	api := r.Group("",
		middleware.AuthMiddleware(services.User, services.Token, m, cfg.RequireAuth),
		middleware.PosthogMiddleware(posthogClient),
	)
	registerVendorRoutes(api, services.Vendor)
	registerProductRoutes(api, services.Product)
	registerClientRoutes(api, services.Client)
	registerProjectRoutes(api, services.Project)
	registerContractRoutes(api, services.Contract)
	registerTaskRoutes(api, services.Task)
	registerDocumentRoutes(api, services.Document)
	registerInventoryRoutes(api, services.Inventory)
	registerEmployeeRoutes(api, services.Employee)
	registerLeadRoutes(api, services.Lead)
	registerRoomRoutes(api, services.Room)
	registerItemRoutes(api, services.Item)
	registerProposalRoutes(api, services.Proposal)
	registerInvoiceRoutes(api, services.Invoice)
	registerNoteRoutes(api, services.Note)
	registerLookupRoutes(api, services.Lookup)

	setupSwaggerRoutes(r, cfg)
	return nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
