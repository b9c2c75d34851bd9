package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unionscout/unionscout/pkg/sdk"
	"github.com/unionscout/unionscout/pkg/utils"

	dashboard_module "github.com/unionscout/unionscout/internal/api/modules/dashboard"
	health_module "github.com/unionscout/unionscout/internal/api/modules/health"
	leads_module "github.com/unionscout/unionscout/internal/api/modules/leads"
	research_module "github.com/unionscout/unionscout/internal/api/modules/research"
	unions_module "github.com/unionscout/unionscout/internal/api/modules/unions"
	zoho_module "github.com/unionscout/unionscout/internal/api/modules/zoho"
)

func Start(cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Route not found", nil).AsGinResponse())
	})

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)

	unions_module.Init(cfg)
	unions_module.RegisterRoutes(baseGroup, cfg)

	leads_module.Init(cfg)
	leads_module.RegisterRoutes(baseGroup, cfg)

	research_module.Init(cfg)
	research_module.RegisterRoutes(baseGroup, cfg)

	zoho_module.Init(cfg)
	zoho_module.RegisterRoutes(baseGroup, cfg)

	dashboard_module.Init(cfg)
	dashboard_module.RegisterRoutes(baseGroup, cfg)

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}
