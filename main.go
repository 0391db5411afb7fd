package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gourmet-express/api/auth"
	"github.com/gourmet-express/api/config"
	"github.com/gourmet-express/api/routes"
	"github.com/gourmet-express/api/service"
	"github.com/gourmet-express/api/store"
)

const (
	serviceName = "Gourmet Express API"
	version     = "1.0.0"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	r.Use(corsMiddleware(strings.Join(cfg.CORSAllowOrigins, ",")))

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    serviceName,
			"version": version,
		})
	})

	// Non-secret runtime config for diagnostics
	r.GET("/config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"environment":                 cfg.Environment,
			"jwt_algorithm":               "HS256",
			"access_token_expire_minutes": cfg.AccessTokenExpireMinutes,
			"cors_allow_origins":          cfg.CORSAllowOrigins,
			"mock_mode":                   true,
		})
	})

	catalog := store.NewCatalogStore(db)
	ledger := store.NewOrderLedger(db)

	routes.SetupRoutes(r, routes.Deps{
		Users:    store.NewIdentityStore(db),
		Catalog:  catalog,
		Subs:     store.NewSubscriptionStore(db),
		Tokens:   auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenExpireMinutes),
		Orders:   service.NewOrderService(catalog, ledger),
		Payments: service.NewPaymentService(ledger),
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func corsMiddleware(allowOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigins)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
