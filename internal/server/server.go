package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/beheryahmed1991/subscription-tracker/docs"
	"github.com/beheryahmed1991/subscription-tracker/internal/config"
	"github.com/beheryahmed1991/subscription-tracker/internal/db"
	"github.com/beheryahmed1991/subscription-tracker/internal/identity"
	"github.com/beheryahmed1991/subscription-tracker/internal/middleware"
	"github.com/beheryahmed1991/subscription-tracker/internal/subscription"
)

// Deps are the collaborators the HTTP layer is assembled from.
type Deps struct {
	Identity      identity.Service
	Subscriptions subscription.Service
	// DB is pinged by /healthz; nil skips the check.
	DB  *sql.DB
	Log *slog.Logger
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(deps.Log), middleware.RequestLogger(deps.Log))

	router.GET("/healthz", func(c *gin.Context) {
		if deps.DB != nil {
			if err := db.Ping(c.Request.Context(), deps.DB, 2*time.Second); err != nil {
				deps.Log.Warn("health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := identity.RequireAuth(deps.Identity, deps.Log)
	identity.NewHandler(deps.Identity, deps.Log).RegisterRoutes(router, requireAuth)
	subscription.NewHandler(deps.Subscriptions, deps.Log).RegisterRoutes(router, requireAuth)

	docs.SwaggerInfo.Host = cfg.Swagger.Host
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// New wraps the router in CORS handling and an http.Server.
func New(cfg config.Config, deps Deps) *http.Server {
	crs := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      crs.Handler(NewRouter(cfg, deps)),
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}
}

// Run serves until ctx is cancelled, then drains within shutdownTimeout.
func Run(ctx context.Context, srv *http.Server, log *slog.Logger, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
