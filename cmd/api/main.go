package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/catalog/app"
	"github.com/joefazee/catalog/app/api"
	"github.com/joefazee/catalog/app/categories"
	"github.com/joefazee/catalog/app/database"
	apiDoc "github.com/joefazee/catalog/app/doc"
	"github.com/joefazee/catalog/app/items"
	_ "github.com/joefazee/catalog/docs"
	"github.com/joefazee/catalog/internal/cache"
	"github.com/joefazee/catalog/internal/deps"
	"github.com/joefazee/catalog/internal/logger"
	"github.com/joefazee/catalog/internal/metrics"
	"github.com/joefazee/catalog/internal/router"
	"github.com/joefazee/catalog/internal/sanitizer"
	"github.com/joefazee/catalog/models"
)

// @title Catalog API
// @version 1.0
// @description Category catalog: ordered categories and the items that belong to them.

// @contact.name API Support Team

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	log := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "catalog",
		"env":     cfg.Env,
	})

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal(err, logger.Fields{"stage": "database"})
	}

	categoryCache, err := cache.New[models.Category](cfg.Cache)
	if err != nil {
		log.Fatal(err, logger.Fields{"stage": "cache"})
	}

	collector := metrics.NewCollector(cfg.MetricsNamespace)

	container := deps.NewContainer(db,
		sanitizer.NewHTMLStripper(),
		log,
		categoryCache,
		collector,
		deps.Settings{
			DefaultPage:    cfg.Categories.DefaultPage,
			DefaultPerPage: cfg.Categories.DefaultPerPage,
			MaxPerPage:     cfg.Categories.MaxPerPage,
			CacheTTL:       cfg.Cache.TTL,
		})

	// categories consume the item service, so items register first
	items.InitRepositories(container)
	categories.InitRepositories(container)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), api.CorsMiddleware(cfg.CorsOrigins), api.RequestLogger(log), collector.Middleware())

	healthz := func(r *gin.RouterGroup, _ *deps.Container) {
		r.GET("/healthz", api.HealthCheck(cfg.Env, cfg.Version))
	}

	router.NewMounter(container).
		Public(r).
		Mount(healthz, items.MountPublic, categories.MountPublic)

	r.GET("/metrics", gin.WrapH(collector.Handler()))
	apiDoc.Init(r, cfg.Env)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("starting catalog API server", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, logger.Fields{"stage": "listen"})
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, logger.Fields{"stage": "shutdown"})
	}

	switch c := categoryCache.(type) {
	case *cache.MemoryCache[models.Category]:
		c.Stop()
	case *cache.RedisCache[models.Category]:
		_ = c.Close()
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
