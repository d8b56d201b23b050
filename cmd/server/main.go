package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lx-registry-service/internal/adapters/primary/http/handlers"
	"lx-registry-service/internal/adapters/primary/http/middleware"
	"lx-registry-service/internal/adapters/secondary/postgres"
	"lx-registry-service/internal/config"
	"lx-registry-service/internal/core/services"
	"lx-registry-service/internal/logging"
	"lx-registry-service/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logging.Init(cfg.Logger)

	pool, err := postgres.NewPool(context.Background(), &cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	if err := postgres.MigrateUp(cfg.Database.DSN()); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports - Repositories)
	activeModelRepo := postgres.NewActiveModelRepository(pool)
	modelMetaRepo := postgres.NewModelMetaRepository(pool)
	lxUserRepo := postgres.NewLxUserRepository(pool)
	centerRepo := postgres.NewCenterRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	frameRepo := postgres.NewFrameRepository(pool)
	legacyFrameRepo := postgres.NewLegacyFrameRepository(pool)

	// Core Services (Application Layer)
	activeModelSvc := services.NewActiveModelService(activeModelRepo, modelMetaRepo, collector)
	modelMetaSvc := services.NewModelMetaService(modelMetaRepo)
	lxUserSvc := services.NewLxUserService(lxUserRepo, collector)
	centerSvc := services.NewCenterService(centerRepo)
	patientSvc := services.NewPatientService(patientRepo, centerRepo)
	frameSvc := services.NewFrameService(frameRepo)
	legacyFrameSvc := services.NewLegacyFrameService(legacyFrameRepo)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(activeModelSvc, modelMetaSvc, lxUserSvc, centerSvc, patientSvc, frameSvc, legacyFrameSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(collector), gin.Recovery())
	if cfg.RateLimit.RPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
		router.Use(limiter.Middleware())
	}

	api := router.Group("/api/v1/lx-registry")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler(reg)))
	} else {
		log.Info("metrics endpoint disabled")
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}
