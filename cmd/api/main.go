package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/CraftLedger/craft_api/internal/config"
	"github.com/CraftLedger/craft_api/internal/handler"
	"github.com/CraftLedger/craft_api/internal/middleware"
	"github.com/CraftLedger/craft_api/internal/repository"
	"github.com/CraftLedger/craft_api/internal/service"
	"github.com/CraftLedger/craft_api/internal/sse"
	"github.com/CraftLedger/craft_api/internal/worker"
)

// main is the application entrypoint for the CraftLedger API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("base_url", cfg.BaseURL).Msg("starting craftledger api")

	// 3. Open the record store. A corrupt document is fatal: it must never
	// be silently replaced with an empty one.
	storePath := filepath.Join(cfg.Storage.DataDir, "db.json")
	productRepo, err := repository.NewProductRepository(storePath)
	if err != nil {
		log.Error().Err(err).Str("path", storePath).Msg("record store open failed")
		fmt.Fprintf(os.Stderr, "record store open failed: %v\n", err)
		os.Exit(1)
	}

	// 3a. Bootstrap artifact directories
	artifactSvc, err := service.NewArtifactService(&cfg.Storage)
	if err != nil {
		log.Error().Err(err).Msg("artifact store initialization failed")
		fmt.Fprintf(os.Stderr, "artifact store initialization failed: %v\n", err)
		os.Exit(1)
	}

	// 4. Initialize SSE hub for live product events
	hub := sse.NewHub()

	// 5. Initialize services
	transcribeSvc := service.NewTranscribeService()
	storySvc := service.NewStoryService()
	tagSvc := service.NewTagService()
	priceSvc := service.NewPriceService()
	certificateSvc := service.NewCertificateService(cfg.BaseURL, artifactSvc)
	productSvc := service.NewProductService(productRepo, artifactSvc, transcribeSvc, storySvc, tagSvc, priceSvc, certificateSvc)
	productSvc.SetNotifier(sse.NewHubNotifier(hub))

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:      handler.NewHealthHandler(productRepo),
		Product:     handler.NewProductHandler(productSvc),
		Certificate: handler.NewCertificateHandler(productSvc),
		SSE:         handler.NewSSEHandler(hub),
	}

	// 7. Initialize middleware
	rateLimiter := middleware.NewSubmissionRateLimiter(30)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, rateLimiter, artifactSvc.UploadsDir(), cfg.Storage.FrontendDir)

	// 9. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 10. Start workers
	if cfg.Worker.BackupInterval > 0 {
		go worker.NewBackupWorker(productRepo, storePath+".bak", cfg.Worker.BackupInterval).Start(ctx)
	}

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. Cancel context to stop workers
	cancel()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health      *handler.HealthHandler
	Product     *handler.ProductHandler
	Certificate *handler.CertificateHandler
	SSE         *handler.SSEHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, rateLimiter *middleware.SubmissionRateLimiter, uploadsDir, frontendDir string) {
	router.POST("/process", rateLimiter.Handle(), handlers.Product.Process)
	router.GET("/certificate/:id", handlers.Certificate.Show)
	router.GET("/health", handlers.Health.GetHealth)
	router.GET("/v1/events", handlers.SSE.Stream)

	// Stored artifacts (uploaded images/audio, generated QR codes)
	router.Static("/uploads", uploadsDir)

	// Static frontend, served for any path no API route claims
	if info, err := os.Stat(frontendDir); err == nil && info.IsDir() {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(frontendDir))))
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
