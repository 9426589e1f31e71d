package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/speakwise/intro-scorer/pkg/validator"

	"github.com/speakwise/intro-scorer/internal/adapter/handler"
	"github.com/speakwise/intro-scorer/internal/usecase/scoring"
	"github.com/speakwise/intro-scorer/pkg/config"
	"github.com/speakwise/intro-scorer/pkg/sentiment"
)

// @title           Intro Scorer API
// @version         1.0
// @description     API for grading self-introduction transcripts against a fixed 8-criterion rubric

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize scoring dependencies
	log.Println("Building scoring rubric...")
	rubric, err := scoring.NewRubric(cfg.Rubric)
	if err != nil {
		log.Fatalf("Failed to build rubric: %v", err)
	}

	log.Println("Loading sentiment lexicon...")
	analyzer := sentiment.NewVaderAnalyzer()

	scoringService := scoring.NewService(rubric, analyzer, logger)
	scoreController := handler.NewScoreController(scoringService, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg, scoreController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		log.Printf("Environment: %s", cfg.Server.Environment)
		log.Printf("Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
