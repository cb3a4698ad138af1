package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"file-converter/internal/delivery/http/handlers"
	"file-converter/internal/delivery/http/routers"
	"file-converter/internal/domain/dto"
	"file-converter/internal/infrastructure/engine"
	infra_repo "file-converter/internal/infrastructure/repositories"
	"file-converter/internal/infrastructure/storage"
	"file-converter/internal/pkg/config"
	"file-converter/internal/usecases"
	consts "file-converter/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Engine: one instance per process, loaded asynchronously at startup.
	// Conversion stays disabled until the readiness flag flips; a failed
	// load is terminal for this process.
	ffmpegEngine := engine.NewFFmpegEngine(cfg.Engine.FFmpegPath, cfg.Engine.WorkDir, zapLogger)
	loader := engine.NewLoader(ffmpegEngine, zapLogger)
	go func() {
		loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = loader.Load(loadCtx)
	}()

	// Repositories & Services
	entryRepo := infra_repo.NewInMemoryEntryRepository()
	blobStore := storage.NewInMemoryBlobStore()
	previewService := usecases.NewPreviewService(blobStore, zapLogger)
	converterService := usecases.NewConverterService(entryRepo, blobStore, loader, previewService, zapLogger)
	cleanupService := usecases.NewCleanupService(cfg.Engine.WorkDir, zapLogger)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	convertHandler := handlers.NewConvertHandler(converterService)
	routers.SetupConvertRoutes(app, cfg, convertHandler, cleanupService)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{
			Status:      consts.StatusOK,
			EngineReady: converterService.Ready(),
		})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown signal received, stopping server...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped cleanly")
}
