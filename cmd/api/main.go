package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/handlers"
	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/services"
)

// multipartOverhead leaves room for form fields and boundaries on top of the
// résumé itself, so oversized files reach the handler and get a 413.
const multipartOverhead = 1 << 20

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck
	zlog.Info("✅ Config loaded", zap.String("env", cfg.Server.Env))

	catalog, err := config.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		zlog.Fatal("❌ Failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	zlog.Info("✅ Catalog loaded",
		zap.Int("profiles", len(catalog.Profiles)),
		zap.Int("skills", catalog.Vocabulary.Len()),
	)

	// Initialize services
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	screeningService := services.NewScreeningService(
		services.NewTextExtractorService(),
		catalog,
		zlog.Named("screening"),
	)
	sessions := services.NewSessionStore(cfg.Session.TTL, cfg.Session.SweepInterval, zlog.Named("sessions"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sessions.Start(ctx)
	zlog.Info("✅ Services initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + multipartOverhead,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Catalog:   catalog,
		Upload:    uploadService,
		Screening: screeningService,
		Sessions:  sessions,
		Logger:    zlog.Named("http"),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("🛑 Shutting down server...")
		sessions.Stop()
		if err := app.Shutdown(); err != nil {
			zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
