package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/services"
)

type Dependencies struct {
	Catalog   *config.Catalog
	Upload    services.UploadService
	Screening services.ScreeningService
	Sessions  services.SessionStore
	Logger    *zap.Logger
}

func RegisterRoutes(app *fiber.App, deps Dependencies) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	profiles := newProfileResolver(deps.Catalog, validator.New())

	uploadHandler := NewUploadHandler(deps.Upload, deps.Screening, deps.Sessions, profiles, logger)
	evaluateHandler := NewEvaluationHandler(deps.Screening, deps.Sessions, profiles, logger)
	resultHandler := NewResultHandler(deps.Sessions)
	profileHandler := NewProfileHandler(deps.Catalog)
	sampleHandler := NewSampleHandler()

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now(),
			"sessions": deps.Sessions.Len(),
		})
	})

	api.Get("/profiles", profileHandler.HandleListProfiles)
	api.Get("/profiles/:key", profileHandler.HandleGetProfile)

	api.Post("/screen", uploadHandler.HandleUpload)
	api.Get("/sessions/:id", resultHandler.HandleGetResult)
	api.Post("/sessions/:id/score", evaluateHandler.HandleEvaluate)
	api.Delete("/sessions/:id", resultHandler.HandleDeleteResult)

	api.Get("/samples", sampleHandler.HandleListSamples)
	api.Get("/samples/:key", sampleHandler.HandleDownloadSample)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Resume Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/profiles",
				"POST /api/v1/screen",
				"GET /api/v1/sessions/:id",
				"POST /api/v1/sessions/:id/score",
				"DELETE /api/v1/sessions/:id",
				"GET /api/v1/samples",
			},
		})
	})
}

// ErrorHandler renders errors that escape a handler as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
