package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

type UploadHandler struct {
	uploadService    services.UploadService
	screeningService services.ScreeningService
	sessions         services.SessionStore
	profiles         *profileResolver
	logger           *zap.Logger
}

func NewUploadHandler(
	uploadService services.UploadService,
	screeningService services.ScreeningService,
	sessions services.SessionStore,
	profiles *profileResolver,
	logger *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		uploadService:    uploadService,
		screeningService: screeningService,
		sessions:         sessions,
		profiles:         profiles,
		logger:           logger,
	}
}

// HandleUpload screens the "resume" file of a multipart form and remembers the
// extracted profile in a session so it can be rescored later.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	profile, err := h.profiles.resolveRaw(c.FormValue("profile"), c.FormValue("custom_profile"))
	if err != nil {
		return c.Status(profileErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	upload, err := h.uploadService.ReadFile(file)
	if err != nil {
		return c.Status(uploadErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	kind, err := services.DetectKind(upload.Filename, upload.ContentType, upload.Data)
	if err != nil {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.screeningService.Screen(upload.Data, kind, profile)
	if err != nil {
		var unsupported *services.UnsupportedFormatError
		switch {
		case errors.As(err, &unsupported):
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, services.ErrNoText):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Could not extract text from the file. Please check the file format.",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to screen resume: %v", err),
			})
		}
	}

	session := h.sessions.Save(&models.Session{
		ID:        h.existingSessionID(c.FormValue("session_id")),
		Filename:  upload.Filename,
		Kind:      kind,
		Extracted: result.Extracted,
	})

	h.logger.Info("resume screened",
		zap.String("session_id", session.ID.String()),
		zap.String("filename", upload.Filename),
		zap.String("kind", string(kind)),
		zap.String("profile", profile.Name),
		zap.Float64("overall_score", result.Report.OverallScore),
	)

	return c.Status(fiber.StatusCreated).JSON(models.ScreenResponse{
		SessionID: session.ID.String(),
		Filename:  upload.Filename,
		Kind:      kind,
		Result:    result,
	})
}

// existingSessionID reuses a live session so a new upload replaces its
// document. Unknown or expired IDs start a fresh session.
func (h *UploadHandler) existingSessionID(raw string) uuid.UUID {
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	if _, ok := h.sessions.Get(id); !ok {
		return uuid.Nil
	}
	return id
}

func uploadErrorStatus(err error) int {
	var unsupported *services.UnsupportedFormatError
	switch {
	case errors.As(err, &unsupported):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	default:
		return fiber.StatusInternalServerError
	}
}
