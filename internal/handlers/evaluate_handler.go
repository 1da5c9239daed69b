package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

type EvaluationHandler struct {
	screeningService services.ScreeningService
	sessions         services.SessionStore
	profiles         *profileResolver
	logger           *zap.Logger
}

func NewEvaluationHandler(
	screeningService services.ScreeningService,
	sessions services.SessionStore,
	profiles *profileResolver,
	logger *zap.Logger,
) *EvaluationHandler {
	return &EvaluationHandler{
		screeningService: screeningService,
		sessions:         sessions,
		profiles:         profiles,
		logger:           logger,
	}
}

// HandleEvaluate handles POST /sessions/:id/score. It scores the stored
// résumé against another profile without re-reading the document.
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	var req models.ScoreRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	session, ok := h.sessions.Get(sessionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	profile, err := h.profiles.resolve(req.Profile, req.CustomProfile)
	if err != nil {
		return c.Status(profileErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result := h.screeningService.Rescore(session.Extracted, profile)
	h.logger.Info("session rescored",
		zap.String("session_id", session.ID.String()),
		zap.String("profile", profile.Name),
		zap.Float64("overall_score", result.Report.OverallScore),
	)

	return c.JSON(models.ScreenResponse{
		SessionID: session.ID.String(),
		Filename:  session.Filename,
		Kind:      session.Kind,
		Result:    result,
	})
}
