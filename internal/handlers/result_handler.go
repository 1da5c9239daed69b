package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

type ResultHandler struct {
	sessions services.SessionStore
}

func NewResultHandler(sessions services.SessionStore) *ResultHandler {
	return &ResultHandler{
		sessions: sessions,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, ok := h.sessions.Get(sessionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	return c.JSON(models.SessionResponse{
		SessionID: session.ID.String(),
		Filename:  session.Filename,
		Kind:      session.Kind,
		Extracted: session.Extracted,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *ResultHandler) HandleDeleteResult(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	if _, ok := h.sessions.Get(sessionID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	h.sessions.Delete(sessionID)
	return c.SendStatus(fiber.StatusNoContent)
}

func parseSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}
