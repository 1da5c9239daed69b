package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/models"
)

type ProfileHandler struct {
	catalog *config.Catalog
}

func NewProfileHandler(catalog *config.Catalog) *ProfileHandler {
	return &ProfileHandler{catalog: catalog}
}

func (h *ProfileHandler) HandleListProfiles(c *fiber.Ctx) error {
	profiles := make([]models.ProfileResponse, 0, len(h.catalog.Profiles))
	for _, p := range h.catalog.Profiles {
		profiles = append(profiles, models.ProfileResponse{Slug: p.Slug(), JobProfile: p})
	}

	return c.JSON(fiber.Map{
		"profiles": profiles,
		"weights":  h.catalog.Weights,
	})
}

func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid profile key",
		})
	}

	profile, err := h.catalog.FindProfile(key)
	if err != nil {
		if errors.Is(err, config.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return err
	}

	return c.JSON(models.ProfileResponse{Slug: profile.Slug(), JobProfile: profile})
}
