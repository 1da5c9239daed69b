package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

type SampleHandler struct{}

func NewSampleHandler() *SampleHandler {
	return &SampleHandler{}
}

func (h *SampleHandler) HandleListSamples(c *fiber.Ctx) error {
	samples := services.Samples()
	out := make([]models.SampleResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, models.SampleResponse{
			Title:    s.Title,
			Slug:     s.Slug(),
			Filename: s.Filename(),
		})
	}
	return c.JSON(fiber.Map{"samples": out})
}

// HandleDownloadSample serves the sample résumé as a text attachment.
func (h *SampleHandler) HandleDownloadSample(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid sample key",
		})
	}

	sample, ok := services.FindSample(key)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sample not found",
		})
	}

	c.Attachment(sample.Filename())
	return c.SendString(sample.Text)
}
