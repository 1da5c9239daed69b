package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/models"
)

var errInvalidProfile = errors.New("invalid custom profile")

// profileResolver picks the job profile a request is scored against: a
// caller-supplied custom profile wins, then a catalog key, then the catalog
// default.
type profileResolver struct {
	catalog  *config.Catalog
	validate *validator.Validate
}

func newProfileResolver(catalog *config.Catalog, validate *validator.Validate) *profileResolver {
	return &profileResolver{catalog: catalog, validate: validate}
}

func (r *profileResolver) resolve(key string, custom *models.JobProfile) (models.JobProfile, error) {
	if custom != nil {
		if err := r.validate.Struct(custom); err != nil {
			return models.JobProfile{}, fmt.Errorf("%w: %v", errInvalidProfile, err)
		}
		return *custom, nil
	}

	if strings.TrimSpace(key) == "" {
		return r.catalog.DefaultProfile(), nil
	}
	return r.catalog.FindProfile(key)
}

// resolveRaw accepts the custom profile as a JSON document, as sent in a
// multipart form field.
func (r *profileResolver) resolveRaw(key, rawCustom string) (models.JobProfile, error) {
	if strings.TrimSpace(rawCustom) == "" {
		return r.resolve(key, nil)
	}

	var custom models.JobProfile
	if err := json.Unmarshal([]byte(rawCustom), &custom); err != nil {
		return models.JobProfile{}, fmt.Errorf("%w: %v", errInvalidProfile, err)
	}
	return r.resolve(key, &custom)
}

func profileErrorStatus(err error) int {
	switch {
	case errors.Is(err, config.ErrProfileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errInvalidProfile):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
