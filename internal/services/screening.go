package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/models"
)

type ScreeningService interface {
	Screen(data []byte, kind models.DocumentKind, profile models.JobProfile) (*models.ScreeningResult, error)
	Rescore(extracted models.ExtractedProfile, profile models.JobProfile) *models.ScreeningResult
}

type screeningService struct {
	extractor  TextExtractorService
	skills     SkillExtractorService
	scorer     ScorerService
	categories []models.SkillCategory
	logger     *zap.Logger
}

func NewScreeningService(
	extractor TextExtractorService,
	catalog *config.Catalog,
	logger *zap.Logger,
) ScreeningService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &screeningService{
		extractor:  extractor,
		skills:     NewSkillExtractorService(catalog.Vocabulary),
		scorer:     NewScorerService(catalog.Weights),
		categories: catalog.Categories,
		logger:     logger,
	}
}

// Screen implements ScreeningService. A document that cannot be parsed, or
// parses to blank text, yields an error wrapping ErrNoText.
func (s *screeningService) Screen(data []byte, kind models.DocumentKind, profile models.JobProfile) (*models.ScreeningResult, error) {
	text, err := s.extractor.ExtractText(data, kind)
	if err != nil {
		var unsupported *UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return nil, err
		}

		s.logger.Warn("document could not be parsed",
			zap.String("kind", string(kind)),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrNoText, err)
	}

	if strings.TrimSpace(text) == "" {
		s.logger.Warn("document contains no text", zap.String("kind", string(kind)))
		return nil, ErrNoText
	}

	extracted := s.skills.Analyze(text)
	s.logger.Debug("document analyzed",
		zap.String("kind", string(kind)),
		zap.Int("skills", len(extracted.FoundSkills)),
		zap.Int("years_experience", extracted.YearsExperience),
		zap.String("preview", logger.Preview(text, 120)),
	)

	return s.Rescore(extracted, profile), nil
}

// Rescore implements ScreeningService.
func (s *screeningService) Rescore(extracted models.ExtractedProfile, profile models.JobProfile) *models.ScreeningResult {
	report := s.scorer.Score(extracted.FoundSkills, extracted.YearsExperience, profile)
	gaps := GapAnalysis(extracted.FoundSkills, profile)

	return &models.ScreeningResult{
		Profile:    profile.Name,
		Extracted:  extracted,
		Report:     report,
		Gaps:       gaps,
		GapCounts:  CountGaps(gaps),
		Categories: CategoryBreakdown(extracted.FoundSkills, s.categories),
		Rating:     RateScore(report.OverallScore),
	}
}
