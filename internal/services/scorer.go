package services

import (
	"strings"

	"alfredoptarigan/ats-screener/internal/models"
)

type ScorerService interface {
	Score(foundSkills []string, yearsExperience int, profile models.JobProfile) models.MatchReport
}

type scorerService struct {
	weights models.ScoreWeights
}

// NewScorerService expects weights already checked by config.ValidateWeights.
func NewScorerService(weights models.ScoreWeights) ScorerService {
	return &scorerService{weights: weights}
}

// Score implements ScorerService.
func (s *scorerService) Score(foundSkills []string, yearsExperience int, profile models.JobProfile) models.MatchReport {
	found := upperSet(foundSkills)

	requiredMatches, missingRequired := matchSkills(profile.RequiredSkills, found)
	preferredMatches, missingPreferred := matchSkills(profile.PreferredSkills, found)

	requiredScore := percentage(requiredMatches, len(profile.RequiredSkills))
	preferredScore := percentage(preferredMatches, len(profile.PreferredSkills))

	overall := requiredScore*s.weights.Required + preferredScore*s.weights.Preferred

	return models.MatchReport{
		OverallScore:       clamp(overall, 0, 100),
		RequiredScore:      requiredScore,
		PreferredScore:     preferredScore,
		RequiredMatches:    requiredMatches,
		PreferredMatches:   preferredMatches,
		TotalRequired:      len(profile.RequiredSkills),
		TotalPreferred:     len(profile.PreferredSkills),
		MissingRequired:    missingRequired,
		MissingPreferred:   missingPreferred,
		ExperienceMet:      yearsExperience >= profile.MinExperienceYears,
		YearsExperience:    yearsExperience,
		MinExperienceYears: profile.MinExperienceYears,
	}
}

func matchSkills(wanted []string, found map[string]struct{}) (int, []string) {
	matches := 0
	missing := make([]string, 0)
	for _, skill := range wanted {
		if _, ok := found[strings.ToUpper(skill)]; ok {
			matches++
			continue
		}
		missing = append(missing, skill)
	}
	return matches, missing
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func upperSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		set[strings.ToUpper(skill)] = struct{}{}
	}
	return set
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
