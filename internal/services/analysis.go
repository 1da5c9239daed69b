package services

import (
	"strings"

	"alfredoptarigan/ats-screener/internal/models"
)

// GapAnalysis lists every profile skill, required first, with its match status.
func GapAnalysis(foundSkills []string, profile models.JobProfile) []models.SkillGap {
	found := upperSet(foundSkills)
	gaps := make([]models.SkillGap, 0, len(profile.RequiredSkills)+len(profile.PreferredSkills))

	add := func(skills []string, skillType models.SkillType) {
		for _, skill := range skills {
			status := models.StatusMissing
			if _, ok := found[strings.ToUpper(skill)]; ok {
				status = models.StatusMatched
			}
			gaps = append(gaps, models.SkillGap{Skill: skill, Type: skillType, Status: status})
		}
	}
	add(profile.RequiredSkills, models.SkillRequired)
	add(profile.PreferredSkills, models.SkillPreferred)

	return gaps
}

// CountGaps groups gap rows by type and status, dropping empty groups.
func CountGaps(gaps []models.SkillGap) []models.GapCount {
	order := []models.GapCount{
		{Type: models.SkillRequired, Status: models.StatusMatched},
		{Type: models.SkillRequired, Status: models.StatusMissing},
		{Type: models.SkillPreferred, Status: models.StatusMatched},
		{Type: models.SkillPreferred, Status: models.StatusMissing},
	}

	for _, gap := range gaps {
		for i := range order {
			if order[i].Type == gap.Type && order[i].Status == gap.Status {
				order[i].Count++
			}
		}
	}

	counts := make([]models.GapCount, 0, len(order))
	for _, c := range order {
		if c.Count > 0 {
			counts = append(counts, c)
		}
	}
	return counts
}

// CategoryBreakdown counts found skills per category. Membership is an exact
// match on the canonical name.
func CategoryBreakdown(foundSkills []string, categories []models.SkillCategory) []models.CategoryCount {
	found := make(map[string]struct{}, len(foundSkills))
	for _, skill := range foundSkills {
		found[skill] = struct{}{}
	}

	counts := make([]models.CategoryCount, 0, len(categories))
	for _, category := range categories {
		n := 0
		for _, skill := range category.Skills {
			if _, ok := found[skill]; ok {
				n++
			}
		}
		if n > 0 {
			counts = append(counts, models.CategoryCount{Category: category.Name, Count: n})
		}
	}
	return counts
}

func RateScore(overall float64) models.Rating {
	switch {
	case overall >= 70:
		return models.RatingStrong
	case overall >= 50:
		return models.RatingModerate
	default:
		return models.RatingWeak
	}
}
