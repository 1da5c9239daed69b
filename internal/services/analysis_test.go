package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/ats-screener/internal/models"
)

func TestGapAnalysis(t *testing.T) {
	profile := models.JobProfile{
		RequiredSkills:  []string{"Python", "Go"},
		PreferredSkills: []string{"Docker"},
	}

	gaps := GapAnalysis([]string{"python", "Docker"}, profile)
	assert.Equal(t, []models.SkillGap{
		{Skill: "Python", Type: models.SkillRequired, Status: models.StatusMatched},
		{Skill: "Go", Type: models.SkillRequired, Status: models.StatusMissing},
		{Skill: "Docker", Type: models.SkillPreferred, Status: models.StatusMatched},
	}, gaps)
}

func TestCountGaps(t *testing.T) {
	gaps := []models.SkillGap{
		{Skill: "D", Type: models.SkillPreferred, Status: models.StatusMatched},
		{Skill: "A", Type: models.SkillRequired, Status: models.StatusMissing},
		{Skill: "B", Type: models.SkillRequired, Status: models.StatusMissing},
		{Skill: "C", Type: models.SkillRequired, Status: models.StatusMatched},
	}

	assert.Equal(t, []models.GapCount{
		{Type: models.SkillRequired, Status: models.StatusMatched, Count: 1},
		{Type: models.SkillRequired, Status: models.StatusMissing, Count: 2},
		{Type: models.SkillPreferred, Status: models.StatusMatched, Count: 1},
	}, CountGaps(gaps))

	assert.Empty(t, CountGaps(nil))
}

func TestCategoryBreakdown(t *testing.T) {
	categories := []models.SkillCategory{
		{Name: "Languages", Skills: []string{"Python", "Go"}},
		{Name: "Databases", Skills: []string{"PostgreSQL"}},
		{Name: "Cloud", Skills: []string{"AWS", "Docker"}},
	}

	counts := CategoryBreakdown([]string{"Python", "Go", "Docker"}, categories)
	assert.Equal(t, []models.CategoryCount{
		{Category: "Languages", Count: 2},
		{Category: "Cloud", Count: 1},
	}, counts)
}

func TestRateScore(t *testing.T) {
	tests := []struct {
		score float64
		want  models.Rating
	}{
		{score: 100, want: models.RatingStrong},
		{score: 70, want: models.RatingStrong},
		{score: 69.99, want: models.RatingModerate},
		{score: 50, want: models.RatingModerate},
		{score: 49.9, want: models.RatingWeak},
		{score: 0, want: models.RatingWeak},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RateScore(tt.score), "score %v", tt.score)
	}
}
