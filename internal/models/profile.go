package models

import "strings"

// SkillVocabulary is an ordered, case-insensitive set of canonical skill names.
// The zero value is an empty vocabulary.
type SkillVocabulary struct {
	names []string
}

// NewSkillVocabulary keeps the first spelling of each name and drops blanks.
func NewSkillVocabulary(names ...string) SkillVocabulary {
	seen := make(map[string]struct{}, len(names))
	kept := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToUpper(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, name)
	}
	return SkillVocabulary{names: kept}
}

// Names returns a copy of the vocabulary in declared order.
func (v SkillVocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

func (v SkillVocabulary) Len() int {
	return len(v.names)
}

type JobProfile struct {
	Name               string   `json:"name" mapstructure:"name" validate:"required"`
	RequiredSkills     []string `json:"required_skills" mapstructure:"required_skills" validate:"dive,required"`
	PreferredSkills    []string `json:"preferred_skills" mapstructure:"preferred_skills" validate:"dive,required"`
	MinExperienceYears int      `json:"min_experience_years" mapstructure:"min_experience_years" validate:"gte=0"`
	Description        string   `json:"description" mapstructure:"description"`
}

// Slug is the URL-friendly key of the profile, e.g. "senior-python-developer".
func (p JobProfile) Slug() string {
	return Slugify(p.Name)
}

type SkillCategory struct {
	Name   string   `json:"name" mapstructure:"name"`
	Skills []string `json:"skills" mapstructure:"skills"`
}

// ScoreWeights blends the required and preferred match ratios.
type ScoreWeights struct {
	Required  float64 `json:"required" mapstructure:"required"`
	Preferred float64 `json:"preferred" mapstructure:"preferred"`
}

var DefaultScoreWeights = ScoreWeights{Required: 0.7, Preferred: 0.3}

// Slugify lowercases s and collapses every run of non-alphanumerics into "-".
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
