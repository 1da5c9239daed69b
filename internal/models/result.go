package models

import (
	"time"

	"github.com/google/uuid"
)

type ExtractedProfile struct {
	SourceText      string   `json:"source_text"`
	FoundSkills     []string `json:"found_skills"`
	YearsExperience int      `json:"years_experience"`
}

type MatchReport struct {
	OverallScore       float64  `json:"overall_score"`
	RequiredScore      float64  `json:"required_score"`
	PreferredScore     float64  `json:"preferred_score"`
	RequiredMatches    int      `json:"required_matches"`
	PreferredMatches   int      `json:"preferred_matches"`
	TotalRequired      int      `json:"total_required"`
	TotalPreferred     int      `json:"total_preferred"`
	MissingRequired    []string `json:"missing_required"`
	MissingPreferred   []string `json:"missing_preferred"`
	ExperienceMet      bool     `json:"experience_met"`
	YearsExperience    int      `json:"years_experience"`
	MinExperienceYears int      `json:"min_experience_years"`
}

type SkillType string

const (
	SkillRequired  SkillType = "Required"
	SkillPreferred SkillType = "Preferred"
)

type SkillStatus string

const (
	StatusMatched SkillStatus = "Matched"
	StatusMissing SkillStatus = "Missing"
)

type SkillGap struct {
	Skill  string      `json:"skill"`
	Type   SkillType   `json:"type"`
	Status SkillStatus `json:"status"`
}

type GapCount struct {
	Type   SkillType   `json:"type"`
	Status SkillStatus `json:"status"`
	Count  int         `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Rating string

const (
	RatingStrong   Rating = "strong"
	RatingModerate Rating = "moderate"
	RatingWeak     Rating = "weak"
)

type ScreeningResult struct {
	Profile    string           `json:"profile"`
	Extracted  ExtractedProfile `json:"extracted"`
	Report     MatchReport      `json:"report"`
	Gaps       []SkillGap       `json:"gaps"`
	GapCounts  []GapCount       `json:"gap_counts"`
	Categories []CategoryCount  `json:"categories"`
	Rating     Rating           `json:"rating"`
}

type ScreenResponse struct {
	SessionID string           `json:"session_id"`
	Filename  string           `json:"filename"`
	Kind      DocumentKind     `json:"kind"`
	Result    *ScreeningResult `json:"result"`
}

type SessionResponse struct {
	SessionID string           `json:"session_id"`
	Filename  string           `json:"filename"`
	Kind      DocumentKind     `json:"kind"`
	Extracted ExtractedProfile `json:"extracted"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

type ScoreRequest struct {
	Profile       string      `json:"profile"`
	CustomProfile *JobProfile `json:"custom_profile,omitempty"`
}

type ProfileResponse struct {
	Slug string `json:"slug"`
	JobProfile
}

type SampleResponse struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Filename string `json:"filename"`
}

// Session remembers the last successful upload of one caller.
type Session struct {
	ID        uuid.UUID
	Filename  string
	Kind      DocumentKind
	Extracted ExtractedProfile
	CreatedAt time.Time
	ExpiresAt time.Time
}
