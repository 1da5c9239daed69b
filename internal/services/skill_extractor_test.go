package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/ats-screener/internal/models"
)

func testVocabulary() models.SkillVocabulary {
	return models.NewSkillVocabulary(
		"Python", "Java", "JavaScript", "C++", "C#", "Go", "R",
		"Docker", "Kubernetes", "REST API", "Node.js", "CI/CD", "Machine Learning",
	)
}

func TestExtractSkills(t *testing.T) {
	vocab := testVocabulary()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "vocabulary order not text order",
			text: "Docker, Kubernetes and Python",
			want: []string{"Python", "Docker", "Kubernetes"},
		},
		{
			name: "case insensitive",
			text: "python DOCKER kUbErNeTeS",
			want: []string{"Python", "Docker", "Kubernetes"},
		},
		{
			name: "javascript does not imply java",
			text: "Frontend work in JavaScript only",
			want: []string{"JavaScript"},
		},
		{
			name: "java followed by version",
			text: "Backend services in Java 17",
			want: []string{"Java"},
		},
		{
			name: "literal special characters",
			text: "Proficient in C++ and C#",
			want: []string{"C++", "C#"},
		},
		{
			name: "punctuation around names",
			text: "(Node.js), REST API; CI/CD.",
			want: []string{"REST API", "Node.js", "CI/CD"},
		},
		{
			name: "single letter needs boundaries",
			text: "Rust and Ruby are not R, but R is",
			want: []string{"R"},
		},
		{
			name: "embedded in larger word",
			text: "Golang, Dockerfile, Pythonic",
			want: []string{},
		},
		{
			name: "multi word phrase",
			text: "applied machine learning at scale",
			want: []string{"Machine Learning"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSkills(tt.text, vocab))
		})
	}
}

func TestExtractSkills_Idempotent(t *testing.T) {
	vocab := testVocabulary()
	text := "Python, C++, Docker and REST API for 3 years of experience"

	first := ExtractSkills(text, vocab)
	second := ExtractSkills(text, vocab)
	assert.Equal(t, first, second)
}

func TestExtractSkills_OrderInvariant(t *testing.T) {
	vocab := testVocabulary()

	a := ExtractSkills("Python\nDocker\nC#", vocab)
	b := ExtractSkills("C#\nDocker\nPython", vocab)
	assert.Equal(t, a, b)
}

func TestExtractSkills_EmptyVocabulary(t *testing.T) {
	assert.Empty(t, ExtractSkills("Python", models.NewSkillVocabulary()))
	assert.NotNil(t, ExtractSkills("Python", models.NewSkillVocabulary()))
}

func TestContainsToken_PlusSuffixPolicy(t *testing.T) {
	// Flanking runes are only rejected when they are letters or digits.
	assert.True(t, containsToken("C+++", "C++"))
	assert.True(t, containsToken("C#.", "C#"))
	assert.False(t, containsToken("ABC++", "C++"))
}

func TestEstimateExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "maximum not sum", text: "3 years of experience ... 5 years experience", want: 5},
		{name: "plus sign", text: "6+ years of experience", want: 6},
		{name: "abbreviations", text: "10 yrs exp in backend", want: 10},
		{name: "singular", text: "1 year experience", want: 1},
		{name: "case insensitive", text: "8 YEARS OF EXPERIENCE", want: 8},
		{name: "no experience phrase", text: "worked here for 7 years", want: 0},
		{name: "empty", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateExperience(tt.text))
		})
	}
}

func TestAnalyze(t *testing.T) {
	extractor := NewSkillExtractorService(testVocabulary())
	text := "Go and Docker, 4 years of experience"

	profile := extractor.Analyze(text)
	assert.Equal(t, text, profile.SourceText)
	assert.Equal(t, []string{"Go", "Docker"}, profile.FoundSkills)
	assert.Equal(t, 4, profile.YearsExperience)
}
