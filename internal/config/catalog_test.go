package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-screener/internal/models"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.NoError(t, catalog.Validate())

	require.Len(t, catalog.Profiles, 4)
	assert.Equal(t, "Senior Python Developer", catalog.DefaultProfile().Name)
	assert.Equal(t, models.DefaultScoreWeights, catalog.Weights)
	assert.Len(t, catalog.Categories, 5)
	assert.Greater(t, catalog.Vocabulary.Len(), 100)

	// Every call hands out an independent copy.
	catalog.Profiles[0].RequiredSkills[0] = "COBOL"
	assert.Equal(t, "Python", DefaultCatalog().Profiles[0].RequiredSkills[0])
}

func TestLoadCatalog_EmptyPath(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), catalog)
}

func TestLoadCatalog_YAMLOverride(t *testing.T) {
	path := writeCatalog(t, "catalog.yaml", `
weights:
  required: 0.6
  preferred: 0.4
profiles:
  - name: Go Backend Engineer
    required_skills: [Go, PostgreSQL, Docker]
    preferred_skills: [Kubernetes]
    min_experience_years: 3
    description: Services in Go
`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	require.Len(t, catalog.Profiles, 1)
	profile := catalog.Profiles[0]
	assert.Equal(t, "Go Backend Engineer", profile.Name)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, profile.RequiredSkills)
	assert.Equal(t, []string{"Kubernetes"}, profile.PreferredSkills)
	assert.Equal(t, 3, profile.MinExperienceYears)
	assert.Equal(t, models.ScoreWeights{Required: 0.6, Preferred: 0.4}, catalog.Weights)

	// Sections missing from the file keep their built-in values.
	assert.Equal(t, DefaultCatalog().Vocabulary, catalog.Vocabulary)
	assert.Equal(t, DefaultCatalog().Categories, catalog.Categories)
}

func TestLoadCatalog_JSONVocabulary(t *testing.T) {
	path := writeCatalog(t, "catalog.json", `{
  "vocabulary": ["Go", "go", "Rust", " "],
  "categories": [{"name": "Systems", "skills": ["Go", "Rust"]}]
}`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, catalog.Vocabulary.Names())
	assert.Equal(t, []models.SkillCategory{{Name: "Systems", Skills: []string{"Go", "Rust"}}}, catalog.Categories)
	assert.Len(t, catalog.Profiles, 4)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "weights do not sum to one",
			file:    "weights.yaml",
			content: "weights:\n  required: 0.9\n  preferred: 0.3\n",
		},
		{
			name:    "negative weight",
			file:    "negative.yaml",
			content: "weights:\n  required: 1.2\n  preferred: -0.2\n",
		},
		{
			name:    "duplicate profile keys",
			file:    "dupes.yaml",
			content: "profiles:\n  - name: Data Scientist\n  - name: data scientist\n",
		},
		{
			name:    "negative experience",
			file:    "years.yaml",
			content: "profiles:\n  - name: Intern\n    min_experience_years: -1\n",
		},
		{
			name:    "malformed yaml",
			file:    "broken.yaml",
			content: "profiles: [\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(writeCatalog(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFindProfile(t *testing.T) {
	catalog := DefaultCatalog()

	for _, key := range []string{"Full Stack Developer", "full stack developer", "full-stack-developer", " Full Stack Developer "} {
		profile, err := catalog.FindProfile(key)
		require.NoError(t, err, key)
		assert.Equal(t, "Full Stack Developer", profile.Name)
	}

	_, err := catalog.FindProfile("Astronaut")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = catalog.FindProfile("")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestValidateWeights(t *testing.T) {
	assert.NoError(t, ValidateWeights(models.ScoreWeights{Required: 1, Preferred: 0}))
	assert.NoError(t, ValidateWeights(models.ScoreWeights{Required: 0.7, Preferred: 0.3}))
	assert.Error(t, ValidateWeights(models.ScoreWeights{Required: 0.5, Preferred: 0.4}))
	assert.Error(t, ValidateWeights(models.ScoreWeights{}))
}
