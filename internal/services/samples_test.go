package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	samples := Samples()
	require.Len(t, samples, 4)

	titles := make([]string, len(samples))
	for i, s := range samples {
		titles[i] = s.Title
		assert.NotEmpty(t, s.Text)
	}
	assert.Equal(t, []string{"Python Developer", "Data Scientist", "Full Stack Developer", "DevOps Engineer"}, titles)

	samples[0].Title = "changed"
	assert.Equal(t, "Python Developer", Samples()[0].Title)
}

func TestSampleFilename(t *testing.T) {
	assert.Equal(t, "Full_Stack_Developer_Resume.txt", SampleFilename("Full Stack Developer"))

	sample, ok := FindSample("devops-engineer")
	require.True(t, ok)
	assert.Equal(t, "DevOps_Engineer_Resume.txt", sample.Filename())
}

func TestFindSample(t *testing.T) {
	for _, key := range []string{"Data Scientist", "data scientist", "data-scientist", "  Data Scientist "} {
		sample, ok := FindSample(key)
		require.True(t, ok, key)
		assert.Equal(t, "Data Scientist", sample.Title)
	}

	_, ok := FindSample("astronaut")
	assert.False(t, ok)
	_, ok = FindSample("")
	assert.False(t, ok)
}

func TestSamples_ExperienceFigures(t *testing.T) {
	want := map[string]int{
		"Python Developer":     6,
		"Data Scientist":       4,
		"Full Stack Developer": 5,
		"DevOps Engineer":      5,
	}
	for _, s := range Samples() {
		assert.Equal(t, want[s.Title], EstimateExperience(s.Text), s.Title)
	}
}
