package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/models"
)

func newTestScreening(t *testing.T) (ScreeningService, *config.Catalog) {
	t.Helper()
	catalog := config.DefaultCatalog()
	return NewScreeningService(NewTextExtractorService(), catalog, nil), catalog
}

func TestScreen_PythonSampleAgainstSeniorPython(t *testing.T) {
	screening, catalog := newTestScreening(t)
	profile, err := catalog.FindProfile("Senior Python Developer")
	require.NoError(t, err)

	sample, ok := FindSample("Python Developer")
	require.True(t, ok)

	result, err := screening.Screen([]byte(sample.Text), models.KindText, profile)
	require.NoError(t, err)

	report := result.Report
	assert.Equal(t, 7, report.RequiredMatches)
	assert.Equal(t, 8, report.TotalRequired)
	assert.Equal(t, []string{"REST API"}, report.MissingRequired)
	assert.Equal(t, 5, report.PreferredMatches)
	assert.Equal(t, []string{"Celery"}, report.MissingPreferred)
	assert.InDelta(t, 87.5, report.RequiredScore, 1e-9)
	assert.InDelta(t, 86.25, report.OverallScore, 1e-9)
	assert.Equal(t, 6, report.YearsExperience)
	assert.True(t, report.ExperienceMet)

	assert.Equal(t, "Senior Python Developer", result.Profile)
	assert.Equal(t, models.RatingStrong, result.Rating)
	assert.Len(t, result.Gaps, 14)
	assert.Equal(t, []models.GapCount{
		{Type: models.SkillRequired, Status: models.StatusMatched, Count: 7},
		{Type: models.SkillRequired, Status: models.StatusMissing, Count: 1},
		{Type: models.SkillPreferred, Status: models.StatusMatched, Count: 5},
		{Type: models.SkillPreferred, Status: models.StatusMissing, Count: 1},
	}, result.GapCounts)
	assert.NotEmpty(t, result.Categories)
}

func TestScreen_Rescore(t *testing.T) {
	screening, catalog := newTestScreening(t)
	sample, ok := FindSample("data-scientist")
	require.True(t, ok)

	first, err := screening.Screen([]byte(sample.Text), models.KindText, catalog.DefaultProfile())
	require.NoError(t, err)

	target, err := catalog.FindProfile("data-scientist")
	require.NoError(t, err)

	rescored := screening.Rescore(first.Extracted, target)
	direct, err := screening.Screen([]byte(sample.Text), models.KindText, target)
	require.NoError(t, err)

	assert.Equal(t, direct.Report, rescored.Report)
	assert.Equal(t, first.Extracted, rescored.Extracted)
	assert.Equal(t, 4, rescored.Report.YearsExperience)
}

func TestScreen_NoText(t *testing.T) {
	screening, catalog := newTestScreening(t)

	_, err := screening.Screen([]byte("   \n "), models.KindText, catalog.DefaultProfile())
	assert.ErrorIs(t, err, ErrNoText)
}

func TestScreen_ParseFailureIsNoText(t *testing.T) {
	screening, catalog := newTestScreening(t)

	_, err := screening.Screen([]byte("not a pdf"), models.KindPDF, catalog.DefaultProfile())
	assert.ErrorIs(t, err, ErrNoText)

	var parseErr *DocumentParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestScreen_UnsupportedPassesThrough(t *testing.T) {
	screening, catalog := newTestScreening(t)

	_, err := screening.Screen([]byte("x"), models.DocumentKind("odt"), catalog.DefaultProfile())

	var unsupported *UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
	assert.NotErrorIs(t, err, ErrNoText)
}

func TestScreen_LogsParseFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	catalog := config.DefaultCatalog()
	screening := NewScreeningService(NewTextExtractorService(), catalog, zap.New(core))

	_, err := screening.Screen([]byte{0xff, 0xfe}, models.KindText, catalog.DefaultProfile())
	require.ErrorIs(t, err, ErrNoText)

	entries := logs.FilterMessage("document could not be parsed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "text", fields["kind"])
	assert.EqualValues(t, 2, fields["bytes"])
}
