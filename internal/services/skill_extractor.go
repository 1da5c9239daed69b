package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"alfredoptarigan/ats-screener/internal/models"
)

var experiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)

type SkillExtractorService interface {
	Analyze(text string) models.ExtractedProfile
}

type skillExtractorService struct {
	names []string
	upper []string
}

func NewSkillExtractorService(vocabulary models.SkillVocabulary) SkillExtractorService {
	names := vocabulary.Names()
	upper := make([]string, len(names))
	for i, name := range names {
		upper[i] = strings.ToUpper(name)
	}
	return &skillExtractorService{names: names, upper: upper}
}

// Analyze implements SkillExtractorService.
func (s *skillExtractorService) Analyze(text string) models.ExtractedProfile {
	return models.ExtractedProfile{
		SourceText:      text,
		FoundSkills:     s.findSkills(strings.ToUpper(text)),
		YearsExperience: EstimateExperience(text),
	}
}

func (s *skillExtractorService) findSkills(upperText string) []string {
	found := make([]string, 0)
	for i, needle := range s.upper {
		if containsToken(upperText, needle) {
			found = append(found, s.names[i])
		}
	}
	return found
}

// ExtractSkills returns the vocabulary entries present in text, in vocabulary order.
func ExtractSkills(text string, vocabulary models.SkillVocabulary) []string {
	return NewSkillExtractorService(vocabulary).Analyze(text).FoundSkills
}

// EstimateExperience returns the largest "<n> years of experience" figure in
// text, or 0. Mentions are not summed.
func EstimateExperience(text string) int {
	years := 0
	for _, match := range experiencePattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n > years {
			years = n
		}
	}
	return years
}

// containsToken reports whether needle occurs in haystack with no letter or
// digit directly before or after it. The needle is matched literally.
func containsToken(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	offset := 0
	for offset <= len(haystack)-len(needle) {
		i := strings.Index(haystack[offset:], needle)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(needle)
		if !alnumBefore(haystack, start) && !alnumAfter(haystack, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(haystack[start:])
		offset = start + size
	}
	return false
}

func alnumBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isAlnum(r)
}

func alnumAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isAlnum(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
