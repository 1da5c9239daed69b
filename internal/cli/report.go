package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"alfredoptarigan/ats-screener/internal/models"
)

const (
	outputText = "text"
	outputJSON = "json"
)

func writeResult(w io.Writer, format string, result *models.ScreeningResult) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case outputText, "":
		return writeReport(w, result)
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", format, outputText, outputJSON)
	}
}

func writeReport(w io.Writer, result *models.ScreeningResult) error {
	report := result.Report
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	experience := "not met"
	if report.ExperienceMet {
		experience = "met"
	}

	fmt.Fprintf(tw, "Profile:\t%s\n", result.Profile)
	fmt.Fprintf(tw, "Overall score:\t%.2f%% (%s)\n", report.OverallScore, result.Rating)
	fmt.Fprintf(tw, "Required skills:\t%d/%d (%.2f%%)\n", report.RequiredMatches, report.TotalRequired, report.RequiredScore)
	fmt.Fprintf(tw, "Preferred skills:\t%d/%d (%.2f%%)\n", report.PreferredMatches, report.TotalPreferred, report.PreferredScore)
	fmt.Fprintf(tw, "Experience:\t%d years, minimum %d (%s)\n", report.YearsExperience, report.MinExperienceYears, experience)
	fmt.Fprintf(tw, "Skills found:\t%s\n", joinOrDash(result.Extracted.FoundSkills))
	fmt.Fprintf(tw, "Missing required:\t%s\n", joinOrDash(report.MissingRequired))
	fmt.Fprintf(tw, "Missing preferred:\t%s\n", joinOrDash(report.MissingPreferred))

	if len(result.Categories) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Category\tSkills")
		for _, c := range result.Categories {
			fmt.Fprintf(tw, "%s\t%d\n", c.Category, c.Count)
		}
	}

	return tw.Flush()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
