package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

func main() {
	log.Println("🚀 Exporting sample résumés...")

	outDir := "./sample_resumes"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v", err)
	}

	cfg := config.Load()
	catalog, err := config.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}

	extractor := services.NewTextExtractorService()
	screening := services.NewScreeningService(extractor, catalog, nil)

	successCount := 0
	failCount := 0

	for _, sample := range services.Samples() {
		path := filepath.Join(outDir, sample.Filename())
		log.Printf("\n📄 Exporting: %s", sample.Title)
		log.Printf("   Path: %s", path)

		if err := os.WriteFile(path, []byte(sample.Text), 0o644); err != nil {
			log.Printf("   ❌ Failed to write file: %v", err)
			failCount++
			continue
		}

		// Read the file back the way an upload would be read.
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read back: %v", err)
			failCount++
			continue
		}

		result, err := screening.Screen(data, models.KindText, profileFor(catalog, sample.Title))
		if err != nil {
			log.Printf("   ❌ Failed to screen: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ %d skills, %d years, %.2f%% against %s",
			len(result.Extracted.FoundSkills),
			result.Extracted.YearsExperience,
			result.Report.OverallScore,
			result.Profile,
		)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Export Summary:")
	log.Printf("   ✅ Successful: %d samples", successCount)
	log.Printf("   ❌ Failed: %d samples", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some samples failed to export. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All samples exported successfully!")
}

// profileFor pairs a sample with the catalog profile of the same role, e.g.
// "Python Developer" with "Senior Python Developer".
func profileFor(catalog *config.Catalog, title string) models.JobProfile {
	for _, p := range catalog.Profiles {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(title)) {
			return p
		}
	}
	return catalog.DefaultProfile()
}
