package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
	"alfredoptarigan/ats-screener/internal/source"
)

const promptDone = "Done"

// profileSelector asks the user for the next profile. It returns false once
// the user is done.
type profileSelector func(catalog *config.Catalog) (models.JobProfile, bool, error)

func newRunCmd(v *viper.Viper) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <file|s3://bucket/key>",
		Short: "Screen a résumé against a job profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var selector profileSelector
			if v.GetBool("interactive") {
				selector = promptProfile
			}
			return run(cmd, v, args[0], selector)
		},
	}

	runCmd.Flags().StringP("profile", "p", "", "job profile slug or name (default is the first catalog profile)")
	runCmd.Flags().StringP("kind", "k", "", "document kind: pdf, docx or text (default is detected)")
	runCmd.Flags().StringP("output", "o", outputText, "output format: text or json")
	runCmd.Flags().BoolP("interactive", "i", false, "pick job profiles from a menu and rescore until done")

	_ = v.BindPFlag("profile", runCmd.Flags().Lookup("profile"))
	_ = v.BindPFlag("kind", runCmd.Flags().Lookup("kind"))
	_ = v.BindPFlag("output", runCmd.Flags().Lookup("output"))
	_ = v.BindPFlag("interactive", runCmd.Flags().Lookup("interactive"))

	return runCmd
}

func run(cmd *cobra.Command, v *viper.Viper, location string, selector profileSelector) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := getConfig(v)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	logger, err := logger.New(cfg.JSON, cfg.Debug, "stderr")
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync() //nolint:errcheck

	catalog, err := config.LoadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	loader, err := newLoader(ctx, location, cfg.S3)
	if err != nil {
		return err
	}

	doc, err := loader.Load(ctx, location)
	if err != nil {
		return err
	}

	kind, err := resolveKind(v.GetString("kind"), doc)
	if err != nil {
		return err
	}

	var profile models.JobProfile
	if selector != nil {
		selected, ok, err := selector(catalog)
		if err != nil || !ok {
			return err
		}
		profile = selected
	} else if key := v.GetString("profile"); key != "" {
		if profile, err = catalog.FindProfile(key); err != nil {
			return err
		}
	} else {
		profile = catalog.DefaultProfile()
	}

	logger.Info("screening résumé",
		zap.String("location", doc.Location),
		zap.String("kind", string(kind)),
		zap.String("profile", profile.Name),
	)

	screening := services.NewScreeningService(services.NewTextExtractorService(), catalog, logger)
	result, err := screening.Screen(doc.Data, kind, profile)
	if err != nil {
		return err
	}

	format := v.GetString("output")
	out := cmd.OutOrStdout()
	if err := writeResult(out, format, result); err != nil {
		return err
	}

	if selector == nil {
		return nil
	}

	// The document is read once; every further profile reuses the extraction.
	for {
		next, ok, err := selector(catalog)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fmt.Fprintln(out)
		if err := writeResult(out, format, screening.Rescore(result.Extracted, next)); err != nil {
			return err
		}
	}
}

func newLoader(ctx context.Context, location string, cfg S3Config) (*source.Loader, error) {
	if _, _, ok := source.ParseS3URI(location); !ok {
		return source.NewLoader(nil), nil
	}

	client, err := source.NewS3Client(ctx, source.S3Config{
		Endpoint:  cfg.Endpoint,
		Region:    cfg.Region,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
	})
	if err != nil {
		return nil, err
	}
	return source.NewLoader(client), nil
}

func resolveKind(flag string, doc *source.Document) (models.DocumentKind, error) {
	if flag == "" {
		return services.DetectKind(doc.Filename, doc.ContentType, doc.Data)
	}
	kind, ok := models.ParseDocumentKind(flag)
	if !ok {
		return "", &services.UnsupportedFormatError{Format: flag}
	}
	return kind, nil
}

func promptProfile(catalog *config.Catalog) (models.JobProfile, bool, error) {
	items := make([]string, 0, len(catalog.Profiles)+1)
	for _, p := range catalog.Profiles {
		items = append(items, p.Name)
	}

	prompt := promptui.Select{
		Label: "Choose a job profile and press ENTER",
		Items: append(items, promptDone),
	}

	index, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return models.JobProfile{}, false, nil
		}
		return models.JobProfile{}, false, err
	}
	if index == len(catalog.Profiles) {
		return models.JobProfile{}, false, nil
	}
	return catalog.Profiles[index], true, nil
}
