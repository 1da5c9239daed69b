package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"alfredoptarigan/ats-screener/internal/services"
)

func newSampleCmd() *cobra.Command {
	sampleCmd := &cobra.Command{
		Use:   "sample [key]",
		Short: "Print a sample résumé, or list them without a key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, s := range services.Samples() {
					fmt.Fprintf(out, "%s\t%s\n", s.Slug(), s.Title)
				}
				return nil
			}

			sample, ok := services.FindSample(args[0])
			if !ok {
				return fmt.Errorf("sample %q not found", args[0])
			}

			dir, _ := cmd.Flags().GetString("write")
			if dir == "" {
				_, err := io.WriteString(out, sample.Text)
				return err
			}

			path := filepath.Join(dir, sample.Filename())
			if err := os.WriteFile(path, []byte(sample.Text), 0o644); err != nil {
				return fmt.Errorf("failed to write sample: %w", err)
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}

	sampleCmd.Flags().StringP("write", "w", "", "write the sample into this directory instead of printing it")
	return sampleCmd
}
