package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alfredoptarigan/ats-screener/internal/config"
)

func newProfilesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the job profiles of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := config.LoadCatalog(v.GetString("catalog"))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tMIN YEARS\tREQUIRED")
			for _, p := range catalog.Profiles {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.Slug(), p.Name, p.MinExperienceYears, strings.Join(p.RequiredSkills, ", "))
			}
			return tw.Flush()
		},
	}
}
