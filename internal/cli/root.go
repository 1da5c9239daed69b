// Package cli wires the screen command line tool.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "screen"

// Actual version can be specified in build command.
var version = "unknown"

type Config struct {
	Catalog string   `mapstructure:"catalog"`
	Debug   bool     `mapstructure:"debug"`
	JSON    bool     `mapstructure:"json"`
	S3      S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access-key"`
	SecretKey string `mapstructure:"secret-key"`
}

// NewRootCmd builds the command tree. Every tree owns its viper instance, so
// flags and environment bindings do not leak between invocations.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:          app,
		Short:        "screen scores résumés against job profiles by skill and experience match",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("catalog", "", "a catalog file (yaml/json) overriding the built-in skills and profiles")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	_ = v.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	_ = v.BindEnv("catalog", "CATALOG_PATH")
	_ = v.BindEnv("s3.endpoint", "S3_ENDPOINT")
	_ = v.BindEnv("s3.region", "S3_REGION")
	_ = v.BindEnv("s3.access-key", "S3_ACCESS_KEY")
	_ = v.BindEnv("s3.secret-key", "S3_SECRET_KEY")

	rootCmd.AddCommand(
		newRunCmd(v),
		newProfilesCmd(v),
		newSampleCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
