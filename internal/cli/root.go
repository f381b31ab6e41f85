package cli

import (
	"fmt"
	"os"

	"github.com/pipekit-labs/pipekit/internal/branding"
	"github.com/pipekit-labs/pipekit/internal/config"
	"github.com/pipekit-labs/pipekit/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds new pipeline components (assets, checks, schedules,
sensors, jobs) from the scaffolder registered for each component type.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		_ = viper.BindPFlag(config.KeyLogLevel, cmd.Root().PersistentFlags().Lookup("log-level"))
		logging.Init(config.LogLevel(), config.LogFormat(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from config)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
