package cmd

import (
	"github.com/spf13/cobra"
	"github.com/winediag/joyharness/internal/config"
	"github.com/winediag/joyharness/internal/logger"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath string

	rootCmd = &cobra.Command{
		Use:   "joyharness",
		Short: "Joyharness - joystick diagnostic harness",
		Long: `Joyharness is a diagnostic harness for joystick devices exposed through
the legacy winmm multimedia subsystem, as seen from inside Wine.
It enumerates devices, samples live axis/button state into machine-readable
KEY=VALUE reports, and can create the virtual test fixture on the Linux side.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			if lvl := config.Get().Logging.LogLevel; lvl != "" {
				logger.SetLevel(lvl)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
}
