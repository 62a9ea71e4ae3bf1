package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/winediag/joyharness/internal/config"
	"github.com/winediag/joyharness/internal/report"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Config resolves defaults, the config file, and overrides, then prints
the effective values in the same KEY=VALUE shape the reports use.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		rep := report.New(os.Stdout)
		rep.Put("SAMPLING_SAMPLES", cfg.Sampling.Samples)
		rep.Put("SAMPLING_DELAY_MS", cfg.Sampling.DelayMS)
		rep.Put("SELECTOR_NAME_CONTAINS", strings.Join(cfg.Selector.NameContains, ","))
		rep.Hex16("SELECTOR_VID", cfg.Selector.VendorID)
		rep.Hex16("SELECTOR_PID", cfg.Selector.ProductID)
		rep.Put("VIRTUAL_NAME", cfg.Virtual.Name)
		rep.Hex16("VIRTUAL_VID", cfg.Virtual.VendorID)
		rep.Hex16("VIRTUAL_PID", cfg.Virtual.ProductID)
		rep.Put("LOG_LEVEL", cfg.Logging.LogLevel)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
