package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cactusflap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration.

Save it as ~/.cactusflap/configs/flappy.yaml or ./configs/flappy.yaml and
edit the keys you want to change, or pass it with --config.

Examples:
  cactusflap config > ~/.cactusflap/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fail("%v", err)
		}
	},
}
