package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML, after the
config file search and the difficulty preset are applied. Redirect it to
~/.platformer/configs/platformer.yaml to start customizing.

Examples:
  platformer config
  platformer config --difficulty hard
  platformer config > ~/.platformer/configs/platformer.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, _, _, err := loadConfig()
	if err != nil {
		fail(err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail(err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fail(err)
	}
}
