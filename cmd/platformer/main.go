// platformer is a side-scrolling platformer that runs in the terminal.
//
// Usage:
//
//	platformer play              - Play from the title screen
//	platformer menu              - Pick a starting level interactively
//	platformer levels            - List the levels and what is in them
//	platformer simulate          - Run the game headless and print a summary
//	platformer config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Use a custom platformer.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file while the TUI owns the terminal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"

	// Import levels to register them
	_ "github.com/vovakirdan/tui-platformer/internal/levels"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Jump, shoot and beat the boss in your terminal",
	Long: `TUI Platformer is a side-scrolling platformer drawn with terminal
characters. Cross four levels of patrollers and turrets, then beat the
three-phase boss to win.

Available commands:
  play      - Start at the title screen or a given level
  menu      - Interactive level picker
  levels    - Show all levels
  simulate  - Run the game without a terminal and print the outcome
  config    - Print the effective configuration

Examples:
  platformer play
  platformer play --level boss --difficulty hard
  platformer menu
  platformer simulate --ticks 600 --hold right --jump-every 40
  platformer config --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Interactive commands pass io.Discard
// as the fallback so nothing is printed under the alt screen unless
// --log-file is set. The returned closer is always safe to call.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	logger.SetLevel(level)
	return logger, closer, nil
}

// loadConfig resolves the config file and applies --difficulty on top.
// The returned path is empty when the embedded default was used.
func loadConfig() (config.Config, string, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, "", "", err
	}
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, path, preset, nil
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a tty.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// fail prints the error the way every command reports fatal problems.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
