package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a starting level from a menu",
	Long: `Start with an interactive level picker.

Use arrow keys or j/k to navigate, Enter to start the selected level.
After quitting a run, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start level
  Q/Esc        - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := newSession(io.Discard)
	if err != nil {
		fail(err)
	}
	defer s.Close()

	width, height := terminalSize()

	// Menu loop
	for {
		result, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		width, height = result.Width, result.Height
		if result.Quit {
			break
		}

		if err := s.game.StartAt(result.Index); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := tui.Run(s.game, s.options(width, height)); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
