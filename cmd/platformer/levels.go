package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/entity"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows every level in play order with its size and what it contains.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen, maxTitleLen := 4, 5 // "Name", "Title" headers
	for _, info := range levels {
		maxNameLen = max(maxNameLen, len(info.Kind.String()))
		maxTitleLen = max(maxTitleLen, len(info.Title))
	}

	// Print header
	fmt.Printf("  #  %-*s  %-*s  %-9s  %-9s  %-9s  %s\n",
		maxNameLen, "Name", maxTitleLen, "Title", "Size", "Platforms", "Enemies", "Boss")
	fmt.Printf("  -  %-*s  %-*s  %-9s  %-9s  %-9s  %s\n",
		maxNameLen, "----", maxTitleLen, "-----", "----", "---------", "-------", "----")

	// Print levels
	for i, info := range levels {
		l, err := registry.Create(info.Kind)
		if err != nil {
			fmt.Printf("  %d  %-*s  invalid: %v\n", i+1, maxNameLen, info.Kind, err)
			continue
		}

		boss := "-"
		if l.Boss != nil {
			boss = fmt.Sprintf("%d HP", l.Boss.HP)
		}
		fmt.Printf("  %d  %-*s  %-*s  %-9s  %-9s  %-9s  %s\n",
			i+1,
			maxNameLen, info.Kind,
			maxTitleLen, info.Title,
			fmt.Sprintf("%.0fx%.0f", l.Width, l.Height),
			platformSummary(l),
			enemySummary(l),
			boss,
		)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <name>' to start at a level.")
}

// platformSummary reports total platforms and, in parentheses, moving ones.
func platformSummary(l *entity.Level) string {
	moving := 0
	for _, p := range l.Platforms {
		if p.Kinematic {
			moving++
		}
	}
	if moving == 0 {
		return fmt.Sprintf("%d", len(l.Platforms))
	}
	return fmt.Sprintf("%d (%d mv)", len(l.Platforms), moving)
}

// enemySummary reports patrollers and shooters as "P/S".
func enemySummary(l *entity.Level) string {
	var patrollers, shooters int
	for _, e := range l.Enemies {
		switch e.Kind {
		case entity.KindPatroller:
			patrollers++
		case entity.KindShooter:
			shooters++
		}
	}
	return fmt.Sprintf("%dP/%dS", patrollers, shooters)
}
