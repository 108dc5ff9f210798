package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [file...]",
	Short: "List configured levels or validate level files",
	Long: `Without arguments, lists the configured levels in play order.
With file arguments, parses each file and reports its bricks; the first
invalid file ends the command with a non-zero exit status.

Level files hold one row of whitespace-separated integers per line:
  0 - empty, 1 - solid (unbreakable), 2+ - breakable brick with a color

Examples:
  breakout levels
  breakout levels ./levels/*.lvl`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	if len(args) > 0 {
		for _, path := range args {
			spec, err := breakout.LoadLevelFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				os.Exit(1)
			}
			fmt.Printf("%s: ok (%s)\n", path, describeLevel(spec))
		}
		return
	}

	a := mustLoadAssets()
	source := "built-in: " + strings.Join(breakout.BuiltinLevelFiles(), ", ")
	if a.config.Levels.Dir != "" {
		source = a.config.Levels.Dir
	}
	fmt.Printf("Levels (%s):\n", source)
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range a.levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxIDLen, "ID", "Name")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxIDLen, "--", "----")
	for i, l := range a.levels {
		fmt.Printf("  %-3d  %-*s  %s (%s)\n", i+1, maxIDLen, l.ID, l.Name, describeLevel(l))
	}

	fmt.Println()
	fmt.Println("Run 'breakout play --level <id>' to play a level.")
}

// describeLevel summarizes a level's grid.
func describeLevel(spec breakout.LevelSpec) string {
	breakable, solid := spec.Bricks()
	cols := 0
	if len(spec.Grid) > 0 {
		cols = len(spec.Grid[0])
	}
	return fmt.Sprintf("%dx%d, %d bricks, %d solid", cols, len(spec.Grid), breakable, solid)
}
