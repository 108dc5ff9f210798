package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a level, or a summary of every
configured level when no level is given.

Examples:
  breakout scores
  breakout scores gaps
  breakout scores gaps --clear
  breakout scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the given level")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
}

func runScores(_ *cobra.Command, args []string) {
	a := mustLoadAssets()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		if err := runScoreboard(store, a.levels); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level")
			os.Exit(1)
		}
		printSummary(store, a.levels)
		return
	}

	levelID, title := args[0], args[0]
	if i, err := resolveLevel(a.levels, args[0]); err == nil {
		levelID, title = a.levels[i].ID, a.levels[i].Name
	}

	if flagClear {
		if err := store.ClearScores(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'breakout play --level %s' to set the first high score!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-7s  %s\n", "Rank", "Player", "Score", "Cleared", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-7s  %s\n", "----", "------", "-----", "-------", "----")

	for i, entry := range scores {
		cleared := ""
		if entry.Cleared {
			cleared = "yes"
		}
		fmt.Printf("  %-4d  %-16s  %-8d  %-7s  %s\n",
			i+1, entry.Player, entry.Score, cleared, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.LevelStats(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Clears: %d  Average: %.0f\n",
			stats.HighScore, stats.Runs, stats.Clears, stats.AvgScore)
	}
}

// printSummary lists every configured level with its stats.
func printSummary(store *storage.Store, levels []breakout.LevelSpec) {
	stats, err := store.AllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-18s  %-8s  %-5s  %-6s  %s\n", "Level", "Best", "Runs", "Clears", "Last played")
	fmt.Printf("  %-18s  %-8s  %-5s  %-6s  %s\n", "-----", "----", "----", "------", "-----------")
	for _, l := range levels {
		s, ok := stats[l.ID]
		if !ok {
			fmt.Printf("  %-18s  %-8s  %-5d  %-6d  %s\n", l.Name, "-", 0, 0, "never")
			continue
		}
		fmt.Printf("  %-18s  %-8d  %-5d  %-6d  %s\n",
			l.Name, s.HighScore, s.Runs, s.Clears, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// runScoreboard opens the interactive scoreboard at the terminal's size.
func runScoreboard(store *storage.Store, levels []breakout.LevelSpec) error {
	width, height := terminalSize()
	return tui.RunScoreboard(store, levels, width, height)
}
