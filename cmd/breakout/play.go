package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagLevel      string
	flagDifficulty string
	flagSkipMenu   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start a game. Without --level or --difficulty a menu asks for both.

Controls:
  A/D, Left/Right  - Move paddle
  Space            - Launch ball
  W/S              - Next/previous level
  Enter            - Continue after clearing a level
  P/Esc            - Pause
  Tab              - High scores
  Ctrl+S           - Screenshot to ~/.breakout/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slow ball
  normal - Values from the config file
  hard   - 2 lives, narrow paddle, fast ball

Examples:
  breakout play
  breakout play --level gaps
  breakout play --level 3 --difficulty easy
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevel, "level", "", "Starting level: id (e.g. gaps) or 1-based number")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start on the first level without the menu")
}

func runPlay(cmd *cobra.Command, _ []string) {
	a := mustLoadAssets()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	start := 0
	if flagLevel != "" {
		if start, err = resolveLevel(a.levels, flagLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'breakout levels' to see available levels.")
			os.Exit(1)
		}
	}

	// Get terminal size early for the menu
	width, height := terminalSize()

	logger, closeLog, err := newLogger(io.Discard, "breakout")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	showMenu := !flagSkipMenu && !cmd.Flags().Changed("level") && !cmd.Flags().Changed("difficulty")
	if showMenu {
		sel, selErr := tui.RunSetup(a.levels, store, width, height)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if sel == nil {
			return
		}
		preset, start = sel.Preset, sel.Level
	}

	cfg := a.config
	config.ApplyPreset(&cfg, preset)
	logger.Info("starting game", "config", a.source, "difficulty", preset, "level", a.levels[start].ID)

	err = tui.Run(tui.Options{
		Config:     cfg,
		Resources:  a.resources,
		Levels:     a.levels,
		StartLevel: start,
		Store:      store,
		Player:     currentUser(),
		FPS:        flagFPS,
		Width:      width,
		Height:     height,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// resolveLevel finds a level by id or by its 1-based position.
func resolveLevel(levels []breakout.LevelSpec, s string) (int, error) {
	for i, l := range levels {
		if l.ID == s {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(levels) {
		return n - 1, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// terminalSize reports the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// currentUser names the local player for the scoreboard.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "player"
}
