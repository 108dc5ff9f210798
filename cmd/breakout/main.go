// breakout is a brick breaker for the terminal, played locally or over SSH.
//
// Usage:
//
//	breakout                   - Play (same as "breakout play")
//	breakout play              - Pick a difficulty and level, then play
//	breakout serve             - Start SSH server for remote play
//	breakout scores [level]    - Show high scores
//	breakout levels [file...]  - List configured levels or validate level files
//	breakout config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default search: ~/.breakout, ./configs, embedded)
//	--db <path>         - Set database path (default: ~/.breakout/scores.db)
//	--fps <rate>        - Set tick rate (default: 60)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick breaker. Bounce the ball off your paddle,
clear every breakable brick and keep your lives.

Available commands:
  play     - Play (default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - List or validate level files
  config   - Print the effective configuration

Examples:
  breakout
  breakout play --difficulty hard --level gaps
  breakout serve --ssh :2222
  breakout scores standard
  breakout levels ./my_level.lvl`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to a file (play logs nowhere by default)")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// assets is everything loaded from disk before a game can start.
type assets struct {
	config    config.BreakoutConfig
	source    string
	resources *resource.Manager
	levels    []breakout.LevelSpec
}

// loadAssets reads the configuration, the texture table and the level set.
func loadAssets() (assets, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return assets{}, err
	}
	res, err := resource.Load(cfg.Textures)
	if err != nil {
		return assets{}, err
	}
	levels, err := breakout.LoadLevels(cfg.Levels)
	if err != nil {
		return assets{}, err
	}
	return assets{config: cfg, source: source, resources: res, levels: levels}, nil
}

// mustLoadAssets is loadAssets for commands that cannot run without them.
func mustLoadAssets() assets {
	a, err := loadAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

// newLogger builds the process logger. fallback is used when --log-file is not set.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
