package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	flagDefaults     bool
	flagConfigPreset string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
search and an optional difficulty preset. Use --defaults to print the
built-in file as a starting point for your own.

Examples:
  breakout config
  breakout config --difficulty hard
  breakout config --defaults > ~/.breakout/breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.Flags().StringVar(&flagConfigPreset, "difficulty", "", "Apply a difficulty preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagConfigPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s, difficulty: %s\n", source, preset)
	os.Stdout.Write(out)
}
