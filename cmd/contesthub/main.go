package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/contesthub/contesthub/internal/config"
	"github.com/contesthub/contesthub/internal/logger"
	"github.com/contesthub/contesthub/internal/search"
	"github.com/contesthub/contesthub/internal/solutions"
	"github.com/contesthub/contesthub/internal/source/clist"
	"github.com/contesthub/contesthub/internal/source/codeforces"
	"github.com/contesthub/contesthub/internal/tui"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath     string
		quiet          bool
		generateConfig bool
	)

	cmd := &cobra.Command{
		Use:     "contesthub",
		Short:   "Track programming contests across Codeforces, Leetcode and Codechef",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generateConfig {
				home, _ := os.UserHomeDir()
				configFile := filepath.Join(home, ".config", "contesthub", "config.toml")
				if err := config.GenerateDefaultConfig(configFile); err != nil {
					return fmt.Errorf("generating config: %w", err)
				}
				fmt.Printf("Generated default configuration at: %s\n", configFile)
				return nil
			}

			if !quiet {
				tui.ShowBanner(Version)
			}

			return run(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "skip startup banner")
	cmd.Flags().BoolVar(&generateConfig, "generate-config", false, "generate default config file")

	return cmd
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	searcher, err := search.NewBleveEngine()
	if err != nil {
		return fmt.Errorf("initializing search index: %w", err)
	}

	cfClient := codeforces.NewClient(cfg, log)
	clistClient := clist.NewClient(cfg, log)
	resolver := solutions.NewResolver(cfg, solutions.NewClient(cfg, log), log)

	app := tui.NewApp(cfg, cfClient, clistClient, resolver, searcher, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
