package main

import (
	"fmt"

	"github.com/AlexZinkM/mockmint/internal/config"

	"github.com/spf13/cobra"
)

// app carries the loaded configuration to the subcommands
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		dir      string
		assets   []string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "mockmint",
		Short:         "Mock mint authorities in Solana account fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("dir") {
				cfg.FixtureDir = dir
			}
			if flags.Changed("assets") {
				cfg.Assets = assets
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			if err := config.SetupLogger(cfg.LogLevel); err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&dir, "dir", ".", "directory holding the fixture files")
	pf.StringSliceVar(&assets, "assets", nil, "asset identifiers to process (default from MOCKMINT_ASSETS)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newPatchCmd(a))
	cmd.AddCommand(newFetchCmd(a))
	cmd.AddCommand(newInspectCmd(a))

	return cmd
}

func (a *app) config() (*config.Config, error) {
	if a.cfg == nil {
		return nil, fmt.Errorf("config not loaded")
	}
	return a.cfg, nil
}
