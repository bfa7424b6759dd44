// Package cli implements the kifu command line tool: checking,
// rendering and serving SGF game records.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kifulab/kifu/game"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "kifu",
		Short: "Work with go (weiqi/baduk) game records",
		Long: `kifu reads, validates and renders SGF game records.

It replays records under a chosen ruleset (Japanese, Chinese or Ing),
renders them as animated GIFs or DOT variation graphs, and can act as
a GTP engine for game controllers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := InitConfig()
			if err != nil {
				return err
			}
			overlayFlags(cmd, loaded)
			cfg = loaded

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.Rules, "rules", cfg.Rules, "Ruleset: japanese, chinese, ing")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newDotCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newGtpCmd())

	return rootCmd
}

// overlayFlags reapplies explicitly set flags over the loaded config,
// so flags beat the config file and the config file beats defaults.
func overlayFlags(cmd *cobra.Command, loaded *Config) {
	flags := cmd.Flags()
	if flags.Changed("rules") {
		if v, err := flags.GetString("rules"); err == nil {
			loaded.Rules = v
		}
	}
	if flags.Changed("verbose") {
		if v, err := flags.GetBool("verbose"); err == nil {
			loaded.Verbose = v
		}
	}
}

func rules() (game.Rules, error) {
	return game.RulesetByName(cfg.Rules)
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
