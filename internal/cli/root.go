package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/seabattle/internal/factory"
	"github.com/mcoot/seabattle/internal/render"
)

var (
	cfg    *Config
	app    *factory.App
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "seabattle",
		Short: "Sea battle against the computer in your terminal",
		Long: `seabattle is a terminal game of sea battle against the computer.

Each side gets a randomly placed fleet of seven ships (one of length 3, two of
length 2 and four of length 1). Ships never touch, not even at the corners.
Sides take turns shooting; a hit or a sunk ship earns another shot.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			fc, err := cfg.FactoryConfig(logger, render.TerminalSupportsColor())
			if err != nil {
				return err
			}

			app, err = factory.New(fc)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "Board size, 6 to 9 (env: SEABATTLE_SIZE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Seed for reproducible fleets and computer moves (env: SEABATTLE_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.Locale, "lang", cfg.Locale, "Message language: en, ru (env: SEABATTLE_LANG)")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured output (env: NO_COLOR)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Match history storage: memory, redis (env: SEABATTLE_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for redis storage (env: SEABATTLE_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: SEABATTLE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&cfg.Trace, "trace", cfg.Trace, "Stream match events to stderr (env: SEABATTLE_TRACE)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	// Ctrl+C abandons the current match
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
