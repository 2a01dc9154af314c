package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/shapeguard/pkg/logger"
)

type app struct {
	cfg Config
	log *slog.Logger
}

type appKey struct{}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shapecheck",
		Short:         "Validate JSON and YAML documents against shape files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := cfg.Logger(logger.WithOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{cfg: cfg, log: log}))
			return nil
		},
	}

	root.AddCommand(newCheckCmd(), newLintCmd(), newServeCmd())
	return root
}

func appFrom(cmd *cobra.Command) *app {
	if a, ok := cmd.Context().Value(appKey{}).(*app); ok {
		return a
	}
	return &app{log: slog.New(slog.DiscardHandler)}
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
