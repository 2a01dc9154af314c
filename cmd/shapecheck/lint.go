package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/shapeguard/pkg/logger"
	"github.com/dmitrymomot/shapeguard/pkg/shape"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint FILE...",
		Short: "Report shape entries that can never match",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			failed := 0
			for _, path := range args {
				s, err := shape.LoadFile(path)
				if err == nil {
					err = shape.Lint(s)
				}
				if err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", path)
					continue
				}

				failed++
				a.log.DebugContext(cmd.Context(), "lint failed", logger.Shape(path), logger.Error(err))
				for line := range strings.SplitSeq(err.Error(), "\n") {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL\t%s\t%s\n", path, line)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrLintFailed, failed, len(args))
			}
			return nil
		},
	}
}
