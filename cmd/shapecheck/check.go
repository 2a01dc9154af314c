package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/shapeguard/pkg/logger"
	"github.com/dmitrymomot/shapeguard/pkg/shape"
)

func newCheckCmd() *cobra.Command {
	var (
		shapeFile string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "check --shape FILE DATA...",
		Short: "Check documents against a shape",
		Long: `Check decodes every DATA file (JSON, or YAML by extension; "-" reads JSON
from stdin) and reports whether it satisfies the shape. With --all each
document must be an array whose elements all satisfy the shape.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			s, err := shape.LoadFile(shapeFile)
			if err != nil {
				return err
			}

			match := shape.Matches(s, a.cfg.ShapeOptions()...)
			matchAll := shape.MatchesForAll(s, a.cfg.ShapeOptions()...)

			failed := 0
			for _, path := range args {
				v, err := readData(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}

				var ok bool
				if all {
					items, isArray := v.([]any)
					ok = isArray && matchAll(items)
				} else {
					ok = match(v)
				}

				a.log.DebugContext(cmd.Context(), "checked document",
					logger.Shape(shapeFile),
					logger.Target(path),
					logger.Matched(ok),
				)

				status := "ok"
				if !ok {
					status = "FAIL"
					failed++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", status, path)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrMismatch, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&shapeFile, "shape", "s", "", "shape file (.json, .yaml, .yml)")
	cmd.Flags().BoolVar(&all, "all", false, "require an array whose elements all match")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

func readData(stdin io.Reader, path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Join(ErrReadData, err)
	}

	var v any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &v)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&v)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadData, path, err)
	}
	return v, nil
}
