package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/shapeguard/pkg/httpserver"
	"github.com/dmitrymomot/shapeguard/pkg/logger"
	"github.com/dmitrymomot/shapeguard/pkg/shape"
	"github.com/dmitrymomot/shapeguard/pkg/shapehttp"
)

func newServeCmd() *cobra.Command {
	var (
		shapeFile string
		addr      string
		maxBody   int64
	)

	cmd := &cobra.Command{
		Use:   "serve --shape FILE",
		Short: "Serve an HTTP endpoint that validates JSON bodies against a shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			s, err := shape.LoadFile(shapeFile)
			if err != nil {
				return err
			}
			if err := shape.Lint(s); err != nil {
				a.log.WarnContext(cmd.Context(), "shape has entries that never match",
					logger.Shape(shapeFile), logger.Error(err))
			}

			opts := []httpserver.Option{httpserver.WithLogger(a.log)}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			srv := httpserver.NewFromConfig(a.cfg.HTTP, opts...)

			h := newRouter(s, a, shapehttp.WithMaxBodySize(maxBody))
			a.log.InfoContext(cmd.Context(), "serving shape", logger.Shape(shapeFile))
			return srv.Run(cmd.Context(), h)
		},
	}

	cmd.Flags().StringVarP(&shapeFile, "shape", "s", "", "shape file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	cmd.Flags().Int64Var(&maxBody, "max-body", shapehttp.DefaultMaxBodySize, "maximum request body size in bytes")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

func newRouter(s shape.Shape, a *app, opts ...shapehttp.Option) http.Handler {
	opts = append([]shapehttp.Option{
		shapehttp.WithLogger(a.log),
		shapehttp.WithShapeOptions(a.cfg.ShapeOptions()...),
	}, opts...)

	r := chi.NewRouter()
	r.Get("/health", httpserver.HealthCheckHandler(a.log))
	r.With(shapehttp.Require(s, opts...)).Post("/validate", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]bool{"matched": true})
	})
	r.With(shapehttp.RequireAll(s, opts...)).Post("/validate/all", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]bool{"matched": true})
	})
	return r
}
