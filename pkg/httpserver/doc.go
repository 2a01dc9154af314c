// Package httpserver runs an http.Server bound to a context with graceful
// shutdown, and provides a small health check handler.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(":8080"),
//	    httpserver.WithLogger(log),
//	)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Config carries the same settings as env-tagged fields for use with package
// config.
package httpserver
