// Package logger builds *slog.Logger instances from functional options.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// handler with LogHandlerDecorator, which copies registered context values into
// every record:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "shapecheck"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "payload checked", logger.Shape("user.yaml"), logger.Matched(true))
//
// Attribute helpers (Error, Errors, Component, Shape, Target, Matched) keep key
// names consistent across packages.
package logger
