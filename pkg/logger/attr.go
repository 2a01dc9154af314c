package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Shape records the source of a shape (usually a file path) under the key "shape".
func Shape(source string) slog.Attr {
	return slog.String("shape", source)
}

// Target records the validated input (file path, request path) under the key "target".
func Target(name string) slog.Attr {
	return slog.String("target", name)
}

// Matched records the outcome of a shape check under the key "matched".
func Matched(ok bool) slog.Attr {
	return slog.Bool("matched", ok)
}
