package shapehttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/dmitrymomot/shapeguard/pkg/logger"
	"github.com/dmitrymomot/shapeguard/pkg/shape"
)

// DefaultMaxBodySize is the default limit for request bodies (1MB).
const DefaultMaxBodySize = 1 << 20

// ErrorHandler writes the response for a rejected request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, status int, err error)

// Option configures the middleware.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	maxBodySize  int64
	shapeOptions []shape.Option
	errorHandler ErrorHandler
}

// WithLogger logs rejected requests at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxBodySize limits the request body. Non-positive values keep the default.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// WithShapeOptions passes options to the shape predicate.
func WithShapeOptions(opts ...shape.Option) Option {
	return func(o *options) { o.shapeOptions = append(o.shapeOptions, opts...) }
}

// WithErrorHandler replaces the default JSON error response.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

type payloadKey struct{}

// PayloadFromContext returns the decoded body stored by Require or RequireAll.
// Numbers are decoded as json.Number.
func PayloadFromContext(ctx context.Context) (any, bool) {
	if ctx == nil {
		return nil, false
	}
	v, ok := ctx.Value(payloadKey{}).(payload)
	return v.value, ok
}

type payload struct{ value any }

// Require rejects requests whose JSON body does not satisfy s. Accepted
// requests reach next with the body restored and the decoded payload in the
// context.
func Require(s shape.Shape, opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts)
	match := shape.Matches(s, o.shapeOptions...)
	return middleware(o, func(v any) error {
		if !match(v) {
			return ErrShapeMismatch
		}
		return nil
	})
}

// RequireAll rejects requests whose body is not a JSON array of values that
// all satisfy s. An empty array is accepted.
func RequireAll(s shape.Shape, opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts)
	all := shape.MatchesForAll(s, o.shapeOptions...)
	return middleware(o, func(v any) error {
		items, ok := v.([]any)
		if !ok {
			return ErrNotArray
		}
		if !all(items) {
			return ErrShapeMismatch
		}
		return nil
	})
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:       logger.Discard(),
		maxBodySize:  DefaultMaxBodySize,
		errorHandler: writeError,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func middleware(o *options, check func(any) error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, v, status, err := decode(r, o.maxBodySize)
			if err == nil {
				if err = check(v); err != nil {
					status = http.StatusUnprocessableEntity
				}
			}
			if err != nil {
				o.logger.WarnContext(r.Context(), "request rejected",
					logger.Component("shapehttp"),
					logger.Target(r.URL.Path),
					slog.Int("status", status),
					logger.Error(err),
				)
				o.errorHandler(w, r, status, err)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			ctx := context.WithValue(r.Context(), payloadKey{}, payload{value: v})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func decode(r *http.Request, limit int64) ([]byte, any, int, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, nil, http.StatusUnsupportedMediaType, ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return nil, nil, http.StatusUnsupportedMediaType, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, contentType)
	}

	if r.Body == nil {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if int64(len(body)) > limit {
		return nil, nil, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, http.StatusBadRequest, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return nil, nil, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if dec.More() {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSON)
	}
	return body, v, http.StatusOK, nil
}

func writeError(w http.ResponseWriter, _ *http.Request, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
