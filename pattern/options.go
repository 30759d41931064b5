package pattern

import (
	"io"
	"log/slog"
)

// Option configures a Pattern at construction time.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for construction and join diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
