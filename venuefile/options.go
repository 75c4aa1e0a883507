package venuefile

import "go.uber.org/zap"

// defaultMaxLineLength bounds a single line of the venue description.
const defaultMaxLineLength = 1 << 20

// Option configures Parse and ReadFile.
type Option func(*options)

type options struct {
	logger        *zap.Logger
	maxLineLength int
}

func defaultOptions() options {
	return options{logger: zap.NewNop(), maxLineLength: defaultMaxLineLength}
}

// WithLogger sets the logger used to trace parsing. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxLineLength bounds the length of a single line in bytes. Longer lines
// are reported as read failures (ErrIO). Non-positive values are ignored.
func WithMaxLineLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineLength = n
		}
	}
}
