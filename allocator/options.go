package allocator

import "go.uber.org/zap"

// Option configures an Allocator.
type Option func(*Allocator)

// WithLogger sets the logger for allocation decisions. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(a *Allocator) {
		if l != nil {
			a.logger = l
		}
	}
}
