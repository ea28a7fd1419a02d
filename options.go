package lifecycle

import "go.uber.org/zap"

// DefaultMaxSuppressed is the default number of suppressed causes kept by
// an AggregateError.
const DefaultMaxSuppressed = 5

type options struct {
	maxSuppressed int
	logger        *zap.Logger
}

// Option configures Collect, InvokeAll, Group and With.
type Option func(*options)

// WithMaxSuppressed sets the maximum number of suppressed causes retained
// per failure. Failures past the limit are discarded; in the quiet close
// path, and so in With, they are logged at debug level. Negative values
// mean 0.
func WithMaxSuppressed(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxSuppressed = n
	}
}

// WithLogger sets the logger used for release failures that are dropped by
// the quiet close path. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{
		maxSuppressed: DefaultMaxSuppressed,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
