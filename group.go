package lifecycle

import (
	"io"

	"go.uber.org/zap"
)

// Group holds an ordered list of io.Closer released together.
// Closers are closed in registration order.
//
// A Group is not safe for concurrent use, and closing it twice closes every
// registered closer twice.
type Group struct {
	closers []io.Closer
	opts    options
}

// NewGroup returns a Group seeded with closers. It panics if any of them is nil.
func NewGroup(closers []io.Closer, opts ...Option) *Group {
	g := &Group{
		closers: make([]io.Closer, 0, len(closers)),
		opts:    newOptions(opts),
	}
	for _, c := range closers {
		g.add(c)
	}
	return g
}

// Add registers c with g and returns it, so acquisition and registration
// fit in one expression:
//
//	f := lifecycle.Add(g, must(os.Open(name)))
//
// It panics if c is nil.
func Add[C io.Closer](g *Group, c C) C {
	g.add(c)
	return c
}

func (g *Group) add(c io.Closer) {
	if isNil(c) {
		panic("lifecycle: add: closer is nil")
	}
	g.closers = append(g.closers, c)
}

// Len returns the number of registered closers.
func (g *Group) Len() int {
	return len(g.closers)
}

// Close closes every registered closer.
//
// With a single closer its error is returned as is. With more, every closer
// is closed regardless of failures and the result is an *AggregateError
// whose cause is the first failure.
func (g *Group) Close() error {
	switch len(g.closers) {
	case 0:
		return nil
	case 1:
		return g.closers[0].Close()
	}
	if agg := Collect(g.closers, io.Closer.Close, WithMaxSuppressed(g.opts.maxSuppressed)); agg != nil {
		return agg
	}
	return nil
}

// CloseQuietly closes g and never fails.
//
// If trigger is nil, close failures are logged at debug level and dropped,
// and nil is returned. Otherwise every close failure is attached to trigger
// as a suppressed cause and the result still matches trigger under errors.Is.
// trigger itself is returned when nothing failed. Failures past the
// configured maximum are logged instead of attached.
func (g *Group) CloseQuietly(trigger error) error {
	if trigger == nil {
		for i, c := range g.closers {
			if err := c.Close(); err != nil {
				g.logDropped(err, zap.Int("index", i))
			}
		}
		return nil
	}

	failures := flatten(g.Close())
	if limit := g.opts.maxSuppressed; len(failures) > limit {
		for _, err := range failures[limit:] {
			g.logDropped(err, zap.NamedError("trigger", trigger))
		}
	}
	return suppress(trigger, failures, g.opts.maxSuppressed)
}

func (g *Group) logDropped(err error, fields ...zap.Field) {
	fields = append(fields, zap.Int("closers", len(g.closers)), zap.Error(err))
	g.opts.logger.Debug("dropped close failure", fields...)
}

var _ io.Closer = (*Group)(nil)
