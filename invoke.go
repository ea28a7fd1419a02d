package lifecycle

// Collect invokes op on every item in order, no matter whether earlier
// invocations failed. It returns nil when all invocations succeed. Otherwise
// the first failure becomes the cause of the returned AggregateError and
// later failures are kept as suppressed causes, up to the configured maximum.
// Invocations past the maximum still run; only their errors are dropped.
//
// Collect does not recover panics: a panicking op stops the iteration.
func Collect[T any](items []T, op func(T) error, opts ...Option) *AggregateError {
	if op == nil {
		panic("lifecycle: collect: op is nil")
	}
	o := newOptions(opts)

	var agg *AggregateError
	for _, item := range items {
		err := op(item)
		if err == nil {
			continue
		}
		if agg == nil {
			agg = &AggregateError{Cause: err}
			continue
		}
		if len(agg.Suppressed) < o.maxSuppressed {
			agg.Suppressed = append(agg.Suppressed, err)
		}
	}
	return agg
}

// InvokeAll is Collect returning a plain error.
//
//	err := lifecycle.InvokeAll(conns, func(c net.Conn) error { return c.Close() })
func InvokeAll[T any](items []T, op func(T) error, opts ...Option) error {
	if agg := Collect(items, op, opts...); agg != nil {
		return agg
	}
	return nil
}
