package lifecycle

// With runs body with a fresh Group. Resources registered by body stay open
// when it succeeds; the caller owns them from then on, usually by keeping
// the Group and closing it later.
//
// When body fails, the group is closed quietly and body's error is returned
// with the close failures attached as suppressed causes. The returned error
// matches body's error under errors.Is, and is body's error itself when every
// close succeeded. When body panics, the group is closed quietly and the panic
// continues with its original value.
//
//	r, err := lifecycle.With(func(g *lifecycle.Group) (*reader, error) {
//		f := lifecycle.Add(g, must(os.Open(name)))
//		zr, err := gzip.NewReader(f)
//		if err != nil {
//			return nil, err
//		}
//		lifecycle.Add(g, zr)
//		return &reader{Reader: zr, closer: g}, nil
//	})
func With[T any](body func(g *Group) (T, error), opts ...Option) (T, error) {
	if body == nil {
		panic("lifecycle: with: body is nil")
	}

	g := NewGroup(nil, opts...)
	done := false
	defer func() {
		if !done {
			_ = g.CloseQuietly(nil)
		}
	}()

	v, err := body(g)
	done = true
	if err != nil {
		var zero T
		return zero, g.CloseQuietly(err)
	}
	return v, nil
}
