package lifecycle

import "io"

// CloseInto closes c and records its failure in *errp. It is meant for
// defer statements with a named error result:
//
//	func load(name string) (err error) {
//		f, err := os.Open(name)
//		if err != nil {
//			return err
//		}
//		defer lifecycle.CloseInto(&err, f)
//		// ...
//	}
//
// If *errp is nil it receives the close error. Otherwise the close error is
// attached to *errp as a suppressed cause. Stacked CloseInto calls extend the
// same suppressed list, bounded by DefaultMaxSuppressed.
func CloseInto(errp *error, c io.Closer) {
	if errp == nil {
		panic("lifecycle: close into: error pointer is nil")
	}
	cerr := c.Close()
	if cerr == nil {
		return
	}
	if *errp == nil {
		*errp = cerr
		return
	}
	*errp = extend(*errp, flatten(cerr), DefaultMaxSuppressed)
}

// CloseQuietly closes c and ignores any failure.
func CloseQuietly(c io.Closer) {
	_ = c.Close()
}

// CloseSuppressed closes c and attaches a close failure to trigger as a
// suppressed cause, extending trigger's own suppressed causes when it is an
// AggregateError. With a nil trigger the failure is dropped and nil is
// returned.
func CloseSuppressed(c io.Closer, trigger error) error {
	cerr := c.Close()
	if trigger == nil || cerr == nil {
		return trigger
	}
	return extend(trigger, flatten(cerr), DefaultMaxSuppressed)
}
