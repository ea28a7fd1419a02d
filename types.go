package lifecycle

import (
	"io"
	"reflect"
)

// Func adapts a function to io.Closer.
type Func func() error

// Close calls f.
func (f Func) Close() error {
	return f()
}

var _ io.Closer = Func(nil)

// isNil reports whether c is nil or an interface holding a nil pointer,
// map, slice, func or chan.
func isNil(c any) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
