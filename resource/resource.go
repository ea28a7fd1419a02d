// Package resource provides io.Closer adapters for resources that do not
// implement io.Closer themselves.
package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Path is a filesystem path removed on Close. Directories are removed
// recursively. A path that no longer exists is not an error.
type Path struct {
	path string
}

// NewPath wraps path. It panics if path is empty.
func NewPath(path string) *Path {
	if path == "" {
		panic("resource: new path: path is empty")
	}
	return &Path{path: path}
}

// TempDir creates a new temporary directory, see os.MkdirTemp, owned by
// the returned Path.
func TempDir(dir, pattern string) (*Path, error) {
	path, err := os.MkdirTemp(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	return NewPath(path), nil
}

// Path returns the wrapped path.
func (p *Path) Path() string {
	return p.path
}

func (p *Path) Close() error {
	if err := os.RemoveAll(p.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", p.path, err)
	}
	return nil
}

type noError func()

func (f noError) Close() error {
	f()
	return nil
}

// NoError adapts a close function without error result, such as
// (*pgxpool.Pool).Close.
func NoError(fn func()) io.Closer {
	if fn == nil {
		panic("resource: no error: fn is nil")
	}
	return noError(fn)
}

type contextCloser struct {
	ctx context.Context
	fn  func(context.Context) error
}

func (c contextCloser) Close() error {
	return c.fn(c.ctx)
}

// Context binds ctx to a context-aware shutdown hook, such as
// (*http.Server).Shutdown. A nil ctx means context.Background.
func Context(ctx context.Context, fn func(context.Context) error) io.Closer {
	if fn == nil {
		panic("resource: context: fn is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return contextCloser{ctx: ctx, fn: fn}
}

var (
	_ io.Closer = (*Path)(nil)
	_ io.Closer = noError(nil)
	_ io.Closer = contextCloser{}
)
