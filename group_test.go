package lifecycle

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func closers(items []*testInvokable) []io.Closer {
	out := make([]io.Closer, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}

func assertAllClosed(t *testing.T, items []*testInvokable) {
	t.Helper()
	for i, item := range items {
		assert.Equal(t, 1, item.called, "closer %d", i)
	}
}

func TestGroupCloseEmpty(t *testing.T) {
	g := NewGroup(nil)
	assert.Equal(t, 0, g.Len())
	assert.NoError(t, g.Close())
}

func TestGroupCloseSingleReturnsErrorUnwrapped(t *testing.T) {
	errX := &os.PathError{Op: "close", Path: "a", Err: os.ErrClosed}
	items := invokables(errX)

	err := NewGroup(closers(items)).Close()
	assertAllClosed(t, items)
	assert.Same(t, errX, err)

	var agg *AggregateError
	assert.False(t, errors.As(err, &agg))
}

func TestGroupCloseFourWithThirdFailing(t *testing.T) {
	errX := errors.New("x")
	items := invokables(nil, nil, errX, nil)

	err := NewGroup(closers(items)).Close()
	assertAllClosed(t, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errX)
	assert.Empty(t, Suppressed(err))
}

func TestGroupCloseFiveWithThirdAndFifthFailing(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	items := invokables(nil, nil, errA, nil, errB)

	err := NewGroup(closers(items)).Close()
	assertAllClosed(t, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.Equal(t, []error{errB}, Suppressed(err))
}

func TestGroupCloseSevenWithThirdAndFifthFailing(t *testing.T) {
	errC := errors.New("c")
	errD := errors.New("d")
	items := invokables(nil, nil, errC, nil, errD, nil, nil)

	err := NewGroup(closers(items)).Close()
	assertAllClosed(t, items)

	var agg *AggregateError
	require.True(t, errors.As(err, &agg))
	assert.Same(t, errC, agg.Cause)
	assert.Equal(t, []error{errD}, agg.Suppressed)
}

func TestGroupCloseHonorsMaxSuppressed(t *testing.T) {
	errs := []error{errors.New("1"), errors.New("2"), errors.New("3"), errors.New("4")}
	items := invokables(errs...)

	err := NewGroup(closers(items), WithMaxSuppressed(1)).Close()
	assertAllClosed(t, items)
	assert.ErrorIs(t, err, errs[0])
	assert.Equal(t, errs[1:2], Suppressed(err))
}

func TestGroupAdd(t *testing.T) {
	g := NewGroup(nil)
	first := &testInvokable{}
	second := &testInvokable{}

	assert.Same(t, first, Add(g, first))
	assert.Same(t, second, Add(g, second))
	Add(g, first)
	assert.Equal(t, 3, g.Len())

	require.NoError(t, g.Close())
	assert.Equal(t, 2, first.called)
	assert.Equal(t, 1, second.called)
}

func TestGroupKeepsRegistrationOrder(t *testing.T) {
	var order []string
	named := func(name string) io.Closer {
		return Func(func() error {
			order = append(order, name)
			return nil
		})
	}
	g := NewGroup([]io.Closer{named("a"), named("b")})
	Add(g, named("c"))

	require.NoError(t, g.Close())
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestGroupAddNilPanics(t *testing.T) {
	g := NewGroup(nil)
	assert.Panics(t, func() { Add[io.Closer](g, nil) })
	assert.Panics(t, func() { Add(g, (*testInvokable)(nil)) })
	assert.Panics(t, func() { Add(g, Func(nil)) })
	assert.Panics(t, func() { NewGroup([]io.Closer{nil}) })
	assert.Equal(t, 0, g.Len())
}

func TestGroupCloseQuietly(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	t.Run("without trigger logs and drops failures", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		items := invokables(errA, nil, errB)
		g := NewGroup(closers(items), WithLogger(zap.New(core)))

		assert.NoError(t, g.CloseQuietly(nil))
		assertAllClosed(t, items)

		entries := logs.FilterMessage("dropped close failure").All()
		require.Len(t, entries, 2)
		assert.Equal(t, "a", entries[0].ContextMap()["error"])
		assert.Equal(t, int64(0), entries[0].ContextMap()["index"])
		assert.Equal(t, "b", entries[1].ContextMap()["error"])
		assert.Equal(t, int64(2), entries[1].ContextMap()["index"])
	})

	t.Run("trigger returned unchanged when nothing fails", func(t *testing.T) {
		trigger := errors.New("trigger")
		items := invokables(nil, nil)

		err := NewGroup(closers(items)).CloseQuietly(trigger)
		assertAllClosed(t, items)
		assert.Same(t, trigger, err)
	})

	t.Run("failures attached to trigger", func(t *testing.T) {
		trigger := errors.New("trigger")
		items := invokables(errA, nil, errB)

		err := NewGroup(closers(items)).CloseQuietly(trigger)
		assertAllClosed(t, items)
		assert.ErrorIs(t, err, trigger)
		assert.Equal(t, []error{errA, errB}, Suppressed(err))
	})

	t.Run("single failure attached to trigger", func(t *testing.T) {
		trigger := errors.New("trigger")

		err := NewGroup(closers(invokables(errA))).CloseQuietly(trigger)
		assert.ErrorIs(t, err, trigger)
		assert.Equal(t, []error{errA}, Suppressed(err))
	})

	t.Run("attached failures bounded", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		trigger := errors.New("trigger")
		errC := errors.New("c")
		items := invokables(errA, errB, errC, errA)

		err := NewGroup(closers(items), WithMaxSuppressed(2), WithLogger(zap.New(core))).CloseQuietly(trigger)
		assertAllClosed(t, items)
		assert.ErrorIs(t, err, trigger)
		assert.Equal(t, []error{errA, errB}, Suppressed(err))

		entries := logs.FilterMessage("dropped close failure").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "c", entries[0].ContextMap()["error"])
		assert.Equal(t, "trigger", entries[0].ContextMap()["trigger"])
	})
}
