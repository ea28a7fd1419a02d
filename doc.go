// Package lifecycle provides helpers for releasing groups of resources.
//
// It offers:
// - best-effort invocation of a failing operation over many items (Collect, InvokeAll)
// - aggregation of failures into one AggregateError with bounded suppressed causes
// - Group, an ordered set of io.Closer released as one
// - With, a protected block that releases registered resources only on failure
// - close helpers for defer sites (CloseInto, CloseQuietly, CloseSuppressed)
package lifecycle
