// Package dashboard holds the view state of the dashboard widgets that
// load their data once when first shown.
package dashboard

import "context"

// Result is the outcome of a one-shot fetch.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) OK() bool { return r.Err == nil }

// Mount runs fetch exactly once and captures its outcome. Panics are not
// recovered.
func Mount[T any](ctx context.Context, fetch func(context.Context) (T, error)) Result[T] {
	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return Result[T]{Value: zero, Err: err}
	}
	return Result[T]{Value: v}
}
