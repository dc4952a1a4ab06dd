package stream

import "context"

// DistinctUntilChanged suppresses values equal to the immediately preceding
// emission. The first value always passes through.
func DistinctUntilChanged[T comparable](ctx context.Context, in <-chan T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		var (
			prev    T
			emitted bool
		)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				if emitted && v == prev {
					continue
				}
				prev, emitted = v, true
				if !send(ctx, out, v) {
					return
				}
			}
		}
	}()
	return out
}
