package stream

import "context"

// Pair carries the latest values of two combined sources.
type Pair[A, B any] struct {
	A A
	B B
}

// CombineLatest2 emits a Pair of the most recent value from each source
// whenever either source emits, once both have emitted at least once. Seed a
// source with StartWith to combine before its first real emission. The output
// closes when both inputs have closed.
func CombineLatest2[A, B any](ctx context.Context, a <-chan A, b <-chan B) <-chan Pair[A, B] {
	out := make(chan Pair[A, B])
	go func() {
		defer close(out)
		var (
			latestA A
			latestB B
			hasA    bool
			hasB    bool
		)
		for a != nil || b != nil {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-a:
				if !ok {
					a = nil
					continue
				}
				latestA, hasA = v, true
			case v, ok := <-b:
				if !ok {
					b = nil
					continue
				}
				latestB, hasB = v, true
			}
			if hasA && hasB {
				if !send(ctx, out, Pair[A, B]{A: latestA, B: latestB}) {
					return
				}
			}
		}
	}()
	return out
}
