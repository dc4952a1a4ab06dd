// Package stream provides small channel-based combinators used to compose
// reactive UI pipelines: debouncing, deduplication, mapping, merging, and
// latest-value combination.
//
// Every combinator spawns a single goroutine, closes its output channel when
// the input closes, and stops promptly when the context is cancelled. Inputs
// are single-consumer; use FanOut to share one stream between stages.
package stream

import "context"

// Map transforms each value from in using fn.
func Map[In, Out any](ctx context.Context, in <-chan In, fn func(In) Out) <-chan Out {
	out := make(chan Out)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				if !send(ctx, out, fn(v)) {
					return
				}
			}
		}
	}()
	return out
}

// Tap invokes fn for each value and passes the value through unchanged. It is
// the hook point for UI side effects such as updating an error label.
func Tap[T any](ctx context.Context, in <-chan T, fn func(T)) <-chan T {
	return Map(ctx, in, func(v T) T {
		fn(v)
		return v
	})
}

// Filter passes through only the values for which predicate returns true.
func Filter[T any](ctx context.Context, in <-chan T, predicate func(T) bool) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				if !predicate(v) {
					continue
				}
				if !send(ctx, out, v) {
					return
				}
			}
		}
	}()
	return out
}

// Merge fans multiple same-typed streams into one. The output closes once
// every input has closed.
func Merge[T any](ctx context.Context, ins ...<-chan T) <-chan T {
	out := make(chan T)
	done := make(chan struct{})
	remaining := len(ins)
	if remaining == 0 {
		close(out)
		return out
	}
	for _, in := range ins {
		go func(in <-chan T) {
			for {
				select {
				case <-ctx.Done():
					done <- struct{}{}
					return
				case v, ok := <-in:
					if !ok {
						done <- struct{}{}
						return
					}
					if !send(ctx, out, v) {
						done <- struct{}{}
						return
					}
				}
			}
		}(in)
	}
	go func() {
		for range remaining {
			<-done
		}
		close(out)
	}()
	return out
}

// FanOut broadcasts every value from in to n output channels. Each output
// must be consumed; a stalled consumer stalls the broadcast.
func FanOut[T any](ctx context.Context, in <-chan T, n int) []<-chan T {
	outs := make([]chan T, n)
	for i := range outs {
		outs[i] = make(chan T)
	}
	go func() {
		defer func() {
			for _, out := range outs {
				close(out)
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				for _, out := range outs {
					if !send(ctx, out, v) {
						return
					}
				}
			}
		}
	}()
	result := make([]<-chan T, n)
	for i, out := range outs {
		result[i] = out
	}
	return result
}

// StartWith prepends seed values before relaying in. The seeds are emitted in
// order as soon as the consumer is ready.
func StartWith[T any](ctx context.Context, in <-chan T, seeds ...T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for _, seed := range seeds {
			if !send(ctx, out, seed) {
				return
			}
		}
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				if !send(ctx, out, v) {
					return
				}
			}
		}
	}()
	return out
}

// SkipUntil drops values from in until gate emits for the first time, then
// passes everything through. The gate is read exactly once; later gate
// emissions are not observed, so the open transition is one-way.
func SkipUntil[T, G any](ctx context.Context, in <-chan T, gate <-chan G) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		open := false
		for {
			if open {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-in:
					if !ok {
						return
					}
					if !send(ctx, out, v) {
						return
					}
				}
				continue
			}
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				// A gate emission that happened before this value must win,
				// so poll it before discarding.
				if gate != nil {
					select {
					case _, gok := <-gate:
						if gok {
							open = true
							if !send(ctx, out, v) {
								return
							}
						} else {
							gate = nil
						}
					default:
					}
				}
			case _, ok := <-gate:
				if ok {
					open = true
				} else {
					gate = nil
				}
			}
		}
	}()
	return out
}

// send delivers v to out unless the context is cancelled first.
func send[T any](ctx context.Context, out chan<- T, v T) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
