package stream

import (
	"context"
	"time"
)

// Debounce emits the most recent value from in after d of silence. Bursts of
// values arriving within the window collapse to a single trailing emission.
// A value still pending when in closes is flushed before the output closes.
func Debounce[T any](ctx context.Context, in <-chan T, d time.Duration) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		var (
			timer  *time.Timer
			fire   <-chan time.Time
			latest T
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					if fire != nil {
						send(ctx, out, latest)
					}
					return
				}
				latest = v
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					if !timer.Stop() && fire != nil {
						<-timer.C
					}
					timer.Reset(d)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				if !send(ctx, out, latest) {
					return
				}
			}
		}
	}()
	return out
}
