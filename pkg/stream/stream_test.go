package stream_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-regform/pkg/stream"
)

func feed[T any](t *testing.T, values ...T) <-chan T {
	t.Helper()
	ch := make(chan T)
	go func() {
		defer close(ch)
		for _, v := range values {
			ch <- v
		}
	}()
	return ch
}

func collect[T any](t *testing.T, ch <-chan T) []T {
	t.Helper()
	var out []T
	timeout := time.After(2 * time.Second)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, v)
		case <-timeout:
			t.Fatalf("timed out collecting stream, got %v so far", out)
		}
	}
}

func TestMap_TransformsValues(t *testing.T) {
	ctx := context.Background()
	out := stream.Map(ctx, feed(t, 1, 2, 3), func(n int) int { return n * 10 })
	if diff := cmp.Diff([]int{10, 20, 30}, collect(t, out)); diff != "" {
		t.Fatalf("mapped values mismatch (-want +got):\n%s", diff)
	}
}

func TestTap_ObservesWithoutChanging(t *testing.T) {
	ctx := context.Background()
	var seen []string
	out := stream.Tap(ctx, feed(t, "a", "b"), func(v string) { seen = append(seen, v) })
	got := collect(t, out)
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("tap output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Fatalf("tap side effects mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_DropsNonMatching(t *testing.T) {
	ctx := context.Background()
	out := stream.Filter(ctx, feed(t, 1, 2, 3, 4), func(n int) bool { return n%2 == 0 })
	if diff := cmp.Diff([]int{2, 4}, collect(t, out)); diff != "" {
		t.Fatalf("filtered values mismatch (-want +got):\n%s", diff)
	}
}

func TestDistinctUntilChanged_SuppressesConsecutiveDuplicates(t *testing.T) {
	ctx := context.Background()
	out := stream.DistinctUntilChanged(ctx, feed(t, "a", "a", "b", "b", "a"))
	if diff := cmp.Diff([]string{"a", "b", "a"}, collect(t, out)); diff != "" {
		t.Fatalf("distinct values mismatch (-want +got):\n%s", diff)
	}
}

func TestDebounce_CollapsesBurstToLastValue(t *testing.T) {
	ctx := context.Background()
	in := make(chan string)
	out := stream.Debounce(ctx, in, 60*time.Millisecond)

	go func() {
		defer close(in)
		for _, v := range []string{"a", "ab", "abc"} {
			in <- v
			time.Sleep(5 * time.Millisecond)
		}
	}()

	if diff := cmp.Diff([]string{"abc"}, collect(t, out)); diff != "" {
		t.Fatalf("debounced values mismatch (-want +got):\n%s", diff)
	}
}

func TestDebounce_EmitsSeparatedValues(t *testing.T) {
	ctx := context.Background()
	in := make(chan string)
	out := stream.Debounce(ctx, in, 20*time.Millisecond)

	go func() {
		defer close(in)
		in <- "first"
		time.Sleep(80 * time.Millisecond)
		in <- "second"
	}()

	if diff := cmp.Diff([]string{"first", "second"}, collect(t, out)); diff != "" {
		t.Fatalf("debounced values mismatch (-want +got):\n%s", diff)
	}
}

func TestStartWith_PrependsSeeds(t *testing.T) {
	ctx := context.Background()
	out := stream.StartWith(ctx, feed(t, 3, 4), 1, 2)
	if diff := cmp.Diff([]int{1, 2, 3, 4}, collect(t, out)); diff != "" {
		t.Fatalf("seeded values mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_FansIn(t *testing.T) {
	ctx := context.Background()
	out := stream.Merge(ctx, feed(t, 1), feed(t, 2))
	got := collect(t, out)
	if len(got) != 2 {
		t.Fatalf("expected 2 merged values, got %v", got)
	}
	if got[0]+got[1] != 3 {
		t.Fatalf("unexpected merged values: %v", got)
	}
}

func TestFanOut_BroadcastsToAllOutputs(t *testing.T) {
	ctx := context.Background()
	outs := stream.FanOut(ctx, feed(t, "x", "y"), 2)

	results := make(chan []string, 2)
	for _, out := range outs {
		go func(out <-chan string) {
			var got []string
			for v := range out {
				got = append(got, v)
			}
			results <- got
		}(out)
	}

	for range 2 {
		if diff := cmp.Diff([]string{"x", "y"}, <-results); diff != "" {
			t.Fatalf("fan-out values mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSkipUntil_DropsValuesBeforeGate(t *testing.T) {
	ctx := context.Background()
	in := make(chan string)
	gate := make(chan struct{})
	out := stream.SkipUntil(ctx, in, gate)

	go func() {
		defer close(in)
		in <- "dropped"
		// Give the stream time to discard before opening the gate.
		time.Sleep(20 * time.Millisecond)
		gate <- struct{}{}
		// A second gate emission must not be consumed by the stream.
		select {
		case gate <- struct{}{}:
		default:
		}
		in <- "kept"
	}()

	if diff := cmp.Diff([]string{"kept"}, collect(t, out)); diff != "" {
		t.Fatalf("gated values mismatch (-want +got):\n%s", diff)
	}
}

func TestCombineLatest2_WaitsForBothThenTracksLatest(t *testing.T) {
	ctx := context.Background()
	a := make(chan string)
	b := make(chan int)
	out := stream.CombineLatest2(ctx, a, b)

	go func() {
		a <- "a1"
		b <- 1
		a <- "a2"
		close(a)
		close(b)
	}()

	want := []stream.Pair[string, int]{
		{A: "a1", B: 1},
		{A: "a2", B: 1},
	}
	if diff := cmp.Diff(want, collect(t, out)); diff != "" {
		t.Fatalf("combined pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestCombinators_StopOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan int)
	out := stream.Map(ctx, in, func(n int) int { return n })
	cancel()

	select {
	case _, ok := <-out:
		if ok {
			t.Fatal("expected closed output after cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("output not closed after cancellation")
	}
}
