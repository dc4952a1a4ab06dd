package form

import (
	"context"

	"github.com/goliatone/go-regform/pkg/stream"
	"github.com/goliatone/go-regform/pkg/validate"
)

// slot tracks the latest outcome of one field pipeline. A pipeline that has
// never emitted leaves its slot absent, which counts as invalid.
type slot struct {
	result  validate.Result
	present bool
}

func (s slot) ok() bool {
	return s.present && s.result.Valid
}

// combined is one aggregator emission: the latest outcome of every field at
// the moment any one of them emitted.
type combined struct {
	email    slot
	password slot
	confirm  slot
}

func (c combined) allValid() bool {
	return c.email.ok() && c.password.ok() && c.confirm.ok()
}

func (c combined) summary() string {
	return Summary(c.email.result.Value, c.password.result.Value, c.confirm.result.Value)
}

// aggregate fans the three outcome streams into combined emissions, updates
// the submit-enabled flag on every one of them, and derives the summary from
// the all-valid subset.
func (p *Pipeline) aggregate(ctx context.Context, email, password, confirm <-chan validate.Result) {
	combos := p.combineOutcomes(ctx, email, password, confirm)

	// The enabled flag is recomputed on every emission, valid or not.
	flagged := stream.Tap(ctx, combos, func(c combined) {
		p.state.setSubmitEnabled(c.allValid())
	})

	valid := stream.Filter(ctx, flagged, combined.allValid)
	summaries := stream.Map(ctx, valid, combined.summary)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case summary, ok := <-summaries:
				if !ok {
					return
				}
				p.state.setSummary(summary)
			}
		}
	}()
}

// combineOutcomes emits on every emission of any source, carrying the latest
// value of each slot. Unlike a strict combine-latest it does not wait for all
// sources; missing slots stay absent rather than blocking or panicking.
func (p *Pipeline) combineOutcomes(ctx context.Context, email, password, confirm <-chan validate.Result) <-chan combined {
	out := make(chan combined)
	go func() {
		defer close(out)
		var current combined
		for email != nil || password != nil || confirm != nil {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-email:
				if !ok {
					email = nil
					continue
				}
				current.email = slot{result: r, present: true}
			case r, ok := <-password:
				if !ok {
					password = nil
					continue
				}
				current.password = slot{result: r, present: true}
			case r, ok := <-confirm:
				if !ok {
					confirm = nil
					continue
				}
				current.confirm = slot{result: r, present: true}
			}
			select {
			case out <- current:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
