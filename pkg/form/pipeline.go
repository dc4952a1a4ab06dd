// Package form wires the registration form's reactive pipeline: per-field
// input streams are debounced, deduplicated, and validated; the password
// confirmation cross-validates against the latest password; an aggregator
// gates the submit control and derives the composed summary.
package form

import (
	"context"
	"fmt"

	"github.com/goliatone/go-regform/pkg/stream"
	"github.com/goliatone/go-regform/pkg/validate"
)

// Field identifies one of the registration form controls.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldConfirm  Field = "confirm"
)

// Summary composes the display string surfaced on submit.
func Summary(email, password, confirm string) string {
	return fmt.Sprintf("EMail: %s, Password: %s, Confirm: %s", email, password, confirm)
}

// Pipeline owns the event channels and goroutines behind one form instance.
// Build it with New, call Start, then feed UI events through Input, Blur, and
// Click. Cancelling the Start context tears every stage down.
type Pipeline struct {
	opts  Options
	state *State

	ctx     context.Context
	emailIn chan string
	pwIn    chan string
	cfIn    chan string
	blurIn  chan struct{}
	clickIn chan struct{}
}

// New constructs an unstarted pipeline.
func New(fns ...OptionFn) *Pipeline {
	opts := NewOptions(fns...)
	return &Pipeline{
		opts:    opts,
		state:   NewState(opts.Listener),
		emailIn: make(chan string),
		pwIn:    make(chan string),
		cfIn:    make(chan string),
		blurIn:  make(chan struct{}, 1),
		clickIn: make(chan struct{}),
	}
}

// State returns a snapshot of the current display state.
func (p *Pipeline) State() Snapshot {
	return p.state.Snapshot()
}

// Start wires the streams and launches the pipeline goroutines. It must be
// called exactly once before any event is fed in; the pipeline stops when ctx
// is cancelled.
func (p *Pipeline) Start(ctx context.Context) {
	p.ctx = ctx

	emailResults := p.fieldPipeline(ctx, FieldEmail, p.emailIn, p.opts.EmailRules)
	passwordResults := p.fieldPipeline(ctx, FieldPassword, p.pwIn, p.opts.PasswordRules)

	// The password outcome feeds both the confirmation cross-check and the
	// aggregator.
	pwOuts := stream.FanOut(ctx, passwordResults, 2)

	confirmResults := p.confirmPipeline(ctx, pwOuts[0])

	p.aggregate(ctx, emailResults, pwOuts[1], confirmResults)
	go p.submitGate(ctx)
}

// fieldPipeline adapts one text control: debounce, dedupe, validate, and
// publish the field error as a side effect.
func (p *Pipeline) fieldPipeline(ctx context.Context, field Field, in <-chan string, rules []validate.Func) <-chan validate.Result {
	values := stream.DistinctUntilChanged(ctx, stream.Debounce(ctx, in, p.opts.Debounce))
	results := stream.Map(ctx, values, func(value string) validate.Result {
		return validate.Run(value, rules...)
	})
	return stream.Tap(ctx, results, func(r validate.Result) {
		p.opts.Logger.Debug("field validated",
			"field", string(field), "valid", r.Valid, "message", r.Message)
		p.state.setError(field, r.Message)
	})
}

// confirmPipeline implements the two-phase confirmation check. Nothing runs
// until the confirm control blurs for the first time; from then on every
// emission of either the confirm input or the password outcome re-validates
// the latest confirm value against the latest password value. Before the
// password pipeline has emitted, the password counts as the empty string.
func (p *Pipeline) confirmPipeline(ctx context.Context, passwordResults <-chan validate.Result) <-chan validate.Result {
	values := stream.DistinctUntilChanged(ctx, stream.Debounce(ctx, p.cfIn, p.opts.Debounce))

	pairs := stream.CombineLatest2(ctx,
		stream.StartWith(ctx, values, ""),
		stream.StartWith(ctx, passwordResults, validate.Run("", p.opts.PasswordRules...)),
	)
	gated := stream.SkipUntil(ctx, pairs, p.blurIn)

	results := stream.Map(ctx, gated, func(pair stream.Pair[string, validate.Result]) validate.Result {
		return validate.Run(pair.A, p.opts.ConfirmRules(pair.B.Value)...)
	})
	return stream.Tap(ctx, results, func(r validate.Result) {
		p.opts.Logger.Debug("confirmation validated", "valid", r.Valid, "message", r.Message)
		p.state.setError(FieldConfirm, r.Message)
	})
}

// Input feeds a raw input event for the given field. Unknown fields are
// ignored.
func (p *Pipeline) Input(field Field, value string) {
	switch field {
	case FieldEmail:
		push(p.ctx, p.emailIn, value)
	case FieldPassword:
		push(p.ctx, p.pwIn, value)
	case FieldConfirm:
		push(p.ctx, p.cfIn, value)
	default:
		p.opts.Logger.Debug("input for unknown field ignored", "field", string(field))
	}
}

// Blur feeds a blur event. Only the confirm control's blur participates in
// the pipeline; blurs on other fields are ignored.
func (p *Pipeline) Blur(field Field) {
	if field != FieldConfirm {
		return
	}
	// blurIn is buffered so the first blur is never lost; past the first
	// blur the gate no longer listens, so later blurs are dropped here.
	select {
	case p.blurIn <- struct{}{}:
	default:
	}
}

// Click feeds a submit-control click.
func (p *Pipeline) Click() {
	push(p.ctx, p.clickIn, struct{}{})
}

func push[T any](ctx context.Context, ch chan<- T, v T) {
	if ctx == nil {
		return
	}
	select {
	case ch <- v:
	case <-ctx.Done():
	}
}

// submitGate surfaces the last known valid summary on each click. The
// disabled control prevents clicks before a summary exists; a click that
// slips through anyway is dropped.
func (p *Pipeline) submitGate(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.clickIn:
			summary, ok := p.state.summaryValue()
			if !ok {
				p.opts.Logger.Debug("submit click before any valid summary, ignoring")
				continue
			}
			if p.opts.Submit != nil {
				p.opts.Submit(summary)
			}
		}
	}
}
