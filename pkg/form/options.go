package form

import (
	"log/slog"
	"time"

	"github.com/goliatone/go-regform/pkg/validate"
)

// ConfirmRuleFunc builds the confirmation chain against the latest password
// value at evaluation time.
type ConfirmRuleFunc func(password string) []validate.Func

// SubmitFunc receives the composed summary when the submit control fires.
type SubmitFunc func(summary string)

// Options configures a Pipeline.
type Options struct {
	// Debounce is the quiet period applied to raw input events per field.
	Debounce time.Duration

	EmailRules    []validate.Func
	PasswordRules []validate.Func
	ConfirmRules  ConfirmRuleFunc

	// Submit fires with the last valid summary on each submit click.
	Submit SubmitFunc

	// Listener observes every display-state mutation.
	Listener Listener

	Logger *slog.Logger
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the stock registration rules with a 400ms debounce.
func DefaultOptions() Options {
	return Options{
		Debounce:      400 * time.Millisecond,
		EmailRules:    validate.EmailRules(),
		PasswordRules: validate.PasswordRules(),
		ConfirmRules:  validate.ConfirmRules,
	}
}

// NewOptions applies overrides on top of DefaultOptions and backfills any
// field an override cleared.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 400 * time.Millisecond
	}
	if opts.EmailRules == nil {
		opts.EmailRules = validate.EmailRules()
	}
	if opts.PasswordRules == nil {
		opts.PasswordRules = validate.PasswordRules()
	}
	if opts.ConfirmRules == nil {
		opts.ConfirmRules = validate.ConfirmRules
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

// WithDebounce overrides the input quiet period.
func WithDebounce(d time.Duration) OptionFn {
	return func(o *Options) {
		if d > 0 {
			o.Debounce = d
		}
	}
}

// WithEmailRules overrides the email validator chain.
func WithEmailRules(fns ...validate.Func) OptionFn {
	return func(o *Options) {
		if len(fns) > 0 {
			o.EmailRules = fns
		}
	}
}

// WithPasswordRules overrides the password validator chain.
func WithPasswordRules(fns ...validate.Func) OptionFn {
	return func(o *Options) {
		if len(fns) > 0 {
			o.PasswordRules = fns
		}
	}
}

// WithConfirmRules overrides the confirmation chain builder.
func WithConfirmRules(fn ConfirmRuleFunc) OptionFn {
	return func(o *Options) {
		if fn != nil {
			o.ConfirmRules = fn
		}
	}
}

// WithSubmit sets the submit action.
func WithSubmit(fn SubmitFunc) OptionFn {
	return func(o *Options) {
		o.Submit = fn
	}
}

// WithListener sets the state-change observer.
func WithListener(fn Listener) OptionFn {
	return func(o *Options) {
		o.Listener = fn
	}
}

// WithLogger sets the structured logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
