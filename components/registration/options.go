package registration

import (
	"log/slog"
	"time"

	"github.com/goliatone/go-regform/pkg/form"
)

// Options configures the registration component: where it mounts, how the
// page presents itself, and how each per-connection pipeline behaves.
type Options struct {
	// RoutePath is the page route relative to the mount base path.
	RoutePath string
	// RealtimePath is where the realtime transport is served. It must match
	// the path the embedded client script connects to.
	RealtimePath string
	// Title is the page heading.
	Title string
	// Debounce is the quiet period each field pipeline applies to raw input.
	Debounce time.Duration
	// Labels maps fields to their display labels.
	Labels map[form.Field]string
	// FormOptions are applied to every per-connection pipeline, typically to
	// install schema-compiled rules.
	FormOptions []form.OptionFn

	Logger *slog.Logger
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the stock component configuration.
func DefaultOptions() Options {
	return Options{
		RoutePath:    "/register",
		RealtimePath: "/socket.io/",
		Title:        "Create account",
		Debounce:     400 * time.Millisecond,
		Labels: map[form.Field]string{
			form.FieldEmail:    "Email",
			form.FieldPassword: "Password",
			form.FieldConfirm:  "Confirm password",
		},
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
	defaults := DefaultOptions()
	if opts.RoutePath == "" {
		opts.RoutePath = defaults.RoutePath
	}
	if opts.RealtimePath == "" {
		opts.RealtimePath = defaults.RealtimePath
	}
	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaults.Debounce
	}
	if opts.Labels == nil {
		opts.Labels = defaults.Labels
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.FormOptions != nil {
		opts.FormOptions = append([]form.OptionFn{}, opts.FormOptions...)
	}
	return opts
}

// WithRoutePath overrides the page route.
func WithRoutePath(path string) OptionFn {
	return func(o *Options) { o.RoutePath = path }
}

// WithRealtimePath overrides the realtime transport path.
func WithRealtimePath(path string) OptionFn {
	return func(o *Options) { o.RealtimePath = path }
}

// WithTitle overrides the page heading.
func WithTitle(title string) OptionFn {
	return func(o *Options) { o.Title = title }
}

// WithDebounce overrides the per-field input quiet period.
func WithDebounce(d time.Duration) OptionFn {
	return func(o *Options) {
		if d > 0 {
			o.Debounce = d
		}
	}
}

// WithLabels overrides individual field labels.
func WithLabels(labels map[form.Field]string) OptionFn {
	return func(o *Options) {
		if o.Labels == nil {
			o.Labels = make(map[form.Field]string, len(labels))
		}
		for field, label := range labels {
			o.Labels[field] = label
		}
	}
}

// WithFormOptions appends pipeline options applied to every connection.
func WithFormOptions(fns ...form.OptionFn) OptionFn {
	return func(o *Options) {
		o.FormOptions = append(o.FormOptions, fns...)
	}
}

// WithLogger sets the component logger.
func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
