// Package registration serves a browser registration form whose validation
// runs server-side through a reactive pipeline. The page posts nothing: every
// keystroke, blur, and click travels over a socket.io connection, and error
// messages, the submit-enabled flag, and the final summary travel back.
package registration

import (
	"context"
	"net/http"

	"github.com/goliatone/go-regform/pkg/form"
)

// Component wraps the registration page, its realtime bridge, and routing
// helpers behind one configuration.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	opts := c.opts
	opts.Labels = make(map[form.Field]string, len(c.opts.Labels))
	for field, label := range c.opts.Labels {
		opts.Labels[field] = label
	}
	opts.FormOptions = append([]form.OptionFn(nil), c.opts.FormOptions...)
	return opts
}

// Handler returns the page handler.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return HandlerWithOptions(c.opts)
}

// RegisterRoutes registers the page and realtime handlers under basePath.
func (c *Component) RegisterRoutes(ctx context.Context, mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(ctx, mux, basePath)
	}
	return RegisterRoutesWithOptions(ctx, mux, basePath, c.opts)
}
