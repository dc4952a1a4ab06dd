package registration

import (
	"context"

	"github.com/zishang520/socket.io/v2/socket"
)

// NewRealtime builds the socket.io server that carries form events. Each
// connection gets its own pipeline; the pipeline dies with the connection or
// with ctx, whichever ends first.
func NewRealtime(ctx context.Context, opts Options) *socket.Server {
	opts = NewOptions(func(o *Options) { *o = opts })
	io := socket.NewServer(nil, nil)

	io.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		sess := newSession(ctx, opts, func(event string, payload any) {
			if err := client.Emit(event, payload); err != nil {
				opts.Logger.Warn("emit failed", "event", event, "error", err)
			}
		})
		sess.logger.Info("registration session connected", "socket", client.Id())

		client.On(EventFieldInput, sess.HandleInput)
		client.On(EventFieldBlur, sess.HandleBlur)
		client.On(EventFormSubmit, sess.HandleSubmit)
		client.On("disconnect", func(...any) {
			sess.logger.Info("registration session disconnected")
			sess.Close()
		})
	})

	return io
}
