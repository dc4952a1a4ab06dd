package registration

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the full mount path for the page route under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePath)
}

// RegisterRoutes registers the page and realtime handlers under basePath on
// mux. The realtime server lives until ctx is cancelled. It returns the page
// mount path.
func RegisterRoutes(ctx context.Context, mux Mux, basePath string, fns ...OptionFn) (string, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(ctx, mux, basePath, opts)
}

// RegisterRoutesWithOptions registers handlers using a pre-built Options
// value. Callers are expected to pass Options produced by NewOptions so
// defaults apply.
func RegisterRoutesWithOptions(ctx context.Context, mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("registration: missing mux")
	}
	if ctx == nil {
		return "", fmt.Errorf("registration: missing context")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	pattern := mountPath(basePath, opts.RoutePath)
	mux.Handle(pattern, HandlerWithOptions(opts))

	io := NewRealtime(ctx, opts)
	mux.Handle(opts.RealtimePath, io.ServeHandler(nil))
	go func() {
		<-ctx.Done()
		io.Close(nil)
	}()

	return pattern, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
