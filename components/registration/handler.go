package registration

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-regform/pkg/form"
)

const pageTemplate = "templates/registration.html"

var (
	templateSetOnce sync.Once
	templateSet     *pongo2.TemplateSet
)

func pageTemplateSet() *pongo2.TemplateSet {
	templateSetOnce.Do(func() {
		templateSet = pongo2.NewSet("registration", pongo2.NewFSLoader(templates))
	})
	return templateSet
}

// Handler returns the page handler with default options.
func Handler() http.Handler {
	return HandlerWithOptions(DefaultOptions())
}

// HandlerWithOptions returns a net/http handler serving the registration page.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		page, err := renderPage(opts)
		if err != nil {
			opts.Logger.Error("render registration page", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(page)
		}
	})
}

func renderPage(opts Options) ([]byte, error) {
	tmpl, err := pageTemplateSet().FromFile(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("registration: load template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteWriter(pongo2.Context{
		"title":          opts.Title,
		"realtime_path":  opts.RealtimePath,
		"email_label":    opts.Labels[form.FieldEmail],
		"password_label": opts.Labels[form.FieldPassword],
		"confirm_label":  opts.Labels[form.FieldConfirm],
	}, &buf)
	if err != nil {
		return nil, fmt.Errorf("registration: execute template: %w", err)
	}
	return buf.Bytes(), nil
}
