package registration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-regform/pkg/form"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/auth"); got != "/auth/register" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("auth"); got != "/auth/register" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/auth/", WithRoutePath("signup")); got != "/auth/signup" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath(""); got != "/register" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestHandler_ServesRegistrationPage(t *testing.T) {
	handler := HandlerWithOptions(NewOptions(WithTitle("Join us")))

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Join us",
		`id="email"`,
		`id="password"`,
		`id="confirm"`,
		`id="submit"`,
		"disabled",
		EventFieldInput,
		EventFormState,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestHandler_RejectsNonGet(t *testing.T) {
	handler := Handler()
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestRegisterRoutes_RegistersPageAndRealtime(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(ctx, mux, "/auth")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/auth/register" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_RequiresMuxAndContext(t *testing.T) {
	if _, err := RegisterRoutes(context.Background(), nil, "/"); err == nil {
		t.Fatal("expected missing mux to fail")
	}
	if _, err := RegisterRoutes(nil, http.NewServeMux(), "/"); err == nil { //nolint:staticcheck // explicit nil-context contract check
		t.Fatal("expected missing context to fail")
	}
}

func TestComponent_OptionsCopy(t *testing.T) {
	c := New(WithTitle("Join us"), WithRoutePath("/signup"))
	opts := c.Options()
	if opts.Title != "Join us" || opts.RoutePath != "/signup" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	opts.Title = "mutated"
	if c.Options().Title != "Join us" {
		t.Fatal("options copy leaked mutation")
	}

	opts.Labels[form.FieldEmail] = "mutated"
	if got := c.Options().Labels[form.FieldEmail]; got == "mutated" {
		t.Fatal("labels copy leaked mutation")
	}
}
