package registration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-regform/pkg/validate"
)

type emitRecorder struct {
	mu     sync.Mutex
	states []StatePayload
	final  []SubmittedPayload
}

func (r *emitRecorder) emit(event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch event {
	case EventFormState:
		if state, ok := payload.(StatePayload); ok {
			r.states = append(r.states, state)
		}
	case EventFormSubmitted:
		if final, ok := payload.(SubmittedPayload); ok {
			r.final = append(r.final, final)
		}
	}
}

func (r *emitRecorder) lastState() (StatePayload, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return StatePayload{}, false
	}
	return r.states[len(r.states)-1], true
}

func (r *emitRecorder) submitted() []SubmittedPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]SubmittedPayload(nil), r.final...)
}

func newTestSession(t *testing.T) (*session, *emitRecorder) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	recorder := &emitRecorder{}
	opts := NewOptions(WithDebounce(10 * time.Millisecond))
	sess := newSession(ctx, opts, recorder.emit)
	t.Cleanup(sess.Close)
	return sess, recorder
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func fieldEvent(field, value string) []any {
	return []any{map[string]any{"field": field, "value": value}}
}

func TestSession_PushesFieldErrors(t *testing.T) {
	sess, recorder := newTestSession(t)

	sess.HandleInput(fieldEvent("email", "foo")...)
	waitFor(t, func() bool {
		state, ok := recorder.lastState()
		return ok && state.Errors["email"] == validate.MsgEmailInvalid
	}, "email error never pushed")
}

func TestSession_EnablesSubmitAndEchoesSummary(t *testing.T) {
	sess, recorder := newTestSession(t)

	sess.HandleInput(fieldEvent("email", "a@b.com")...)
	sess.HandleInput(fieldEvent("password", "abcd")...)
	sess.HandleBlur(fieldEvent("confirm", "")...)
	sess.HandleInput(fieldEvent("confirm", "abcd")...)

	waitFor(t, func() bool {
		state, ok := recorder.lastState()
		return ok && state.SubmitEnabled
	}, "submit never enabled")

	sess.HandleSubmit()
	waitFor(t, func() bool {
		final := recorder.submitted()
		return len(final) == 1 &&
			final[0].Summary == "EMail: a@b.com, Password: abcd, Confirm: abcd"
	}, "summary never echoed")
}

func TestSession_SanitizesSummaryMarkup(t *testing.T) {
	sess, recorder := newTestSession(t)

	// Password fields accept arbitrary strings, so markup can reach the
	// summary through them.
	sess.HandleInput(fieldEvent("email", "a@b.com")...)
	sess.HandleInput(fieldEvent("password", "<script>x</script>")...)
	sess.HandleBlur(fieldEvent("confirm", "")...)
	sess.HandleInput(fieldEvent("confirm", "<script>x</script>")...)

	waitFor(t, func() bool {
		state, ok := recorder.lastState()
		return ok && state.SubmitEnabled
	}, "submit never enabled")

	sess.HandleSubmit()
	waitFor(t, func() bool {
		final := recorder.submitted()
		return len(final) == 1
	}, "summary never echoed")

	if got := recorder.submitted()[0].Summary; got != "EMail: a@b.com, Password: , Confirm: " {
		t.Fatalf("markup survived sanitization: %q", got)
	}
}

func TestSession_DropsMalformedPayloads(t *testing.T) {
	sess, recorder := newTestSession(t)

	sess.HandleInput()                         // no payload
	sess.HandleInput("not-an-object")          // wrong shape
	sess.HandleInput(map[string]any{"x": "y"}) // missing field name
	sess.HandleBlur()

	time.Sleep(100 * time.Millisecond)
	if state, ok := recorder.lastState(); ok {
		t.Fatalf("malformed payloads produced state: %+v", state)
	}
}

func TestDecodeFieldEvent(t *testing.T) {
	field, value, ok := decodeFieldEvent(fieldEvent("password", "abcd"))
	if !ok || string(field) != "password" || value != "abcd" {
		t.Fatalf("decode = (%q, %q, %v)", field, value, ok)
	}
	if _, _, ok := decodeFieldEvent([]any{map[string]any{"field": 7}}); ok {
		t.Fatal("numeric field name accepted")
	}
	if _, _, ok := decodeFieldEvent(nil); ok {
		t.Fatal("empty payload accepted")
	}
}
