package registration

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-regform/pkg/form"
)

// Realtime event names shared with the embedded client script.
const (
	EventFieldInput    = "field:input"
	EventFieldBlur     = "field:blur"
	EventFormSubmit    = "form:submit"
	EventFormState     = "form:state"
	EventFormSubmitted = "form:submitted"
)

// StatePayload is pushed to the client on every display-state change.
type StatePayload struct {
	Errors        map[string]string `json:"errors"`
	SubmitEnabled bool              `json:"submitEnabled"`
}

// SubmittedPayload is pushed when the submit control fires.
type SubmittedPayload struct {
	Summary string `json:"summary"`
}

// emitFunc sends one named event to the connected client.
type emitFunc func(event string, payload any)

// session bridges decoded transport events into one form pipeline. It is
// transport-agnostic so the bridge logic tests without a socket server.
type session struct {
	id       string
	pipeline *form.Pipeline
	cancel   context.CancelFunc
	logger   *slog.Logger
	policy   *bluemonday.Policy
}

// newSession builds and starts a pipeline for one connection. Display-state
// changes and submit results flow back through emit.
func newSession(parent context.Context, opts Options, emit emitFunc) *session {
	ctx, cancel := context.WithCancel(parent)
	s := &session{
		id:     uuid.NewString(),
		cancel: cancel,
		policy: bluemonday.StrictPolicy(),
	}
	s.logger = opts.Logger.With("session", s.id)

	pipeOpts := []form.OptionFn{
		form.WithDebounce(opts.Debounce),
		form.WithLogger(s.logger),
	}
	pipeOpts = append(pipeOpts, opts.FormOptions...)
	pipeOpts = append(pipeOpts,
		form.WithListener(func(snap form.Snapshot) {
			emit(EventFormState, statePayload(snap))
		}),
		form.WithSubmit(func(summary string) {
			// The summary echoes user input back into the page; strip any
			// markup before it reaches the DOM.
			emit(EventFormSubmitted, SubmittedPayload{Summary: s.policy.Sanitize(summary)})
		}),
	)

	s.pipeline = form.New(pipeOpts...)
	s.pipeline.Start(ctx)
	return s
}

func statePayload(snap form.Snapshot) StatePayload {
	errs := make(map[string]string, len(snap.Errors))
	for field, msg := range snap.Errors {
		errs[string(field)] = msg
	}
	return StatePayload{Errors: errs, SubmitEnabled: snap.SubmitEnabled}
}

// HandleInput decodes a field:input payload and feeds the pipeline.
func (s *session) HandleInput(datas ...any) {
	field, value, ok := decodeFieldEvent(datas)
	if !ok {
		s.logger.Debug("malformed input event dropped")
		return
	}
	s.pipeline.Input(field, value)
}

// HandleBlur decodes a field:blur payload and feeds the pipeline.
func (s *session) HandleBlur(datas ...any) {
	field, _, ok := decodeFieldEvent(datas)
	if !ok {
		s.logger.Debug("malformed blur event dropped")
		return
	}
	s.pipeline.Blur(field)
}

// HandleSubmit feeds a submit click.
func (s *session) HandleSubmit(...any) {
	s.pipeline.Click()
}

// Close tears the pipeline down.
func (s *session) Close() {
	s.cancel()
}

// decodeFieldEvent unpacks the {field, value} object the client emits. The
// transport hands JSON payloads over as map[string]any.
func decodeFieldEvent(datas []any) (form.Field, string, bool) {
	if len(datas) == 0 {
		return "", "", false
	}
	payload, ok := datas[0].(map[string]any)
	if !ok {
		return "", "", false
	}
	name, ok := payload["field"].(string)
	if !ok || name == "" {
		return "", "", false
	}
	value, _ := payload["value"].(string)
	return form.Field(name), value, true
}
