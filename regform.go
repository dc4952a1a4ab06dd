// Package regform ties the registration form together: validation rules
// compiled from the embedded OpenAPI document, the reactive form pipeline,
// and the browser component, each assembled with one call.
package regform

import (
	"context"

	"github.com/goliatone/go-regform/components/registration"
	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
	"github.com/goliatone/go-regform/pkg/schema"
)

// NewPipeline builds an unstarted form pipeline with the schema-compiled
// rules. Additional options are applied after the rules, so callers can
// still override anything.
func NewPipeline(ctx context.Context, fns ...form.OptionFn) (*form.Pipeline, error) {
	def, err := schema.Load(ctx)
	if err != nil {
		return nil, err
	}
	opts := append(def.Options(), fns...)
	return form.New(opts...), nil
}

// NewComponent builds the browser component with the schema-compiled rules
// and labels. Additional options are applied last.
func NewComponent(ctx context.Context, fns ...registration.OptionFn) (*registration.Component, error) {
	def, err := schema.Load(ctx)
	if err != nil {
		return nil, err
	}
	opts := []registration.OptionFn{
		registration.WithFormOptions(def.Options()...),
		registration.WithLabels(map[form.Field]string{
			form.FieldEmail:    def.Label(form.FieldEmail),
			form.FieldPassword: def.Label(form.FieldPassword),
			form.FieldConfirm:  def.Label(form.FieldConfirm),
		}),
	}
	opts = append(opts, fns...)
	return registration.New(opts...), nil
}

// NewFlow builds the terminal prompt flow with the schema-compiled rules.
func NewFlow(ctx context.Context, fns ...tui.Option) (*tui.Flow, error) {
	def, err := schema.Load(ctx)
	if err != nil {
		return nil, err
	}
	opts := []tui.Option{
		tui.WithRules(tui.Rules{
			Email:    def.EmailRules(),
			Password: def.PasswordRules(),
			Confirm:  def.ConfirmRules,
			Labels: map[form.Field]string{
				form.FieldEmail:    def.Label(form.FieldEmail),
				form.FieldPassword: def.Label(form.FieldPassword),
				form.FieldConfirm:  def.Label(form.FieldConfirm),
			},
		}),
	}
	opts = append(opts, fns...)
	return tui.New(opts...), nil
}
