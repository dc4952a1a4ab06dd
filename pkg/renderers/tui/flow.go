// Package tui runs the registration form as a terminal prompt sequence. Each
// prompt validates inline with the same rules the reactive pipeline uses; the
// confirmation prompt compares against the collected password, which plays
// the role of the browser's post-blur cross-check.
package tui

import (
	"context"
	"errors"

	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/validate"
)

// Flow drives the three registration prompts and surfaces the summary.
type Flow struct {
	driver PromptDriver
	rules  Rules
}

// New constructs a flow with the survey driver and stock rules.
func New(options ...Option) *Flow {
	f := &Flow{
		driver: newSurveyDriver(),
		rules: Rules{
			Email:    validate.EmailRules(),
			Password: validate.PasswordRules(),
			Confirm:  validate.ConfirmRules,
			Labels: map[form.Field]string{
				form.FieldEmail:    "Email",
				form.FieldPassword: "Password",
				form.FieldConfirm:  "Confirm password",
			},
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Run prompts for all three fields and returns the composed summary. The
// summary is also printed through the driver, mirroring the browser's
// submit notification.
func (f *Flow) Run(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New("tui: context is required")
	}
	if f.driver == nil {
		return "", errors.New("tui: prompt driver is nil")
	}

	email, err := f.driver.Input(ctx, InputConfig{
		Message:   f.label(form.FieldEmail),
		Validator: validate.PromptValidator(f.rules.Email...),
	})
	if err != nil {
		return "", err
	}

	password, err := f.driver.Password(ctx, InputConfig{
		Message:   f.label(form.FieldPassword),
		Validator: validate.PromptValidator(f.rules.Password...),
	})
	if err != nil {
		return "", err
	}

	confirm, err := f.driver.Password(ctx, InputConfig{
		Message: f.label(form.FieldConfirm),
		Validator: func(ans interface{}) error {
			value, _ := ans.(string)
			if result := validate.Run(value, f.rules.Confirm(password)...); !result.Valid {
				return errors.New(result.Message)
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}

	summary := form.Summary(email, password, confirm)
	if err := f.driver.Info(ctx, summary); err != nil {
		return "", err
	}
	return summary, nil
}

func (f *Flow) label(field form.Field) string {
	if label, ok := f.rules.Labels[field]; ok && label != "" {
		return label
	}
	return string(field)
}
