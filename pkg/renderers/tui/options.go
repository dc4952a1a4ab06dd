package tui

import (
	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/validate"
)

// Rules supplies the validator chains the flow prompts with. The zero value
// falls back to the stock registration rules.
type Rules struct {
	Email    []validate.Func
	Password []validate.Func
	Confirm  form.ConfirmRuleFunc
	Labels   map[form.Field]string
}

// Option configures the registration flow.
type Option func(*Flow)

// WithPromptDriver overrides the prompt driver used by the flow.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Flow) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithRules overrides the validator chains and labels.
func WithRules(rules Rules) Option {
	return func(f *Flow) {
		if rules.Email != nil {
			f.rules.Email = rules.Email
		}
		if rules.Password != nil {
			f.rules.Password = rules.Password
		}
		if rules.Confirm != nil {
			f.rules.Confirm = rules.Confirm
		}
		for field, label := range rules.Labels {
			f.rules.Labels[field] = label
		}
	}
}
