package validate

import "errors"

// PromptValidator adapts a validator chain to the survey answer-validator
// shape so terminal prompts can reuse the form rules inline.
func PromptValidator(fns ...Func) func(ans interface{}) error {
	return func(ans interface{}) error {
		value, _ := ans.(string)
		if result := Run(value, fns...); !result.Valid {
			return errors.New(result.Message)
		}
		return nil
	}
}
