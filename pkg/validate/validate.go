// Package validate provides the pure field validators behind the
// registration form: small composable rules producing Result values that the
// form pipeline routes to error displays.
package validate

import "regexp"

// Result captures the outcome of validating a single field value. Valid is
// true exactly when Message is empty. Results are immutable; each validator
// call produces a fresh value.
type Result struct {
	Valid   bool
	Value   string
	Message string
}

// OK returns a passing Result for value.
func OK(value string) Result {
	return Result{Valid: true, Value: value}
}

// Fail returns a failing Result carrying the display message.
func Fail(value, message string) Result {
	return Result{Value: value, Message: message}
}

// Func is a pure validator: it maps a raw field value to a Result and has no
// side effects.
type Func func(value string) Result

// Run evaluates validators in order, short-circuiting on the first failure.
// When every validator passes it returns the last passing Result; with no
// validators the value passes trivially.
func Run(value string, fns ...Func) Result {
	result := OK(value)
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		result = fn(value)
		if !result.Valid {
			return result
		}
	}
	return result
}

// Required fails on the empty string.
func Required(message string) Func {
	return func(value string) Result {
		if value == "" {
			return Fail(value, message)
		}
		return OK(value)
	}
}

// MinLength fails when the value is shorter than n characters.
func MinLength(n int, message string) Func {
	return func(value string) Result {
		if len([]rune(value)) < n {
			return Fail(value, message)
		}
		return OK(value)
	}
}

// Pattern fails when the value does not match re.
func Pattern(re *regexp.Regexp, message string) Func {
	return func(value string) Result {
		if !re.MatchString(value) {
			return Fail(value, message)
		}
		return OK(value)
	}
}

// EqualTo fails when the value differs from other. Comparison is exact and
// case-sensitive.
func EqualTo(other, message string) Func {
	return func(value string) Result {
		if value != other {
			return Fail(value, message)
		}
		return OK(value)
	}
}
