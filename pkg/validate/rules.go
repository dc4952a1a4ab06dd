package validate

import "regexp"

// Default display messages for the registration fields. The schema overlay
// can replace any of them; these mirror what the form shows out of the box.
const (
	MsgEmailRequired    = "Email is required."
	MsgEmailInvalid     = "Email must be valid."
	MsgPasswordRequired = "Password is required."
	MsgPasswordTooShort = "Password must be at least 4 characters."
	MsgPasswordMismatch = "Password do not match."
)

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 4

// emailPattern accepts the usual local@domain.tld shape. It is a display
// heuristic, not an RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// EmailShape fails when the value does not look like an email address.
func EmailShape(message string) Func {
	return Pattern(emailPattern, message)
}

// EmailRules returns the default email validator chain.
func EmailRules() []Func {
	return []Func{
		Required(MsgEmailRequired),
		EmailShape(MsgEmailInvalid),
	}
}

// PasswordRules returns the default password validator chain.
func PasswordRules() []Func {
	return []Func{
		Required(MsgPasswordRequired),
		MinLength(PasswordMinLength, MsgPasswordTooShort),
	}
}

// ConfirmRules returns the confirmation chain for the given password value.
// The chain is rebuilt on every evaluation so it always compares against the
// latest password.
func ConfirmRules(password string) []Func {
	return []Func{
		EqualTo(password, MsgPasswordMismatch),
	}
}
