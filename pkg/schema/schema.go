// Package schema compiles the registration form's validation rules from an
// OpenAPI document plus a YAML message overlay. The embedded defaults
// describe the stock email/password/confirm form; callers can supply their
// own documents to change constraints without touching pipeline code.
package schema

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/validate"
)

// registrationSchema is the component schema the rules are compiled from.
const registrationSchema = "Registration"

// Definition is the compiled rule set for the registration form.
type Definition struct {
	email    []validate.Func
	password []validate.Func
	confirm  form.ConfirmRuleFunc
	overlay  Overlay
}

// Load compiles the embedded registration document and overlay.
func Load(ctx context.Context) (*Definition, error) {
	return FromDocument(ctx, defaultDocument(), defaultOverlay())
}

// FromDocument compiles a Definition from a raw OpenAPI document and a YAML
// message overlay. The document must expose a Registration object schema with
// email, password, and confirm string properties.
func FromDocument(ctx context.Context, doc, overlayRaw []byte) (*Definition, error) {
	if len(doc) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}

	overlay, err := ParseOverlay(overlayRaw)
	if err != nil {
		return nil, err
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("schema: validate document: %w", err)
	}

	if spec.Components == nil {
		return nil, fmt.Errorf("schema: document has no %s schema", registrationSchema)
	}
	ref, ok := spec.Components.Schemas[registrationSchema]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: document has no %s schema", registrationSchema)
	}
	object := ref.Value

	def := &Definition{overlay: overlay}

	def.email, err = compileField(object, string(form.FieldEmail), overlay)
	if err != nil {
		return nil, err
	}
	def.password, err = compileField(object, string(form.FieldPassword), overlay)
	if err != nil {
		return nil, err
	}

	// Cross-field equality is not expressible in OpenAPI; only the message
	// comes from the overlay.
	match := overlay.Message(string(form.FieldConfirm), "match", validate.MsgPasswordMismatch)
	def.confirm = func(password string) []validate.Func {
		return []validate.Func{validate.EqualTo(password, match)}
	}

	return def, nil
}

// compileField turns one string property into a validator chain, first rule
// listed wins on failure: required, then format/pattern, then minLength.
func compileField(object *openapi3.Schema, name string, overlay Overlay) ([]validate.Func, error) {
	ref, ok := object.Properties[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: %s schema has no %q property", registrationSchema, name)
	}
	property := ref.Value

	var fns []validate.Func
	if slices.Contains(object.Required, name) {
		fns = append(fns, validate.Required(overlay.Message(name, "required", name+" is required")))
	}
	if property.Format == "email" {
		fns = append(fns, validate.EmailShape(overlay.Message(name, "format", validate.MsgEmailInvalid)))
	}
	if property.Pattern != "" {
		re, err := regexp.Compile(property.Pattern)
		if err != nil {
			return nil, fmt.Errorf("schema: %s property %q pattern: %w", registrationSchema, name, err)
		}
		fns = append(fns, validate.Pattern(re, overlay.Message(name, "pattern", name+" is invalid")))
	}
	if property.MinLength != 0 {
		n := int(property.MinLength)
		msg := overlay.Message(name, "min_length", fmt.Sprintf("%s must be at least %d characters", name, n))
		fns = append(fns, validate.MinLength(n, msg))
	}
	return fns, nil
}

// EmailRules returns the compiled email chain.
func (d *Definition) EmailRules() []validate.Func {
	return d.email
}

// PasswordRules returns the compiled password chain.
func (d *Definition) PasswordRules() []validate.Func {
	return d.password
}

// ConfirmRules builds the confirmation chain for the given password value.
func (d *Definition) ConfirmRules(password string) []validate.Func {
	return d.confirm(password)
}

// Label returns the display label for a field.
func (d *Definition) Label(field form.Field) string {
	return d.overlay.Label(string(field))
}

// Options adapts the definition into pipeline options.
func (d *Definition) Options() []form.OptionFn {
	return []form.OptionFn{
		form.WithEmailRules(d.email...),
		form.WithPasswordRules(d.password...),
		form.WithConfirmRules(d.confirm),
	}
}
