package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Overlay carries display labels and error messages keyed by field name. It
// supplements the OpenAPI document, which stays purely structural.
type Overlay struct {
	Fields map[string]FieldOverlay `yaml:"fields"`
}

// FieldOverlay holds the label and per-rule messages of one field. Message
// keys are rule identifiers: "required", "format", "pattern", "min_length",
// and "match" for the confirmation equality check.
type FieldOverlay struct {
	Label    string            `yaml:"label"`
	Messages map[string]string `yaml:"messages"`
}

// ParseOverlay decodes a YAML overlay document.
func ParseOverlay(raw []byte) (Overlay, error) {
	var overlay Overlay
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return Overlay{}, fmt.Errorf("schema: parse overlay: %w", err)
	}
	return overlay, nil
}

// Label returns the display label for a field, or the field name itself when
// the overlay has none.
func (o Overlay) Label(field string) string {
	entry, ok := o.Fields[field]
	if !ok || entry.Label == "" {
		return field
	}
	return entry.Label
}

// Message returns the display message for a field's rule with fallback.
func (o Overlay) Message(field, rule, fallback string) string {
	entry, ok := o.Fields[field]
	if !ok {
		return fallback
	}
	if msg, ok := entry.Messages[rule]; ok && msg != "" {
		return msg
	}
	return fallback
}
