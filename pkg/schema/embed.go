package schema

import "embed"

//go:embed assets
var assets embed.FS

// defaultDocument returns the embedded OpenAPI registration document.
func defaultDocument() []byte {
	raw, err := assets.ReadFile("assets/registration.yaml")
	if err != nil {
		panic("schema: embedded registration document missing: " + err.Error())
	}
	return raw
}

// defaultOverlay returns the embedded label/message overlay.
func defaultOverlay() []byte {
	raw, err := assets.ReadFile("assets/messages.yaml")
	if err != nil {
		panic("schema: embedded message overlay missing: " + err.Error())
	}
	return raw
}
