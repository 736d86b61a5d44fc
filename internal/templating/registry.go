package templating

// PlaceholderKind describes which input control an authoring UI should offer
// for a placeholder. It carries no weight during validation or rendering.
type PlaceholderKind string

const (
	KindText         PlaceholderKind = "text"
	KindNumber       PlaceholderKind = "number"
	KindDate         PlaceholderKind = "date"
	KindPhone        PlaceholderKind = "phone"
	KindEmail        PlaceholderKind = "email"
	KindURL          PlaceholderKind = "url"
	KindContactField PlaceholderKind = "contact-field"
)

// PlaceholderDeclaration describes a single named placeholder. ID is the bare
// token written between the {{ }} markers and must be unique within its scope.
type PlaceholderDeclaration struct {
	ID           string          `json:"id"`
	DisplayName  string          `json:"display_name"`
	Kind         PlaceholderKind `json:"kind"`
	Required     bool            `json:"required"`
	DefaultValue string          `json:"default_value,omitempty"`
	Description  string          `json:"description,omitempty"`
}

// SystemPlaceholders returns the fixed set of placeholders available to every
// template regardless of its own declarations. The slice is freshly allocated
// on each call so callers cannot mutate the shared definition.
func SystemPlaceholders() []PlaceholderDeclaration {
	return []PlaceholderDeclaration{
		{ID: "contact-name", DisplayName: "Contact name", Kind: KindContactField, Description: "Full name of the contact the message is addressed to"},
		{ID: "contact-phone", DisplayName: "Contact phone", Kind: KindPhone},
		{ID: "contact-email", DisplayName: "Contact email", Kind: KindEmail},
		{ID: "company-name", DisplayName: "Company name", Kind: KindText},
		{ID: "agent-name", DisplayName: "Agent name", Kind: KindText, Description: "Name of the operator sending the message"},
		{ID: "current-date", DisplayName: "Current date", Kind: KindDate},
		{ID: "current-time", DisplayName: "Current time", Kind: KindDate},
	}
}

// Registry is the effective placeholder registry for one template: the system
// placeholder set plus the template's own declarations. It is an immutable
// value; build a new one per validation or render call.
type Registry struct {
	system   []PlaceholderDeclaration
	declared []PlaceholderDeclaration
}

// NewRegistry builds a registry from an explicit system set and the template's
// declarations. The system set is passed in rather than read from a package
// global so callers (and tests) control exactly what is defined.
func NewRegistry(system, declared []PlaceholderDeclaration) Registry {
	return Registry{system: system, declared: declared}
}

// DefaultRegistry builds a registry over the standard system placeholder set.
func DefaultRegistry(declared []PlaceholderDeclaration) Registry {
	return NewRegistry(SystemPlaceholders(), declared)
}

// IsDefined reports whether id names a system placeholder or one of the
// template's own declarations. Comparison is exact and case-sensitive.
func (r Registry) IsDefined(id string) bool {
	_, ok := r.Lookup(id)
	return ok
}

// Lookup returns the declaration for id. When a template declaration shares an
// id with a system placeholder, the template's metadata wins.
func (r Registry) Lookup(id string) (PlaceholderDeclaration, bool) {
	for _, d := range r.declared {
		if d.ID == id {
			return d, true
		}
	}
	for _, d := range r.system {
		if d.ID == id {
			return d, true
		}
	}
	return PlaceholderDeclaration{}, false
}
