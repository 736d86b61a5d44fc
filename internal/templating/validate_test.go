package templating

import (
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		declarations []PlaceholderDeclaration
		want         []string
	}{
		{
			name: "clean template",
			body: "Hello {{contact-name}}, welcome to {{company-name}}.",
			declarations: []PlaceholderDeclaration{
				{ID: "contact-name", Required: true},
				{ID: "company-name", Required: true},
			},
			want: nil,
		},
		{
			name: "undefined placeholder",
			body: "Hi {{unknown-field}}",
			want: []string{"Undefined variable: unknown-field"},
		},
		{
			name: "unused required declaration",
			body: "Hello there.",
			declarations: []PlaceholderDeclaration{
				{ID: "contact-name", Required: true},
			},
			want: []string{"Required variable not used: contact-name"},
		},
		{
			name: "empty body only reports unused required",
			body: "",
			declarations: []PlaceholderDeclaration{
				{ID: "order-id", Required: true},
				{ID: "note", Required: false},
			},
			want: []string{"Required variable not used: order-id"},
		},
		{
			name: "system placeholder defined without declarations",
			body: "Sent on {{current-date}} at {{current-time}}",
			want: nil,
		},
		{
			name: "repeated token reported once",
			body: "{{mystery}} and {{mystery}} and {{mystery}}",
			want: []string{"Undefined variable: mystery"},
		},
		{
			name: "undefined findings precede unused-required findings",
			body: "{{broken}}",
			declarations: []PlaceholderDeclaration{
				{ID: "order-id", Required: true},
			},
			want: []string{
				"Undefined variable: broken",
				"Required variable not used: order-id",
			},
		},
		{
			name: "undefined findings keep first-appearance order",
			body: "{{zeta}} {{alpha}} {{zeta}}",
			want: []string{
				"Undefined variable: zeta",
				"Undefined variable: alpha",
			},
		},
		{
			name: "unused-required findings keep declaration order",
			body: "no placeholders",
			declarations: []PlaceholderDeclaration{
				{ID: "second", Required: true},
				{ID: "optional"},
				{ID: "first", Required: true},
			},
			want: []string{
				"Required variable not used: second",
				"Required variable not used: first",
			},
		},
		{
			name: "custom declaration satisfies its own use",
			body: "Your order {{order-id}} shipped.",
			declarations: []PlaceholderDeclaration{
				{ID: "order-id", Required: true},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := DefaultRegistry(tt.declarations)
			got := Validate(tt.body, tt.declarations, registry)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	body := "{{ghost}} for {{contact-name}}"
	declarations := []PlaceholderDeclaration{{ID: "order-id", Required: true}}
	registry := DefaultRegistry(declarations)

	first := Validate(body, declarations, registry)
	second := Validate(body, declarations, registry)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation diverged: %v then %v", first, second)
	}
}

func TestValidateDeclarationCollidingWithSystemID(t *testing.T) {
	// A template may redeclare a system id to override its display metadata.
	// The id stays defined either way, and the required flag on the template
	// declaration is still honoured.
	declarations := []PlaceholderDeclaration{
		{ID: "contact-name", DisplayName: "Recipient", Required: true},
	}
	registry := DefaultRegistry(declarations)

	if got := Validate("Hello {{contact-name}}", declarations, registry); got != nil {
		t.Errorf("colliding declaration should stay defined, got findings %v", got)
	}
	want := []string{"Required variable not used: contact-name"}
	if got := Validate("Hello.", declarations, registry); !reflect.DeepEqual(got, want) {
		t.Errorf("Validate() = %v, want %v", got, want)
	}
}
