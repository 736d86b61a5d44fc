package templating

import (
	"reflect"
	"testing"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []Match
	}{
		{
			name: "empty body",
			body: "",
			want: nil,
		},
		{
			name: "no markers",
			body: "plain text with no placeholders",
			want: nil,
		},
		{
			name: "single marker",
			body: "Hello {{contact-name}}!",
			want: []Match{{Token: "contact-name", Start: 6, End: 22}},
		},
		{
			name: "whitespace around token is trimmed",
			body: "Hi {{ contact-name }}",
			want: []Match{{Token: "contact-name", Start: 3, End: 21}},
		},
		{
			name: "multiple markers in order",
			body: "{{a}} then {{b}}",
			want: []Match{
				{Token: "a", Start: 0, End: 5},
				{Token: "b", Start: 11, End: 16},
			},
		},
		{
			name: "unterminated marker is ignored",
			body: "broken {{contact-name",
			want: nil,
		},
		{
			name: "nested marker matches only the inner pair",
			body: "{{outer {{inner}} }}",
			want: []Match{{Token: "inner", Start: 8, End: 17}},
		},
		{
			name: "whitespace-only token is skipped",
			body: "odd {{   }} marker",
			want: nil,
		},
		{
			name: "single braces are not markers",
			body: "{not} {a} {marker}",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Placeholders(tt.body)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Placeholders(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestPlaceholdersOffsetsSliceBackToMarker(t *testing.T) {
	body := "a {{ first }} b {{second}}"
	for _, m := range Placeholders(body) {
		raw := body[m.Start:m.End]
		if raw[:2] != "{{" || raw[len(raw)-2:] != "}}" {
			t.Errorf("offsets for %q slice to %q, not a full marker", m.Token, raw)
		}
	}
}
