package templating

import (
	"regexp"
	"strings"
)

type markupRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// markupRules is the inline markup pipeline, applied top to bottom. The order
// is an invariant, not a convenience: bold must run before italic so the
// asterisk pairs of a bold span are not consumed as two italics, and the link
// rule runs after the delimiter styles so bracket syntax inside already
// transformed spans stays intact. Changing the order corrupts output.
var markupRules = []markupRule{
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "<strong>$1</strong>"},
	{regexp.MustCompile(`\*(.+?)\*`), "<em>$1</em>"},
	{regexp.MustCompile(`_(.+?)_`), "<u>$1</u>"},
	{regexp.MustCompile(`\[(.+?)\]\((.+?)\)`), `<a href="$2">$1</a>`},
	{regexp.MustCompile(`\n`), "<br>"},
}

// Render produces a human-readable HTML preview of body. Every placeholder
// whose token has an entry in bindings is replaced by the bound value; markers
// without a binding are left verbatim, since showing the raw marker is more
// useful in a preview than dropping it. Rendering never fails — malformed
// markup is passed through as literal text.
func Render(body string, bindings map[string]string) string {
	out := substitute(body, bindings)
	for _, rule := range markupRules {
		out = rule.pattern.ReplaceAllString(out, rule.replacement)
	}
	return out
}

// substitute performs a single literal replacement pass driven by the scanner
// offsets of the original body. Bound values are never rescanned, so a value
// containing {{ }} pairs survives untouched and cannot trigger further
// expansion.
func substitute(body string, bindings map[string]string) string {
	matches := Placeholders(body)
	if len(matches) == 0 {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	last := 0
	for _, m := range matches {
		value, ok := bindings[m.Token]
		if !ok {
			continue
		}
		b.WriteString(body[last:m.Start])
		b.WriteString(value)
		last = m.End
	}
	b.WriteString(body[last:])
	return b.String()
}
