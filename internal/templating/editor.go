package templating

// MarkupStyle names one of the inline styles the editor toolbar can apply.
type MarkupStyle string

const (
	StyleBold      MarkupStyle = "bold"
	StyleItalic    MarkupStyle = "italic"
	StyleUnderline MarkupStyle = "underline"
	StyleLink      MarkupStyle = "link"
)

// linkTargetStub is spliced in as the destination of a freshly inserted link
// so the author has something to overwrite.
const linkTargetStub = "https://"

// InsertPlaceholder splices the marker for decl into body at cursor and
// returns the new body together with the cursor position immediately after
// the inserted marker. Out-of-range cursors are clamped to the body bounds.
func InsertPlaceholder(body string, cursor int, decl PlaceholderDeclaration) (string, int) {
	cursor = clamp(cursor, 0, len(body))
	marker := "{{" + decl.ID + "}}"
	return body[:cursor] + marker + body[cursor:], cursor + len(marker)
}

// ApplyInlineMarkup wraps the selected substring in the marker pair for
// style, or turns it into a link with a stub destination. The returned cursor
// sits immediately after the inserted markup. Unknown styles leave the body
// unchanged.
func ApplyInlineMarkup(body string, selStart, selEnd int, style MarkupStyle) (string, int) {
	selStart = clamp(selStart, 0, len(body))
	selEnd = clamp(selEnd, 0, len(body))
	if selEnd < selStart {
		selStart, selEnd = selEnd, selStart
	}
	selected := body[selStart:selEnd]

	var wrapped string
	switch style {
	case StyleBold:
		wrapped = "**" + selected + "**"
	case StyleItalic:
		wrapped = "*" + selected + "*"
	case StyleUnderline:
		wrapped = "_" + selected + "_"
	case StyleLink:
		wrapped = "[" + selected + "](" + linkTargetStub + ")"
	default:
		return body, selEnd
	}

	return body[:selStart] + wrapped + body[selEnd:], selStart + len(wrapped)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
