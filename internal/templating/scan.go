package templating

import (
	"regexp"
	"strings"
)

// markerPattern matches one complete placeholder marker: a {{ pair, a token of
// non-brace characters, and a }} pair. Unterminated or nested markers simply
// fail to match and are left alone.
var markerPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Match is one placeholder occurrence in a template body. Start and End are
// byte offsets of the full marker, including both brace pairs.
type Match struct {
	Token string
	Start int
	End   int
}

// Placeholders scans body and returns every placeholder occurrence in order
// of appearance. Tokens are trimmed of surrounding whitespace; markers whose
// token is empty after trimming are skipped.
func Placeholders(body string) []Match {
	locs := markerPattern.FindAllStringSubmatchIndex(body, -1)
	if locs == nil {
		return nil
	}
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		token := strings.TrimSpace(body[loc[2]:loc[3]])
		if token == "" {
			continue
		}
		matches = append(matches, Match{Token: token, Start: loc[0], End: loc[1]})
	}
	return matches
}
