package colorblind

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldName reduces a user-supplied name to a comparison key: Unicode case
// folded, with spaces, hyphens and underscores removed. "ISO9241-3" and
// "iso9241_3" share a key.
func foldName(s string) string {
	// A Caser is stateful, so each call gets its own.
	folded := cases.Fold().String(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, folded)
}
