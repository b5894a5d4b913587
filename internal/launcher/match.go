package launcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchesFilter reports whether the item survives the search filter.
//
// A blank query matches everything. Otherwise the query must be a substring
// of the label, compared case- and accent-insensitively ("cafe" matches
// "Café Finder" and vice versa). App items additionally match on their raw
// package name, case-insensitively.
func (it Item) MatchesFilter(query string) bool {
	if query == "" {
		return true
	}
	if containsFold(it.Label, query) {
		return true
	}
	if it.Kind == KindApp && strings.Contains(strings.ToLower(it.PackageName), strings.ToLower(query)) {
		return true
	}
	return false
}

// foldAccents strips combining marks: NFD decomposition, drop the marks,
// recompose. "Café" becomes "Cafe".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(
		strings.ToLower(foldAccents(s)),
		strings.ToLower(foldAccents(substr)),
	)
}
