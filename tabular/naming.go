package tabular

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// NormalizeName converts arbitrary header text into a lowercase ASCII
// identifier: accents are folded away (NFD, strip combining marks, NFC),
// anything outside [A-Za-z0-9] becomes a single underscore, and leading or
// trailing underscores are dropped. Text that reduces to nothing - empty
// strings, punctuation-only headers - yields "unnamed".
func NormalizeName(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, _ := transform.String(fold, name)

	cleaned := nonAlnum.ReplaceAllString(ascii, "_")
	cleaned = strings.ToLower(strings.Trim(cleaned, "_"))

	if cleaned == "" {
		return "unnamed"
	}

	return cleaned
}

// DeduplicateHeaders suffixes repeated headers with _1, _2, ... so that every
// entry in the returned list is unique. The first occurrence of a name is kept
// as-is; length and order are preserved.
//
// A generated suffix can still collide with a pre-existing distinct header
// (e.g. 'col, col, col_1'). That is a known limitation and is left unresolved.
func DeduplicateHeaders(headers []string) []string {
	seen := map[string]int{}
	deduped := make([]string, 0, len(headers))

	for _, h := range headers {
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			deduped = append(deduped, fmt.Sprintf("%s_%d", h, n+1))
		} else {
			seen[h] = 0
			deduped = append(deduped, h)
		}
	}

	return deduped
}
