package match

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Explain builds the "how it helps" sentence for a feature description.
//
// Trailing periods and spaces are trimmed from description and only its first
// character is lowercased, so acronyms and proper nouns later in the text survive.
func Explain(painPoint, description string) string {
	desc := strings.TrimRight(description, ". ")
	if desc != "" {
		_, size := utf8.DecodeRuneInString(desc)
		desc = lower(desc[:size]) + desc[size:]
	}
	return fmt.Sprintf("To address the issue of '%s', this feature %s.", lower(painPoint), desc)
}
