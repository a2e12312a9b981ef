// Package grocery turns the ingredient lines of planned recipes into a
// grocery list: parse, aggregate, classify into shopping sections, format.
package grocery

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// ligatures are not decomposed by NFD.
	ligatures = strings.NewReplacer("œ", "oe", "Œ", "oe", "æ", "ae", "Æ", "ae")

	// parenRe matches a parenthesized group with at most one nested level.
	parenRe = regexp.MustCompile(`\([^()]*(?:\([^()]*\)[^()]*)*\)`)
	spaceRe = regexp.MustCompile(`\s+`)

	// apostrophes become a word break so "d'huile" stays "d huile".
	apostropheRe = regexp.MustCompile(`['’‘` + "`" + `]`)

	leadingQtyRe = regexp.MustCompile(
		`^(?:\d+/\d+|\d+(?:\.\d+)?)\s*` +
			`(?:(?:kg|mg|ml|cl|cs|cc|pz|g|l|t|x|tranches?|tasses?|boites?|pincees?)(?:\s+|$)|(?:cuill\.|bo\.)\s*|(?:\s+|$))`)

	leadingSpoonRe = regexp.MustCompile(
		`^(?:(?:\d+/\d+|\d+(?:\.\d+)?)\s*)?` +
			`(?:c\.?|cuill\.?|cuilleres?)\s*a\s*(?:cafe|soupe)\.?(?:\s+|$)(?:(?:de|d)(?:\s+|$))?`)

	leadingDeterminerRe = regexp.MustCompile(`^(?:de|d)\s+`)
)

// Normalize canonicalizes a raw ingredient line into the key used for
// grouping and classification. It is pure and idempotent.
//
// Steps:
//   - lowercase, fold ligatures, strip diacritics
//   - drop parenthesized text (one nested level)
//   - drop apostrophes and commas, collapse whitespace
//   - strip leading quantity/unit tokens, spoon phrases and "de"/"d" until stable
func Normalize(raw string) string {
	s := removeParens(fold(raw))
	s = apostropheRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, ",", "")
	s = collapse(s)

	for {
		prev := s
		s = collapse(leadingSpoonRe.ReplaceAllString(s, ""))
		s = collapse(leadingQtyRe.ReplaceAllString(s, ""))
		s = collapse(leadingSpoonRe.ReplaceAllString(s, ""))
		s = collapse(leadingDeterminerRe.ReplaceAllString(s, ""))
		if s == prev {
			return s
		}
	}
}

// fold lowercases s and removes diacritics ("Crème Fraîche" -> "creme fraiche").
func fold(s string) string {
	s = ligatures.Replace(strings.ToLower(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// removeParens drops parenthesized groups until none are left, which also
// covers nesting deeper than parenRe handles in one pass.
func removeParens(s string) string {
	for {
		out := parenRe.ReplaceAllString(s, " ")
		if out == s {
			return s
		}
		s = out
	}
}

func stripParens(s string) string {
	return collapse(removeParens(s))
}
