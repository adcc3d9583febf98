// Package normalize canonicalizes raw merchant text from bank statements
// into stable uppercase keys used by every downstream lookup.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Punctuation that card statements mix into merchant descriptors.
	punct  = regexp.MustCompile(`[-.*\\()、，]`)
	spaces = regexp.MustCompile(`\s+`)
)

// Normalizer derives canonical merchant keys from free-text descriptions.
// The alias table merges known descriptor variants (multiple Amazon billing
// strings, half-width katakana forms) into a single merchant key.
type Normalizer struct {
	aliases map[string]string
}

// New builds a Normalizer from an alias table. Keys and targets are both run
// through the cleaning pipeline up front, so a lookup never depends on how
// the table happened to be written.
func New(aliases map[string]string) *Normalizer {
	m := make(map[string]string, len(aliases))
	for k, v := range aliases {
		m[clean(k)] = clean(v)
	}
	return &Normalizer{aliases: m}
}

// Normalize returns the canonical merchant key for raw description text, or
// "" when the text is blank. It is pure and idempotent; malformed input is
// returned cleaned rather than rejected.
func (n *Normalizer) Normalize(raw string) string {
	key := clean(raw)
	if key == "" {
		return ""
	}
	if target, ok := n.aliases[key]; ok {
		return target
	}
	return key
}

// clean applies the canonicalization steps that precede alias lookup:
// trim, NFKC compatibility normalization (folds full-width and half-width
// variants), uppercase, punctuation to spaces, whitespace collapse.
func clean(s string) string {
	s = strings.TrimSpace(s)
	s = norm.NFKC.String(s)
	s = strings.ToUpper(s)
	s = punct.ReplaceAllString(s, " ")
	s = spaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
