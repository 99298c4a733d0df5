// Package token provides the per-token normalization primitives shared by
// all cleaner variants. Every function is total: any input token maps to an
// output token (possibly empty), never to an error. Tokens that come out
// empty are dropped later by the pipeline's blank filter.
package token

import (
	"html"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldCase lowercases a token using full Unicode case folding, so non-ASCII
// letters fold correctly ("É" -> "é", "ß" -> "ss").
func FoldCase(tok string) string {
	return cases.Fold().String(tok)
}

// FoldDiacritics decomposes a token to NFD, drops combining marks, and
// recomposes, yielding base-letter equivalents ("é" -> "e", "naïve" -> "naive").
func FoldDiacritics(tok string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, tok)
	if err != nil {
		return tok
	}
	return out
}

// FoldASCII transliterates a token to its best-effort ASCII equivalent.
// Unlike FoldDiacritics it also handles non-Latin scripts ("Æon" -> "AEon").
func FoldASCII(tok string) string {
	return unidecode.Unidecode(tok)
}

// StripPunctuation removes punctuation and symbol runes, keeping letters,
// digits, and interior hyphens ("W." -> "W", "dolor:" -> "dolor",
// "Jean-Pierre" unchanged). The result may be empty.
func StripPunctuation(tok string) string {
	rs := []rune(tok)
	var b strings.Builder
	b.Grow(len(tok))
	for i, r := range rs {
		// Interior hyphens join compound words and survive.
		if r == '-' && i > 0 && i < len(rs)-1 {
			b.WriteRune(r)
			continue
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DecodeEntities replaces an HTML-entity-shaped token ("&amp;") with its
// decoded form. Other tokens pass through untouched.
func DecodeEntities(tok string) string {
	if strings.HasPrefix(tok, "&") && strings.HasSuffix(tok, ";") {
		return html.UnescapeString(tok)
	}
	return tok
}

// IsBlank reports whether a token is empty or whitespace-only.
func IsBlank(tok string) bool {
	return strings.TrimSpace(tok) == ""
}
