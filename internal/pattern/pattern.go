// Package pattern recognizes structural artifacts inside token sequences:
// life-date ranges attached to author names and bracketed annotations.
// Matchers return spans; the pipeline deletes them right-to-left so earlier
// indices stay valid.
package pattern

import (
	"regexp"
	"strings"
)

// Span marks a half-open [Start, End) range of tokens to delete.
type Span struct {
	Start int
	End   int
}

var (
	// A life-date artifact in a single token: a dash-separated year pair
	// with optional surrounding delimiters. The second year may be absent
	// for living authors ("(1950-)"). A bare year without a dash never
	// matches.
	lifeDateTokenRe = regexp.MustCompile(`^[(\[]?\d{3,4}\s*[-–—]\s*\d{0,4}[)\]]?$`)

	// Joined interior of a multi-token delimited run.
	yearRangeRe = regexp.MustCompile(`^\d{3,4}[-–—]\d{0,4}$`)
)

// LifeDates returns the non-overlapping spans of life-date artifacts in
// tokens. It matches the single-token form ("(1950-2018)", or "1950-2018"
// after punctuation stripping) and short delimited runs produced by
// aggressive tokenizers: "(", "1950-2018", ")" with bare delimiters, or
// "(1950", "-", "2018)" with delimiters attached to the years.
func LifeDates(tokens []string) []Span {
	var spans []Span
	for i := 0; i < len(tokens); {
		if lifeDateTokenRe.MatchString(tokens[i]) {
			spans = append(spans, Span{i, i + 1})
			i++
			continue
		}
		if end, ok := delimitedLifeDate(tokens, i); ok {
			spans = append(spans, Span{i, end})
			i = end
			continue
		}
		i++
	}
	return spans
}

// delimitedLifeDate matches a bounded run opening with "(" or "[" (bare or
// attached to the first year) whose joined interior is a dash-separated
// year pair. Returns the exclusive end index on match.
func delimitedLifeDate(tokens []string, start int) (int, bool) {
	var opening, closing string
	switch {
	case strings.HasPrefix(tokens[start], "("):
		opening, closing = "(", ")"
	case strings.HasPrefix(tokens[start], "["):
		opening, closing = "[", "]"
	default:
		return 0, false
	}

	// A run longer than "(", "1950", "-", "2018", ")" is no longer a
	// plausible date range.
	const window = 4
	for j := start + 1; j < len(tokens) && j <= start+window; j++ {
		if !strings.HasSuffix(tokens[j], closing) {
			continue
		}
		joined := strings.Join(tokens[start:j+1], "")
		interior := strings.TrimSuffix(strings.TrimPrefix(joined, opening), closing)
		if yearRangeRe.MatchString(interior) {
			return j + 1, true
		}
		return 0, false
	}
	return 0, false
}

// Delimited returns the non-overlapping spans of tokens enclosed by the
// given delimiter pair, from a token starting with open through the next
// token ending with close (both inclusive). A dangling open delimiter with
// no matching close leaves the remainder untouched.
func Delimited(tokens []string, open, close string) []Span {
	var spans []Span
	for i := 0; i < len(tokens); {
		if !strings.HasPrefix(tokens[i], open) {
			i++
			continue
		}
		matched := false
		for j := i; j < len(tokens); j++ {
			if strings.HasSuffix(tokens[j], close) {
				spans = append(spans, Span{i, j + 1})
				i = j + 1
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return spans
}

// Remove deletes the given spans from tokens, right-to-left, preserving the
// relative order of survivors. Spans must be sorted ascending and
// non-overlapping, as returned by the matchers. The input slice is not
// modified.
func Remove(tokens []string, spans []Span) []string {
	if len(spans) == 0 {
		return tokens
	}
	out := make([]string, len(tokens))
	copy(out, tokens)
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		out = append(out[:s.Start], out[s.End:]...)
	}
	return out
}
