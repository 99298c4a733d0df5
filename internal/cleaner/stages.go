package cleaner

import (
	"strings"

	"github.com/bibkit/bclean/internal/pattern"
	"github.com/bibkit/bclean/internal/stemmer"
	"github.com/bibkit/bclean/internal/stopwords"
	"github.com/bibkit/bclean/internal/token"
)

// mapStage lifts a per-token primitive into a Stage, rewriting in place.
func mapStage(fn func(string) string) Stage {
	return func(tokens []string) []string {
		for i, t := range tokens {
			tokens[i] = fn(t)
		}
		return tokens
	}
}

// filterStage keeps the tokens for which keep returns true, preserving
// order and reusing the backing array.
func filterStage(keep func(string) bool) Stage {
	return func(tokens []string) []string {
		out := tokens[:0]
		for _, t := range tokens {
			if keep(t) {
				out = append(out, t)
			}
		}
		return out
	}
}

// FoldCase lowercases every token with full Unicode case folding.
func FoldCase() Stage { return mapStage(token.FoldCase) }

// FoldDiacritics replaces accented letters with their base equivalents.
func FoldDiacritics() Stage { return mapStage(token.FoldDiacritics) }

// FoldASCII transliterates every token to best-effort ASCII.
func FoldASCII() Stage { return mapStage(token.FoldASCII) }

// DecodeEntities decodes HTML-entity-shaped tokens.
func DecodeEntities() Stage { return mapStage(token.DecodeEntities) }

// StripPunctuation removes punctuation and symbols from every token,
// keeping interior hyphens. Tokens may come out empty; DropBlank removes
// them.
func StripPunctuation() Stage { return mapStage(token.StripPunctuation) }

// DropBlank removes empty and whitespace-only tokens and trims the
// survivors.
func DropBlank() Stage {
	return func(tokens []string) []string {
		out := tokens[:0]
		for _, t := range tokens {
			if token.IsBlank(t) {
				continue
			}
			out = append(out, strings.TrimSpace(t))
		}
		return out
	}
}

// MinLength removes tokens of n runes or fewer. With n == 0 every token
// survives, which is what keeps single-letter initials alive.
func MinLength(n int) Stage {
	return filterStage(func(t string) bool {
		return len([]rune(t)) > n
	})
}

// StopwordFilter removes tokens present in the given set. Membership is
// exact match, so this stage belongs after case folding and punctuation
// stripping.
func StopwordFilter(set stopwords.Set) Stage {
	return filterStage(func(t string) bool {
		return !set.Contains(t)
	})
}

// LifeDateStrip deletes life-date spans ("(1950-2018)" and equivalents)
// from the sequence. Bare numeric tokens are left alone.
func LifeDateStrip() Stage {
	return func(tokens []string) []string {
		return pattern.Remove(tokens, pattern.LifeDates(tokens))
	}
}

// AnnotationStrip deletes bracketed annotation spans: everything from a
// token opening "(" or "[" through the matching closing token.
func AnnotationStrip() Stage {
	return func(tokens []string) []string {
		tokens = pattern.Remove(tokens, pattern.Delimited(tokens, "(", ")"))
		return pattern.Remove(tokens, pattern.Delimited(tokens, "[", "]"))
	}
}

// SubtitleSplit truncates the sequence at the first strong punctuation
// mark (".", ":", "?", "!"), discarding the subtitle. A token that carries
// content before the mark ("dolor:") is kept; a bare mark is not.
func SubtitleSplit() Stage {
	return func(tokens []string) []string {
		for i, t := range tokens {
			if !strings.HasSuffix(t, ".") && !strings.HasSuffix(t, ":") &&
				!strings.HasSuffix(t, "?") && !strings.HasSuffix(t, "!") {
				continue
			}
			if len(t) > 1 {
				return tokens[:i+1]
			}
			return tokens[:i]
		}
		return tokens
	}
}

// Stem applies the stemmer to every token. The stemmer contract guarantees
// pass-through on unknown tokens, so this stage never changes the token
// count.
func Stem(st stemmer.Stemmer) Stage {
	return mapStage(st.Stem)
}
