// Package stemmer provides the pluggable stemming capability used as the
// optional final stage of the title and text cleaners.
package stemmer

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
)

// Stemmer reduces a normalized (lowercase, punctuation-free) token to its
// stem. Implementations must pass unknown or unstemmable tokens through
// unchanged; stemming never drops tokens.
type Stemmer interface {
	Stem(token string) string
}

// Languages the snowball backend supports, keyed by the identifiers we
// accept (BCP-47 base tags and full names).
var snowballLanguages = map[string]string{
	"en": "english", "english": "english",
	"es": "spanish", "spanish": "spanish",
	"fr": "french", "french": "french",
	"ru": "russian", "russian": "russian",
	"sv": "swedish", "swedish": "swedish",
	"no": "norwegian", "nb": "norwegian", "norwegian": "norwegian",
	"hu": "hungarian", "hungarian": "hungarian",
}

// Snowball stems tokens with the snowball algorithm for a fixed language.
// The zero value is not usable; construct with New.
type Snowball struct {
	language string
}

// New returns a snowball stemmer for the given language identifier.
// An unsupported language is a configuration error and fails immediately.
func New(lang string) (*Snowball, error) {
	name, ok := snowballLanguages[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return nil, fmt.Errorf("stemmer: unsupported language %q", lang)
	}
	return &Snowball{language: name}, nil
}

// Language returns the resolved snowball language name.
func (s *Snowball) Language() string { return s.language }

// Stem returns the stem of tok, or tok unchanged when the backend cannot
// stem it.
func (s *Snowball) Stem(tok string) string {
	out, err := snowball.Stem(tok, s.language, true)
	if err != nil || out == "" {
		return tok
	}
	return out
}
