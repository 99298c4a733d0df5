package cleaner

import (
	"github.com/bibkit/bclean/internal/stemmer"
	"github.com/bibkit/bclean/internal/stopwords"
)

// config collects the optional capabilities of a variant. Each variant
// reads only the fields that make sense for its domain.
type config struct {
	stopwords       stopwords.Set
	stemmer         stemmer.Stemmer
	foldDiacritics  bool
	foldASCII       bool
	decodeEntities  bool
	annotationStrip bool
	subtitleSplit   bool
	minLength       int
}

// Option configures a cleaner variant.
type Option func(*config)

// WithStopwords sets the stopword set for the title and text variants.
// Without it the merged multilingual default is used. The author variant
// never filters stopwords.
func WithStopwords(set stopwords.Set) Option {
	return func(c *config) { c.stopwords = set }
}

// WithStemmer appends a stemming stage to the title and text variants.
// The author variant ignores it.
func WithStemmer(st stemmer.Stemmer) Option {
	return func(c *config) { c.stemmer = st }
}

// WithDiacriticFolding enables diacritic folding for the title and author
// variants. The text variant folds diacritics unconditionally.
func WithDiacriticFolding() Option {
	return func(c *config) { c.foldDiacritics = true }
}

// WithASCIIFolding transliterates tokens to ASCII after folding, for
// corpora that mix non-Latin scripts.
func WithASCIIFolding() Option {
	return func(c *config) { c.foldASCII = true }
}

// WithEntityDecoding decodes HTML-entity tokens before folding, for input
// tokenized from markup without an upstream stripping pass.
func WithEntityDecoding() Option {
	return func(c *config) { c.decodeEntities = true }
}

// WithAnnotationStrip removes bracketed annotation spans before any token
// is rewritten, while the delimiters are still present.
func WithAnnotationStrip() Option {
	return func(c *config) { c.annotationStrip = true }
}

// WithSubtitleSplit truncates titles at the first strong punctuation mark.
func WithSubtitleSplit() Option {
	return func(c *config) { c.subtitleSplit = true }
}

// WithMinLength drops tokens of n runes or fewer, before any rewriting.
// The default of 0 keeps everything, initials included.
func WithMinLength(n int) Option {
	return func(c *config) { c.minLength = n }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) stopwordSet() stopwords.Set {
	if c.stopwords != nil {
		return c.stopwords
	}
	return stopwords.Merged()
}

// raw-token stages shared by the variants: these run before any token is
// rewritten, while delimiters and case are still intact.
func (c config) prelude() []Stage {
	var stages []Stage
	if c.subtitleSplit {
		stages = append(stages, SubtitleSplit())
	}
	if c.annotationStrip {
		stages = append(stages, AnnotationStrip())
	}
	if c.minLength > 0 {
		stages = append(stages, MinLength(c.minLength))
	}
	if c.decodeEntities {
		stages = append(stages, DecodeEntities())
	}
	return stages
}

// NewTitle returns a cleaner for title token sequences:
// fold_case -> strip_punctuation -> drop_blank -> stopword_filter, with an
// optional trailing stem stage. Titles keep short and initial-like tokens;
// stopword filtering is the main reduction mechanism.
func NewTitle(input []string, opts ...Option) *Cleaner {
	cfg := newConfig(opts)
	stages := cfg.prelude()
	stages = append(stages, FoldCase())
	if cfg.foldDiacritics {
		stages = append(stages, FoldDiacritics())
	}
	if cfg.foldASCII {
		stages = append(stages, FoldASCII())
	}
	stages = append(stages, StripPunctuation(), DropBlank(), StopwordFilter(cfg.stopwordSet()))
	if cfg.stemmer != nil {
		stages = append(stages, Stem(cfg.stemmer))
	}
	return newCleaner(input, stages)
}

// NewAuthor returns a cleaner for author name sequences:
// fold_case -> life_date_strip -> strip_punctuation -> drop_blank ->
// life_date_strip. Life dates are stripped twice: once on raw tokens while
// parentheses and lone dash tokens are still intact, and once after
// punctuation stripping for the bare "1950-2018" form. Author names are
// never stopword-filtered or stemmed, so single-letter initials survive;
// life-date spans never do.
func NewAuthor(input []string, opts ...Option) *Cleaner {
	cfg := newConfig(opts)
	stages := cfg.prelude()
	stages = append(stages, FoldCase(), LifeDateStrip())
	if cfg.foldDiacritics {
		stages = append(stages, FoldDiacritics())
	}
	if cfg.foldASCII {
		stages = append(stages, FoldASCII())
	}
	stages = append(stages, StripPunctuation(), DropBlank(), LifeDateStrip())
	return newCleaner(input, stages)
}

// NewText returns a cleaner for generic free-text sequences:
// fold_case -> fold_diacritics -> strip_punctuation -> drop_blank ->
// stopword_filter, with an optional trailing stem stage. The superset
// variant: diacritic folding is always on.
func NewText(input []string, opts ...Option) *Cleaner {
	cfg := newConfig(opts)
	stages := cfg.prelude()
	stages = append(stages, FoldCase(), FoldDiacritics())
	if cfg.foldASCII {
		stages = append(stages, FoldASCII())
	}
	stages = append(stages, StripPunctuation(), DropBlank(), StopwordFilter(cfg.stopwordSet()))
	if cfg.stemmer != nil {
		stages = append(stages, Stem(cfg.stemmer))
	}
	return newCleaner(input, stages)
}
