// Package cleaner implements the token normalization pipeline and its three
// variants: Title, Author, and Text. A cleaner owns a working copy of its
// input and applies a fixed, variant-specific order of stages exactly once.
package cleaner

// Stage is one transformation step: it consumes a token sequence and
// returns the next one. Stages never reorder surviving tokens. A stage may
// reuse the backing array of the sequence it is given, so callers must not
// retain a reference to a sequence after passing it to a stage.
type Stage func(tokens []string) []string

// Cleaner holds a working token sequence plus the ordered stages of its
// variant. A Cleaner is single-use: construct it with input, call Clean
// once, then read Tokens. Cleaners share no mutable state, so any number
// may run in parallel.
type Cleaner struct {
	tokens  []string
	stages  []Stage
	cleaned bool
}

func newCleaner(input []string, stages []Stage) *Cleaner {
	tokens := make([]string, len(input))
	copy(tokens, input)
	return &Cleaner{tokens: tokens, stages: stages}
}

// Clean applies the variant's stages in order. Calling Clean again is a
// no-op: the result is terminal.
func (c *Cleaner) Clean() *Cleaner {
	if c.cleaned {
		return c
	}
	for _, stage := range c.stages {
		c.tokens = stage(c.tokens)
	}
	c.cleaned = true
	return c
}

// Tokens returns the current token sequence: the raw input before Clean,
// the normalized result after.
func (c *Cleaner) Tokens() []string {
	return c.tokens
}
