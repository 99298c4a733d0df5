// Package stopwords holds the per-language stopword sets used by the title
// and text cleaners. Sets are built once at package init, never mutated
// afterwards, and shared by every cleaner without synchronization.
//
// Entries are stored normalized: lowercase and diacritic-folded, so lookups
// against pipeline output are exact string matches.
package stopwords

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Set is an immutable stopword set. Membership is exact-match against a
// normalized (lowercase, punctuation-free) token.
type Set map[string]struct{}

// Contains reports whether tok is a stopword in this set.
func (s Set) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Len returns the number of entries in the set.
func (s Set) Len() int { return len(s) }

func build(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Built-in sets, keyed by BCP-47 base language. Bibliographic corpora mix
// several European languages plus Latin, so all of these participate in the
// merged default.
var sets = map[string]Set{
	"en": build(
		"a", "about", "above", "after", "again", "all", "an", "and", "any",
		"are", "as", "at", "be", "been", "but", "by", "for", "from", "had",
		"has", "have", "he", "her", "his", "if", "in", "into", "is", "it",
		"its", "no", "not", "of", "on", "or", "our", "she", "so", "than",
		"that", "the", "their", "them", "then", "there", "these", "they",
		"this", "to", "was", "were", "which", "who", "will", "with", "would",
		"you",
	),
	"fr": build(
		"a", "au", "aux", "avec", "ce", "ces", "cette", "comme", "dans",
		"de", "des", "du", "elle", "en", "et", "ete", "etre", "eux", "il",
		"ils", "je", "la", "le", "les", "leur", "lui", "ma", "mais", "me",
		"meme", "mes", "moi", "mon", "ne", "nos", "notre", "nous", "on",
		"ou", "par", "pas", "plus", "pour", "qu", "que", "qui", "sa",
		"sans", "se", "ses", "son", "sous", "sur", "ta", "te", "tes",
		"toi", "ton", "tu", "un", "une", "vos", "votre", "vous", "y",
	),
	"de": build(
		"aber", "als", "am", "an", "auch", "auf", "aus", "bei", "bin",
		"bis", "da", "damit", "dann", "das", "dass", "dem", "den", "der",
		"des", "dich", "die", "dir", "du", "durch", "ein", "eine", "einem",
		"einen", "einer", "eines", "er", "es", "fur", "hatte", "hier",
		"ich", "ihr", "ihre", "im", "in", "ist", "ja", "kann", "mein",
		"meine", "mit", "nach", "nicht", "noch", "nun", "nur", "oder",
		"sein", "seine", "sich", "sie", "sind", "so", "uber", "um", "und",
		"uns", "unser", "unter", "vom", "von", "vor", "war", "was", "wie",
		"wieder", "wir", "zu", "zum", "zur",
	),
	"es": build(
		"a", "al", "algo", "como", "con", "de", "del", "donde", "el",
		"ella", "ellas", "ellos", "en", "entre", "era", "eran", "es",
		"esa", "esas", "ese", "eso", "esta", "estas", "este", "esto",
		"fue", "ha", "han", "hasta", "la", "las", "le", "les", "lo",
		"los", "mas", "me", "mi", "mis", "muy", "no", "nos", "nosotros",
		"o", "otra", "otro", "para", "pero", "por", "que", "quien", "se",
		"ser", "si", "sin", "sobre", "son", "su", "sus", "te", "tiene",
		"tu", "un", "una", "uno", "unos", "y", "ya",
	),
	"it": build(
		"a", "ad", "al", "alla", "alle", "allo", "anche", "che", "chi",
		"ci", "come", "con", "da", "dal", "dalla", "degli", "dei", "del",
		"della", "delle", "dello", "di", "e", "ed", "era", "gli", "ha",
		"hanno", "i", "il", "in", "la", "le", "lei", "lo", "loro", "lui",
		"ma", "mi", "nel", "nella", "noi", "non", "o", "per", "piu",
		"quella", "quelle", "quello", "questa", "queste", "questo", "se",
		"si", "sono", "su", "sua", "sue", "sui", "suo", "tra", "tu", "un",
		"una", "uno", "voi",
	),
	"la": build(
		"a", "ab", "ac", "ad", "at", "atque", "aut", "autem", "cui",
		"cum", "de", "dum", "e", "ei", "eius", "eo", "erant", "erat",
		"est", "et", "etiam", "eum", "ex", "haec", "hic", "hoc", "id",
		"illa", "ille", "in", "is", "ita", "me", "nec", "neque", "non",
		"per", "qua", "quae", "quam", "qui", "quibus", "quidem", "quo",
		"quod", "re", "rebus", "rem", "res", "sed", "si", "sic", "sint",
		"sit", "sua", "suis", "sunt", "tam", "tamen", "ut", "vel",
	),
}

// Languages lists the built-in language tags, sorted.
func Languages() []string {
	out := make([]string, 0, len(sets))
	for tag := range sets {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Load resolves the given language identifiers and returns the union of
// their stopword sets. Identifiers are parsed as BCP-47 tags ("en",
// "fr-FR", "latin" is not valid; use "la"). An unparseable or unsupported
// tag is a configuration error and fails immediately.
func Load(tags ...string) (Set, error) {
	if len(tags) == 0 {
		return Merged(), nil
	}
	merged := make(Set)
	for _, raw := range tags {
		tag, err := language.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("stopwords: invalid language tag %q: %w", raw, err)
		}
		base, _ := tag.Base()
		set, ok := sets[base.String()]
		if !ok {
			return nil, fmt.Errorf("stopwords: no stopword set for language %q (have %s)",
				raw, strings.Join(Languages(), ", "))
		}
		for w := range set {
			merged[w] = struct{}{}
		}
	}
	return merged, nil
}

// Merged returns the union of every built-in set, the default for general
// bibliographic data spanning several languages.
func Merged() Set {
	merged := make(Set)
	for _, set := range sets {
		for w := range set {
			merged[w] = struct{}{}
		}
	}
	return merged
}
