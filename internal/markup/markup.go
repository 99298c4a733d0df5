// Package markup is the optional upstream collaborator that strips HTML
// from raw text before it is tokenized. The cleaning pipeline itself never
// parses markup.
package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags removes tags from an HTML fragment and returns its visible
// text with entities decoded and whitespace collapsed. Script and style
// content is discarded. Plain text passes through with only whitespace
// normalization.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	tz := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))
	skip := 0

	for {
		switch tz.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; either way, what we have is
			// the best-effort text.
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			if name, _ := tz.TagName(); isInvisible(string(name)) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := tz.TagName(); isInvisible(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(tz.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func isInvisible(tag string) bool {
	return tag == "script" || tag == "style"
}
