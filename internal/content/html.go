package content

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces rich-text CMS markup to its plain text content for
// use in excerpts and meta descriptions. Script and style bodies are
// skipped entirely; runs of whitespace collapse to single spaces.
func StripHTML(markup string) string {
	if markup == "" {
		return ""
	}
	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}
