package blog

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const snippetLength = 150

// Snippet returns the visible text of an HTML fragment, cut to 150 characters
// with a trailing ellipsis.
func Snippet(fragment string) string {
	var sb strings.Builder

	z := html.NewTokenizer(strings.NewReader(fragment))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		if tt == html.TextToken {
			sb.Write(z.Text())
		}
	}

	text := strings.TrimSpace(strings.ReplaceAll(sb.String(), "\u00a0", " "))
	if utf8.RuneCountInString(text) <= snippetLength {
		return text
	}

	runes := []rune(text)

	return strings.TrimSpace(string(runes[:snippetLength])) + "..."
}

// Thumbnail returns the src of the first <img> in the fragment.
func Thumbnail(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "img" {
				continue
			}

			for hasAttr {
				var key, val []byte

				key, val, hasAttr = z.TagAttr()
				if string(key) == "src" && len(val) > 0 {
					return string(val)
				}
			}
		}
	}
}
