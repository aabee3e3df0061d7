// Package htmlsanitize strips markup from user-supplied text before it
// reaches the ranking engine or is echoed back in a response.
package htmlsanitize

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// MaxQueryLen caps a search query, in runes.
const MaxQueryLen = 200

var strict = bluemonday.StrictPolicy()

// PlainText removes every tag (and the content of script and style
// elements) and returns the remaining text unescaped.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}

// IsPlainText reports whether sanitizing s would leave it unchanged.
// Bare comparison signs such as "a < b" are text, not markup.
func IsPlainText(s string) bool {
	return PlainText(s) == s
}

// CleanQuery prepares a free-text search query: markup removed, runs of
// whitespace collapsed, length capped at MaxQueryLen runes.
func CleanQuery(s string) string {
	s = strings.Join(strings.Fields(PlainText(s)), " ")
	if utf8.RuneCountInString(s) > MaxQueryLen {
		s = string([]rune(s)[:MaxQueryLen])
	}
	return s
}
