// ABOUTME: Text normalization for scraped titles, paragraphs, and labels
// ABOUTME: Decodes entities and escape sequences, then collapses whitespace

package text

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// maxUnescapeRounds caps repeated \uXXXX decoding so nested escapes
// cannot loop forever
const maxUnescapeRounds = 10

var (
	unicodeEscapePattern = regexp.MustCompile(`\\u([0-9a-fA-F]{4})`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// escapeReplacer fixes sequences that arrive double-escaped from
// JSON embedded in scraped script tags
var escapeReplacer = strings.NewReplacer(
	`\/`, "/",
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
	`\"`, `"`,
	`\'`, "'",
	`\\`, `\`,
)

// Normalize cleans a scraped string: HTML entities are decoded, \uXXXX
// escapes resolved, mis-escaped characters restored, and whitespace runs
// collapsed to a single space. Empty input returns empty output.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = html.UnescapeString(s)
	s = decodeUnicodeEscapes(s)
	s = escapeReplacer.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func decodeUnicodeEscapes(s string) string {
	for i := 0; i < maxUnescapeRounds; i++ {
		if !strings.Contains(s, `\u`) {
			return s
		}
		decoded := unicodeEscapePattern.ReplaceAllStringFunc(s, func(m string) string {
			code, err := strconv.ParseUint(m[2:], 16, 32)
			if err != nil {
				return m
			}
			return string(rune(code))
		})
		if decoded == s {
			return s
		}
		s = decoded
	}
	return s
}
