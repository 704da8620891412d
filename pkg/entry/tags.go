package entry

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseTags splits free text into lower case tags. Whitespace and commas
// separate tags and ';' is dropped, so tags never break the line format.
// Order and duplicates are kept as typed.
func ParseTags(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == tagSeparator
	})
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(lower(f), string(fieldSeparator), "")
		if f != "" {
			tags = append(tags, f)
		}
	}
	return tags
}

// lower folds case without touching bytes that are not valid UTF-8;
// strings.ToLower would replace them with U+FFFD.
func lower(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
