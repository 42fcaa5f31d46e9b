package walk

import "unicode/utf8"

// ScanContents returns every occurrence of keyword in contents, in order of
// position. Matching is rune by rune and overlapping matches are all reported.
// The line of an occurrence is the number of newlines before its first rune.
//
// An empty keyword has no first rune to anchor on, so it never matches.
func ScanContents(path, contents, keyword string) []Occurrence {
	first, size := utf8.DecodeRuneInString(keyword)
	if size == 0 {
		return nil
	}
	rest := keyword[size:]

	var occurrences []Occurrence
	line := 0
	for i := 0; i < len(contents); {
		r, w := utf8.DecodeRuneInString(contents[i:])
		if r == first && hasRunePrefix(contents[i+w:], rest) {
			occurrences = append(occurrences, NewFileContentOccurrence(keyword, path, line))
		}
		if r == '\n' {
			line++
		}
		i += w
	}
	return occurrences
}

// hasRunePrefix reports whether s starts with the runes of prefix.
func hasRunePrefix(s, prefix string) bool {
	for _, want := range prefix {
		got, size := utf8.DecodeRuneInString(s)
		if size == 0 || got != want {
			return false
		}
		s = s[size:]
	}
	return true
}
