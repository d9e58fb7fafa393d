package extract

import (
	"strings"
	"unicode/utf8"
)

const (
	// maxSubjectNameLength bounds how long a first line may be and still
	// pass as a person's name.
	maxSubjectNameLength = 60
	// fallbackQueryChars is how much raw text seeds the query when no
	// subject name was derived.
	fallbackQueryChars = 200

	querySuffix         = " professional background work experience"
	fallbackQueryPrefix = "professional background "
)

// nameDenyWords are structural markers: a first line carrying one of these
// is a document heading, not a subject name.
var nameDenyWords = map[string]struct{}{
	"resume":     {},
	"curriculum": {},
	"cv":         {},
}

// DeriveSubjectName inspects the first non-empty trimmed line of the
// extracted text and accepts it as the subject name only if it is short
// and free of structural markers (email sigils, URL schemes, the words
// resume/curriculum/cv). Returns "" otherwise. Best-effort only.
func DeriveSubjectName(text string) string {
	var line string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			line = l
			break
		}
	}
	if line == "" {
		return ""
	}
	if utf8.RuneCountInString(line) >= maxSubjectNameLength {
		return ""
	}

	lower := strings.ToLower(line)
	if strings.Contains(lower, "@") ||
		strings.Contains(lower, "http://") ||
		strings.Contains(lower, "https://") ||
		strings.Contains(lower, "www.") {
		return ""
	}
	for _, word := range strings.Fields(lower) {
		if _, deny := nameDenyWords[strings.Trim(word, ".,:;")]; deny {
			return ""
		}
	}
	return line
}

// BuildQuery derives the enrichment search query. Pure and deterministic:
// the same text and name always produce the same query.
func BuildQuery(text, name string) string {
	if name != "" {
		return name + querySuffix
	}
	prefix := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(prefix) > fallbackQueryChars {
		runes := []rune(prefix)
		prefix = string(runes[:fallbackQueryChars])
	}
	return fallbackQueryPrefix + prefix
}

// TruncateForStorage bounds extracted text to a prefix of max runes for
// storage economy.
func TruncateForStorage(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
