package textstats

import (
	"regexp"
	"strings"
)

// stopWords are excluded from all statistics.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "at": {}, "which": {}, "on": {},
	"a": {}, "an": {}, "as": {}, "are": {}, "was": {}, "were": {},
	"been": {}, "be": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "of": {}, "to": {}, "in": {}, "for": {},
	"it": {}, "with": {}, "that": {}, "this": {}, "by": {}, "from": {},
	"or": {}, "but": {},
}

// minWordLength filters out short tokens before counting.
const minWordLength = 3

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

// Normalize lowercases the text, replaces every character outside
// [a-z0-9 and whitespace] with a space, and collapses runs of whitespace.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	cleaned := nonAlnum.ReplaceAllString(lowered, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// Tokenize splits normalized text into words, dropping stop words and words
// shorter than three characters.
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	words := make([]string, 0, len(fields))
	for _, word := range fields {
		if len(word) < minWordLength {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		words = append(words, word)
	}
	return words
}
