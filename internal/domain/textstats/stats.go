package textstats

import (
	"math"
	"sort"
	"strings"
)

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Report holds the frequency statistics for one document. A blank document
// produces a zero report, not an error.
type Report struct {
	TotalWords        int            `json:"totalWords"`
	UniqueWords       int            `json:"uniqueWords"`
	AverageWordLength float64        `json:"averageWordLength"`
	LongestWord       string         `json:"longestWord"`
	MostFrequent      WordCount      `json:"mostFrequent"`
	TopWords          []WordCount    `json:"topWords"`
	Frequencies       map[string]int `json:"frequencies"`
}

// Analyze normalizes and tokenizes the text and computes the full report.
// topN bounds the ranked word list; values below zero are treated as zero.
func Analyze(text string, topN int) Report {
	words := Tokenize(Normalize(text))

	freq := make(map[string]int, len(words))
	totalLength := 0
	longest := ""
	for _, word := range words {
		freq[word]++
		totalLength += len(word)
		if len(word) > len(longest) {
			longest = word
		}
	}

	report := Report{
		TotalWords:  len(words),
		UniqueWords: len(freq),
		LongestWord: longest,
		Frequencies: freq,
	}
	if len(words) == 0 {
		return report
	}

	avg := float64(totalLength) / float64(len(words))
	report.AverageWordLength = math.Round(avg*100) / 100

	ranked := rank(freq)
	report.MostFrequent = ranked[0]
	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	report.TopWords = ranked[:topN]
	return report
}

// WordsWithPrefix returns the counted words starting with prefix,
// case-insensitive, sorted alphabetically.
func (r Report) WordsWithPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	matches := make([]string, 0)
	for word := range r.Frequencies {
		if strings.HasPrefix(word, prefix) {
			matches = append(matches, word)
		}
	}
	sort.Strings(matches)
	return matches
}

// rank orders words by count descending, ties alphabetically.
func rank(freq map[string]int) []WordCount {
	ranked := make([]WordCount, 0, len(freq))
	for word, count := range freq {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	return ranked
}
