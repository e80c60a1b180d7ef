package textstats

import (
	"fmt"
	"strings"
)

// Format renders the report as a fixed-width text block.
func Format(r Report) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "TEXT ANALYSIS REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "GENERAL STATISTICS:")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Total Word Count:        %d\n", r.TotalWords)
	fmt.Fprintf(&b, "Unique Word Count:       %d\n", r.UniqueWords)
	fmt.Fprintf(&b, "Average Word Length:     %g\n", r.AverageWordLength)
	fmt.Fprintf(&b, "Longest Word:            %s\n", r.LongestWord)
	fmt.Fprintf(&b, "Most Frequent Word:      %s (%d occurrences)\n", r.MostFrequent.Word, r.MostFrequent.Count)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "TOP %d MOST FREQUENT WORDS:\n", len(r.TopWords))
	fmt.Fprintln(&b, thin)
	for i, wc := range r.TopWords {
		fmt.Fprintf(&b, "%2d. %-20s %5d\n", i+1, wc.Word, wc.Count)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	return b.String()
}
