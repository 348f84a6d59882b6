package service

import (
	"sort"
	"strings"
	"unicode/utf8"

	"review-backend/internal/models"
)

const (
	// DefaultSampleCap bounds how many texts a single ranking scan reads.
	// Accuracy/performance trade-off for very large uploads.
	DefaultSampleCap = 5000
	// DefaultTopWords is the number of vocabulary entries returned per class.
	DefaultTopWords = 7

	minTokenRunes = 3
)

// TopWords ranks the most frequent qualifying tokens across texts. A token
// qualifies when it is longer than two runes, not purely numeric, and not
// in stopwords; the stopword filter is active only when a non-empty set is
// supplied. Tokenization splits on whitespace only. Order is descending
// count with first-seen ties. Only the first sampleCap texts are scanned.
func TopWords(texts []string, stopwords map[string]struct{}, sampleCap, limit int) []models.WordCount {
	if sampleCap <= 0 {
		sampleCap = DefaultSampleCap
	}
	if limit <= 0 {
		limit = DefaultTopWords
	}
	if len(texts) > sampleCap {
		texts = texts[:sampleCap]
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	seen := 0
	for _, t := range texts {
		for _, w := range strings.Fields(t) {
			if utf8.RuneCountInString(w) < minTokenRunes || isDigits(w) {
				continue
			}
			if len(stopwords) > 0 {
				if _, stop := stopwords[w]; stop {
					continue
				}
			}
			if _, ok := counts[w]; !ok {
				firstSeen[w] = seen
				seen++
			}
			counts[w]++
		}
	}

	entries := make([]models.WordCount, 0, len(counts))
	for w, c := range counts {
		entries = append(entries, models.WordCount{Word: w, Count: c})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Word] < firstSeen[entries[j].Word]
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
