package service

import (
	"strings"
	"unicode"
)

// Normalizer turns raw review text into the cleaned form fed to both the
// classifier and the vocabulary ranker. Must be deterministic and total.
type Normalizer func(string) string

// Normalize is the default text cleanup: lowercase, collapse whitespace,
// and strip leading/trailing punctuation from each token.
func Normalize(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if f != "" {
			cleaned = append(cleaned, f)
		}
	}
	return strings.Join(cleaned, " ")
}

// Russian and English function words filtered out of the ranked
// vocabulary. Matching happens after Normalize, so entries are lowercase.
var stopwordList = []string{
	// ru
	"и", "в", "не", "на", "что", "это", "как", "по", "но", "из",
	"за", "то", "для", "от", "так", "же", "бы", "был", "была", "было",
	"были", "вы", "мы", "он", "она", "они", "его", "еще", "ещё", "или",
	"уже", "при", "очень", "все", "всё", "только", "меня", "мне", "нас",
	"вас", "там", "тут", "под", "над", "есть", "нет", "без", "чтобы",
	// en
	"the", "and", "for", "was", "are", "with", "this", "that", "have",
	"not", "you", "but", "his", "her", "its", "had", "has", "were",
	"all", "can", "will", "would", "there", "their", "what", "when",
	"very", "just", "from", "out", "get", "got",
}

// DefaultStopwords returns the bundled stopword set. Callers may pass an
// empty set to disable vocabulary filtering entirely.
func DefaultStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(stopwordList))
	for _, w := range stopwordList {
		set[w] = struct{}{}
	}
	return set
}
