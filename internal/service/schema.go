package service

import "strings"

var (
	textCandidates   = []string{"text", "review", "отзыв", "текст", "comment"}
	sourceCandidates = []string{"src", "source", "platform", "источник"}
	labelCandidates  = map[string]bool{
		"sentiment": true, "target": true, "label": true, "class": true, "оценка": true,
	}
)

// ResolveText picks the review-text column from normalized column names.
// Exact candidate match wins first; otherwise the first column whose name
// contains "text" or "review". An empty result means no semantic hint was
// found — the fallback to the first column is the caller's call.
func ResolveText(cols []string) string {
	if c := exactMatch(cols, textCandidates); c != "" {
		return c
	}
	for _, col := range cols {
		if strings.Contains(col, "text") || strings.Contains(col, "review") {
			return col
		}
	}
	return ""
}

// ResolveSource picks the feedback-source column. Exact matches only; an
// empty result is legitimate and maps every row's source to "Unknown".
func ResolveSource(cols []string) string {
	return exactMatch(cols, sourceCandidates)
}

// ResolveLabel picks the ground-truth column for validation: the first
// column (in table order) whose name is a known label name, else the
// second column when one exists, else the first.
func ResolveLabel(cols []string) string {
	for _, col := range cols {
		if labelCandidates[col] {
			return col
		}
	}
	if len(cols) > 1 {
		return cols[1]
	}
	if len(cols) == 1 {
		return cols[0]
	}
	return ""
}

func exactMatch(cols, candidates []string) string {
	for _, cand := range candidates {
		for _, col := range cols {
			if col == cand {
				return cand
			}
		}
	}
	return ""
}
