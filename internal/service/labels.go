package service

import "strings"

// Sentiment is one of the three canonical labels.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
)

// DecodeLabel maps a raw label representation (numeric code, name, signed
// convention) to a canonical sentiment. Total function: anything
// unrecognized is neutral. Both the analysis path (model output) and the
// validation path (ground truth) decode through here, so the two share
// one label space.
func DecodeLabel(raw string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "0.0", "neutral", "neu":
		return Neutral
	case "1", "1.0", "positive", "pos":
		return Positive
	case "2", "2.0", "negative", "neg", "-1":
		return Negative
	}
	return Neutral
}

// DecodeLabels decodes a batch and additionally reports how many inputs
// fell through to the neutral default without being a recognized neutral
// form. The count lets callers spot data-quality regressions that the
// default-safe decode would otherwise swallow.
func DecodeLabels(raws []string) ([]Sentiment, int) {
	out := make([]Sentiment, len(raws))
	defaulted := 0
	for i, raw := range raws {
		out[i] = DecodeLabel(raw)
		if out[i] == Neutral && !isNeutralForm(raw) {
			defaulted++
		}
	}
	return out, defaulted
}

func isNeutralForm(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "0.0", "neutral", "neu":
		return true
	}
	return false
}
