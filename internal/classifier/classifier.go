package classifier

import (
	"errors"

	"github.com/jonreiter/govader"
)

// Classifier assigns a raw sentiment label to each input text. Raw labels
// go through service.DecodeLabel afterwards, so any recognized label form
// (numeric code or name) is a valid return value. Implementations must be
// safe for concurrent read-only use: one instance is shared by every
// request for the lifetime of the process.
type Classifier interface {
	Classify(texts []string) []string
}

// Thresholds for mapping the VADER compound score to a label, same cutoffs
// govader's own docs suggest for three-way classification.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// VADER wraps the govader rule-based analyzer as the pre-trained model.
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADER builds the analyzer. Kept behind a constructor returning an
// error so main treats model loading uniformly: a failed load downgrades
// the pipeline instead of stopping the process.
func NewVADER() (*VADER, error) {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	if analyzer == nil {
		return nil, errors.New("vader lexicon failed to load")
	}
	return &VADER{analyzer: analyzer}, nil
}

// Classify maps each text's compound polarity to the numeric label codes
// the codec understands: 1 positive, 2 negative, 0 neutral.
func (v *VADER) Classify(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		score := v.analyzer.PolarityScores(t).Compound
		switch {
		case score >= positiveThreshold:
			out[i] = "1"
		case score <= negativeThreshold:
			out[i] = "2"
		default:
			out[i] = "0"
		}
	}
	return out
}
