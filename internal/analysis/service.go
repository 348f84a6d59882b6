package analysis

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"review-backend/internal/classifier"
	"review-backend/internal/ingest"
	"review-backend/internal/models"
	"review-backend/internal/service"
)

// maxSources caps the source breakdown at the ten biggest channels.
const maxSources = 10

// Config tunes the vocabulary ranking stage.
type Config struct {
	SampleCap int // max normalized texts scanned per sentiment class
	TopWords  int // vocabulary entries returned per sentiment class
}

// DefaultConfig matches the deployed defaults.
func DefaultConfig() Config {
	return Config{SampleCap: service.DefaultSampleCap, TopWords: service.DefaultTopWords}
}

// Service runs the review analytics pipeline. Stateless between calls; the
// model is the only shared resource and is never mutated.
type Service struct {
	normalize service.Normalizer
	model     classifier.Classifier // nil means degraded mode: every row neutral
	stopwords map[string]struct{}
	cfg       Config
}

func NewService(normalize service.Normalizer, model classifier.Classifier, stopwords map[string]struct{}, cfg Config) *Service {
	if normalize == nil {
		normalize = service.Normalize
	}
	if cfg.SampleCap <= 0 {
		cfg.SampleCap = service.DefaultSampleCap
	}
	if cfg.TopWords <= 0 {
		cfg.TopWords = service.DefaultTopWords
	}
	return &Service{normalize: normalize, model: model, stopwords: stopwords, cfg: cfg}
}

// Analyze ingests an uploaded reviews file and returns the full analytics
// payload. Ingest failures wrap ingest.ErrUnreadableFile or
// ingest.ErrUnsupportedFormat and are the caller's (client) errors;
// anything after that is a server fault.
func (s *Service) Analyze(data []byte, filename string) (*models.AnalysisResult, error) {
	start := time.Now()

	table, err := ingest.Parse(data, filename)
	if err != nil {
		return nil, err
	}
	if len(table.Headers) == 0 {
		return nil, fmt.Errorf("%w: table has no columns", ingest.ErrUnreadableFile)
	}

	textCol := service.ResolveText(table.Headers)
	if textCol == "" {
		textCol = table.Headers[0]
	}
	sourceCol := service.ResolveSource(table.Headers)

	texts := table.Column(textCol)
	var sources []string
	if sourceCol != "" {
		sources = table.Column(sourceCol)
	}

	// Drop rows with missing text, keeping text and source aligned.
	keptTexts := make([]string, 0, len(texts))
	keptSources := make([]string, 0, len(texts))
	for i, txt := range texts {
		if strings.TrimSpace(txt) == "" {
			continue
		}
		src := "Unknown"
		if sources != nil {
			if v := strings.TrimSpace(sources[i]); v != "" {
				src = v
			}
		}
		keptTexts = append(keptTexts, txt)
		keptSources = append(keptSources, src)
	}

	// Normalized once; the ranker must see exactly what the model saw.
	normalized := make([]string, len(keptTexts))
	for i, txt := range keptTexts {
		normalized[i] = s.normalize(txt)
	}

	sentiments := s.classify(normalized, filename)

	reviews := make([]models.Review, len(keptTexts))
	dist := models.SentimentDistribution{}
	var posTexts, negTexts []string
	for i := range keptTexts {
		reviews[i] = models.Review{
			ID:        i,
			Text:      keptTexts[i],
			Sentiment: string(sentiments[i]),
			Source:    keptSources[i],
		}
		switch sentiments[i] {
		case service.Positive:
			dist.Positive++
			posTexts = append(posTexts, normalized[i])
		case service.Negative:
			dist.Negative++
			negTexts = append(negTexts, normalized[i])
		default:
			dist.Neutral++
		}
	}

	result := &models.AnalysisResult{
		TotalReviews:          len(reviews),
		SentimentDistribution: dist,
		SourceDistribution:    sourceShares(keptSources),
		TopWords: models.TopWords{
			Positive: service.TopWords(posTexts, s.stopwords, s.cfg.SampleCap, s.cfg.TopWords),
			Negative: service.TopWords(negTexts, s.stopwords, s.cfg.SampleCap, s.cfg.TopWords),
		},
		Reviews: reviews,
	}
	result.ProcessingTime = fmt.Sprintf("%.2fs", time.Since(start).Seconds())
	return result, nil
}

func (s *Service) classify(normalized []string, filename string) []service.Sentiment {
	if s.model == nil {
		out := make([]service.Sentiment, len(normalized))
		for i := range out {
			out[i] = service.Neutral
		}
		return out
	}

	decoded, defaulted := service.DecodeLabels(s.model.Classify(normalized))
	if defaulted > 0 {
		slog.Warn("unrecognized model labels defaulted to neutral",
			"rows", defaulted, "file", filename)
	}
	return decoded
}

// sourceShares counts rows per source and expresses the biggest channels
// as percentages of the total row count, one decimal place. Ties keep
// first-encountered order.
func sourceShares(sources []string) []models.SourceShare {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, src := range sources {
		if _, ok := counts[src]; !ok {
			firstSeen[src] = i
		}
		counts[src]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return firstSeen[names[i]] < firstSeen[names[j]]
	})
	if len(names) > maxSources {
		names = names[:maxSources]
	}

	total := len(sources)
	shares := make([]models.SourceShare, 0, len(names))
	for _, name := range names {
		pct := float64(counts[name]) / float64(total) * 100
		shares = append(shares, models.SourceShare{
			Name:  name,
			Value: math.Round(pct*10) / 10,
		})
	}
	return shares
}
