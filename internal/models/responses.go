package models

// Review is a single classified review row
type Review struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
	Source    string `json:"source"`
}

// SentimentDistribution counts reviews per canonical label; the three
// counts always sum to total_reviews
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// SourceShare is one slice of the source breakdown; Value is a percentage
// of all rows, rounded to one decimal
type SourceShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// WordCount is one ranked vocabulary entry
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopWords groups the ranked vocabulary per sentiment class
type TopWords struct {
	Positive []WordCount `json:"positive"`
	Negative []WordCount `json:"negative"`
}

// AnalysisResult is returned by /api/analyze
type AnalysisResult struct {
	TotalReviews          int                   `json:"total_reviews"`
	ProcessingTime        string                `json:"processing_time"`
	SentimentDistribution SentimentDistribution `json:"sentiment_distribution"`
	SourceDistribution    []SourceShare         `json:"source_distribution"`
	TopWords              TopWords              `json:"top_words"`
	Reviews               []Review              `json:"reviews"`
}

// Prediction is one element of the predictions_json payload for /api/validate
type Prediction struct {
	Sentiment string `json:"sentiment"`
}

// ConfusionMatrix holds a 3x3 grid in fixed [Neg, Neu, Pos] order
type ConfusionMatrix struct {
	Labels []string `json:"labels"`
	Matrix [][]int  `json:"matrix"`
}

// MetricsResult is returned by /api/validate
type MetricsResult struct {
	F1Macro         float64         `json:"f1_macro"`
	Precision       float64         `json:"precision"`
	Recall          float64         `json:"recall"`
	Accuracy        float64         `json:"accuracy"`
	ConfusionMatrix ConfusionMatrix `json:"confusion_matrix"`
}

// ErrorResponse is the error body for failed requests
type ErrorResponse struct {
	Detail string `json:"detail"`
}
