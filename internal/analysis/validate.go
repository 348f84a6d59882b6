package analysis

import (
	"fmt"
	"math"

	"review-backend/internal/ingest"
	"review-backend/internal/models"
	"review-backend/internal/service"
)

// Confusion matrix row/column order is fixed regardless of which classes
// actually occur in the data.
var classOrder = []service.Sentiment{service.Negative, service.Neutral, service.Positive}

// Validate scores a previously produced prediction set against a
// ground-truth file. Both sides are truncated to the shorter length and
// aligned by position; no row-key join is attempted. Metrics are
// macro-averaged over the fixed three-class label set with zero divisions
// guarded to 0, and rounded to two decimals.
func (s *Service) Validate(preds []models.Prediction, data []byte, filename string) (*models.MetricsResult, error) {
	table, err := ingest.Parse(data, filename)
	if err != nil {
		return nil, err
	}

	labelCol := service.ResolveLabel(table.Headers)
	if labelCol == "" {
		return nil, fmt.Errorf("%w: ground truth table has no columns", ingest.ErrUnreadableFile)
	}
	truthRaw := table.Column(labelCol)

	n := len(preds)
	if len(truthRaw) < n {
		n = len(truthRaw)
	}

	yPred := make([]service.Sentiment, n)
	yTrue := make([]service.Sentiment, n)
	for i := 0; i < n; i++ {
		yPred[i] = service.DecodeLabel(preds[i].Sentiment)
		yTrue[i] = service.DecodeLabel(truthRaw[i])
	}

	matrix := confusion(yTrue, yPred)
	precision, recall, f1, accuracy := macroMetrics(matrix, n)

	return &models.MetricsResult{
		F1Macro:   round2(f1),
		Precision: round2(precision),
		Recall:    round2(recall),
		Accuracy:  round2(accuracy),
		ConfusionMatrix: models.ConfusionMatrix{
			Labels: []string{"Neg", "Neu", "Pos"},
			Matrix: matrix,
		},
	}, nil
}

// confusion builds the 3x3 grid: matrix[i][j] counts rows whose true class
// is classOrder[i] and predicted class is classOrder[j].
func confusion(yTrue, yPred []service.Sentiment) [][]int {
	idx := make(map[service.Sentiment]int, len(classOrder))
	for i, c := range classOrder {
		idx[c] = i
	}

	matrix := make([][]int, len(classOrder))
	for i := range matrix {
		matrix[i] = make([]int, len(classOrder))
	}
	for i := range yTrue {
		matrix[idx[yTrue[i]]][idx[yPred[i]]]++
	}
	return matrix
}

// macroMetrics computes unweighted per-class precision/recall/F1 averages
// and overall accuracy from a confusion matrix. Classes absent from the
// data contribute 0 rather than failing the division.
func macroMetrics(matrix [][]int, total int) (precision, recall, f1, accuracy float64) {
	var pSum, rSum, fSum float64
	correct := 0
	for i := range matrix {
		tp := matrix[i][i]
		correct += tp

		var fp, fn int
		for j := range matrix {
			if j == i {
				continue
			}
			fp += matrix[j][i]
			fn += matrix[i][j]
		}

		p := safeDiv(float64(tp), float64(tp+fp))
		r := safeDiv(float64(tp), float64(tp+fn))
		pSum += p
		rSum += r
		fSum += safeDiv(2*p*r, p+r)
	}

	k := float64(len(matrix))
	return pSum / k, rSum / k, fSum / k, safeDiv(float64(correct), float64(total))
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
