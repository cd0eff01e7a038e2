package eval

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
)

// QuestionResult records one question's outcome within a run.
type QuestionResult struct {
	QuestionID  string  `json:"question_id,omitempty"`
	Question    string  `json:"question"`
	Answer      string  `json:"answer"`
	GroundTruth string  `json:"ground_truth"`
	Score       float64 `json:"score"`
	TokensUsed  int     `json:"tokens_used"`
}

// Metrics aggregates the scores of a run.
type Metrics struct {
	MeanScore    float64 `json:"mean_score"`
	MedianScore  float64 `json:"median_score"`
	StdScore     float64 `json:"std_score"`
	MinScore     float64 `json:"min_score"`
	MaxScore     float64 `json:"max_score"`
	AvgTokens    float64 `json:"avg_tokens"`
	NumEvaluated int     `json:"num_evaluated"`
}

// Run is one strategy's evaluation over a question set.
type Run struct {
	RunID    string           `json:"run_id"`
	Strategy string           `json:"strategy"`
	Method   ScoreMethod      `json:"method"`
	Results  []QuestionResult `json:"results"`
	Metrics  Metrics          `json:"metrics"`
}

// ComputeMetrics aggregates per-question results. Empty input yields zero
// metrics.
func ComputeMetrics(results []QuestionResult) Metrics {
	if len(results) == 0 {
		return Metrics{}
	}

	scores := make([]float64, len(results))
	var scoreSum, tokenSum float64
	for i, result := range results {
		scores[i] = result.Score
		scoreSum += result.Score
		tokenSum += float64(result.TokensUsed)
	}
	sort.Float64s(scores)

	mean := scoreSum / float64(len(scores))

	var variance float64
	for _, score := range scores {
		variance += (score - mean) * (score - mean)
	}
	variance /= float64(len(scores))

	var median float64
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		median = (scores[mid-1] + scores[mid]) / 2
	} else {
		median = scores[mid]
	}

	return Metrics{
		MeanScore:    mean,
		MedianScore:  median,
		StdScore:     math.Sqrt(variance),
		MinScore:     scores[0],
		MaxScore:     scores[len(scores)-1],
		AvgTokens:    tokenSum / float64(len(results)),
		NumEvaluated: len(results),
	}
}

// CompareRuns summarizes several runs side by side, keyed by strategy.
func CompareRuns(runs []*Run) map[string]Metrics {
	comparison := make(map[string]Metrics, len(runs))
	for _, run := range runs {
		comparison[run.Strategy] = run.Metrics
	}
	return comparison
}

// SaveRun writes a run as indented JSON, creating parent directories as
// needed.
func SaveRun(run *Run, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing run to %s: %w", path, err)
	}
	return nil
}

// LoadRun reads a run previously written by SaveRun.
func LoadRun(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parsing run file %s: %w", path, err)
	}
	return &run, nil
}
