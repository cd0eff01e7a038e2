package eval

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Check is one verification outcome within a report.
type Check struct {
	Name    string `json:"check"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Report is the graded summary of a set of evaluation runs.
type Report struct {
	ReportID     string             `json:"report_id"`
	Timestamp    time.Time          `json:"timestamp"`
	Grade        string             `json:"grade"`
	Passed       []Check            `json:"passed"`
	Failed       []Check            `json:"failed"`
	Warnings     []string           `json:"warnings"`
	BestStrategy string             `json:"best_strategy"`
	BestScore    float64            `json:"best_score"`
	Improvement  float64            `json:"improvement"`
	Strategies   map[string]Metrics `json:"strategies"`
}

// baseStrategies are the placements every comparison is expected to cover.
var baseStrategies = []string{"naive", "primacy", "recency", "sandwich"}

// thresholds for counting an extra strategy as a real optimization.
const (
	minScoreImprovement = 0.10
	minTokenReduction   = 0.20
)

// Grade verifies a comparison across runs: all base strategies present,
// metrics recorded, and any extra strategy measured against the naive
// baseline. Grade is "PASS" only when no check fails.
func Grade(runs []*Run) *Report {
	report := &Report{
		ReportID:   uuid.New().String(),
		Timestamp:  time.Now(),
		Strategies: CompareRuns(runs),
	}

	report.checkStrategiesPresent()
	report.checkMetricsRecorded()
	report.checkOptimization()
	report.summarize()

	if len(report.Failed) == 0 {
		report.Grade = "PASS"
	} else {
		report.Grade = "FAIL"
	}
	return report
}

func (r *Report) pass(name string) {
	r.Passed = append(r.Passed, Check{Name: name, Status: "PASS"})
}

func (r *Report) fail(name, message string) {
	r.Failed = append(r.Failed, Check{Name: name, Status: "FAIL", Message: message})
}

func (r *Report) checkStrategiesPresent() {
	var missing []string
	for _, name := range baseStrategies {
		if _, ok := r.Strategies[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		r.fail("strategies_implemented", fmt.Sprintf("missing strategies: %v", missing))
		return
	}
	r.pass("strategies_implemented")
}

func (r *Report) checkMetricsRecorded() {
	complete := true
	for name, metrics := range r.Strategies {
		if metrics.NumEvaluated == 0 {
			r.Warnings = append(r.Warnings, fmt.Sprintf("strategy %q has no evaluated questions", name))
			complete = false
		}
	}
	if !complete {
		r.fail("metrics_recorded", "incomplete metrics")
		return
	}
	r.pass("metrics_recorded")
}

// checkOptimization looks for a strategy beyond the base four and requires
// it to beat the naive baseline on score or tokens.
func (r *Report) checkOptimization() {
	base := make(map[string]bool, len(baseStrategies))
	for _, name := range baseStrategies {
		base[name] = true
	}

	var extras []string
	for name := range r.Strategies {
		if !base[name] {
			extras = append(extras, name)
		}
	}
	if len(extras) == 0 {
		r.Warnings = append(r.Warnings, "no optimization strategy beyond the base four")
		return
	}
	sort.Strings(extras)

	baseline := r.Strategies["naive"]
	for _, name := range extras {
		metrics := r.Strategies[name]

		var scoreImprovement, tokenReduction float64
		if baseline.MeanScore > 0 {
			scoreImprovement = (metrics.MeanScore - baseline.MeanScore) / baseline.MeanScore
		}
		if baseline.AvgTokens > 0 {
			tokenReduction = (baseline.AvgTokens - metrics.AvgTokens) / baseline.AvgTokens
		}

		if scoreImprovement >= minScoreImprovement || tokenReduction >= minTokenReduction {
			r.pass("optimization_implemented")
			return
		}
	}
	r.fail("optimization_implemented", "optimization below improvement threshold")
}

func (r *Report) summarize() {
	baseline := r.Strategies["naive"]

	for name, metrics := range r.Strategies {
		if r.BestStrategy == "" || metrics.MeanScore > r.BestScore {
			r.BestStrategy = name
			r.BestScore = metrics.MeanScore
		}
	}
	if baseline.MeanScore > 0 {
		r.Improvement = (r.BestScore - baseline.MeanScore) / baseline.MeanScore
	}
}
