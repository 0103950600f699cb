// internal/metrics/aggregator.go
package metrics

import (
	"sort"

	"github.com/mwiater/riskstats/internal/stats"
)

// Aggregator groups test outcomes by model and tracks per-model latency.
type Aggregator struct {
	results map[string][]stats.TestResult
	latency map[string]*RunningStat
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		results: make(map[string][]stats.TestResult),
		latency: make(map[string]*RunningStat),
	}
}

// Record adds one outcome to its model's group.
func (a *Aggregator) Record(r stats.TestResult) {
	model := r.Model
	if model == "" {
		model = stats.DefaultModel
	}
	a.results[model] = append(a.results[model], r)

	rs, ok := a.latency[model]
	if !ok {
		rs = &RunningStat{}
		a.latency[model] = rs
	}
	if r.LatencyMs > 0 {
		rs.Add(r.LatencyMs)
	}
}

// Breakdown summarizes each model, ordered by model name.
func (a *Aggregator) Breakdown(opts stats.Options) []ModelBreakdown {
	models := make([]string, 0, len(a.results))
	for model := range a.results {
		models = append(models, model)
	}
	sort.Strings(models)

	out := make([]ModelBreakdown, 0, len(models))
	for _, model := range models {
		out = append(out, ModelBreakdown{
			Model:   model,
			Summary: stats.AnalyzeWith(a.results[model], opts),
			Latency: *a.latency[model],
		})
	}
	return out
}

// BreakdownByModel aggregates a whole batch in one call.
func BreakdownByModel(results []stats.TestResult, opts stats.Options) []ModelBreakdown {
	agg := NewAggregator()
	for _, r := range results {
		agg.Record(r)
	}
	return agg.Breakdown(opts)
}
