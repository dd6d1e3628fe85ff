package doctor

import (
	"context"
	"encoding/json"
	"time"
)

// Report accumulates probe results in declaration order, one entry per tool
// name. It is owned by CheckAll while the check runs and read-only afterward.
type Report struct {
	results []Result
	index   map[string]int
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{
		results: []Result{},
		index:   make(map[string]int),
	}
}

// Add records a result, replacing any earlier entry with the same name so
// the report never holds duplicates.
func (r *Report) Add(res Result) {
	if i, ok := r.index[res.Name]; ok {
		r.results[i] = res
		return
	}
	r.index[res.Name] = len(r.results)
	r.results = append(r.results, res)
}

// Results returns the recorded results in insertion order.
func (r *Report) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Len returns the number of recorded entries.
func (r *Report) Len() int {
	return len(r.results)
}

// Available reports whether the named tool was probed successfully. Tools
// never probed report false.
func (r *Report) Available(name string) bool {
	i, ok := r.index[name]
	if !ok {
		return false
	}
	return r.results[i].Available()
}

// Ready reports whether every recorded tool is available.
func (r *Report) Ready() bool {
	for _, res := range r.results {
		if !res.Available() {
			return false
		}
	}
	return true
}

// Missing returns the names of unavailable tools in insertion order.
func (r *Report) Missing() []string {
	missing := []string{}
	for _, res := range r.results {
		if !res.Available() {
			missing = append(missing, res.Name)
		}
	}
	return missing
}

// MarshalJSON renders the report as an ordered tool array plus the overall
// readiness flag.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Tools        []Result `json:"tools"`
		AllAvailable bool     `json:"all_available"`
	}{
		Tools:        r.results,
		AllAvailable: r.Ready(),
	})
}

// ResultFunc observes each probe result as soon as it is available.
type ResultFunc func(Result)

// CheckAll probes each spec in declaration order with the given per-tool
// timeout and returns the populated report. onResult, when non-nil, is
// invoked after every probe so callers can display progress incrementally.
// Probes run one at a time, with no retries; a failed probe never stops the
// remaining ones.
func CheckAll(ctx context.Context, specs []ToolSpec, timeout time.Duration, onResult ResultFunc) *Report {
	report := NewReport()
	for _, spec := range specs {
		res := Probe(ctx, spec, timeout)
		report.Add(res)
		if onResult != nil {
			onResult(res)
		}
	}
	return report
}
