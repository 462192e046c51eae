package renderer

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

// ProfileRecord aggregates timings for one named stage
type ProfileRecord struct {
	Name    string
	Calls   int
	Total   time.Duration
	Average time.Duration
}

// Profiler collects named stage timings. A nil *Profiler is valid and records nothing.
type Profiler struct {
	mu      sync.Mutex
	records map[string]*ProfileRecord
}

// NewProfiler creates an empty profiler
func NewProfiler() *Profiler {
	return &Profiler{records: make(map[string]*ProfileRecord)}
}

// Track starts timing name; call the returned func when the stage ends.
//
//	defer p.Track("raytracer - post")()
func (p *Profiler) Track(name string) func() {
	if p == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.Add(name, time.Since(start))
	}
}

// Add records one call of name taking d
func (p *Profiler) Add(name string, d time.Duration) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.records[name]
	if !ok {
		rec = &ProfileRecord{Name: name}
		p.records[name] = rec
	}
	rec.Calls++
	rec.Total += d
	rec.Average = rec.Total / time.Duration(rec.Calls)
}

// Records returns a snapshot sorted by total time, largest first
func (p *Profiler) Records() []ProfileRecord {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]ProfileRecord, 0, len(p.records))
	for _, rec := range p.records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].Name < out[j].Name
		}
		return out[i].Total > out[j].Total
	})
	return out
}

// Log writes every record to logger at info level
func (p *Profiler) Log(logger *slog.Logger) {
	for _, rec := range p.Records() {
		logger.Info("profile",
			"stage", rec.Name,
			"calls", rec.Calls,
			"total", rec.Total,
			"avg", rec.Average)
	}
}
