// Package profiler keeps rolling timings of named scopes and reports Go
// runtime figures for on-screen diagnostics.
package profiler

import (
	"runtime"
	"sync"
	"time"
)

// Scope summarizes the recorded samples of one named scope.
type Scope struct {
	Name  string
	Last  time.Duration
	Avg   time.Duration
	Max   time.Duration
	Count uint64
}

// Profiler records scope durations into fixed-size rings, one per name.
// It is safe for concurrent use.
type Profiler struct {
	mu     sync.Mutex
	window int
	rings  map[string]*ring
	order  []string
	now    func() time.Time
}

// New returns a profiler that averages over the last window samples of each
// scope.
func New(window int) *Profiler {
	if window <= 0 {
		window = 120
	}
	return &Profiler{
		window: window,
		rings:  map[string]*ring{},
		now:    time.Now,
	}
}

// Start begins a scope and returns an end func to be deferred.
func (p *Profiler) Start(name string) func() {
	start := p.now()
	return func() {
		end := p.now()
		// Keep durations non-negative if the clock went backwards.
		if end.Before(start) {
			end = start
		}
		p.Record(name, end.Sub(start))
	}
}

// Record adds one sample to the named scope.
func (p *Profiler) Record(name string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.rings[name]
	if !ok {
		r = &ring{samples: make([]time.Duration, p.window)}
		p.rings[name] = r
		p.order = append(p.order, name)
	}
	r.push(d)
}

// Scopes returns a summary per scope, in the order scopes were first seen.
func (p *Profiler) Scopes() []Scope {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Scope, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.rings[name].summary(name))
	}
	return out
}

// ---------- sample ring ----------

type ring struct {
	samples []time.Duration
	write   uint64
}

func (r *ring) push(d time.Duration) {
	r.samples[r.write%uint64(len(r.samples))] = d
	r.write++
}

func (r *ring) summary(name string) Scope {
	s := Scope{Name: name, Count: r.write}
	n := min(r.write, uint64(len(r.samples)))
	if n == 0 {
		return s
	}
	s.Last = r.samples[(r.write-1)%uint64(len(r.samples))]
	var total time.Duration
	for _, d := range r.samples[:n] {
		total += d
		s.Max = max(s.Max, d)
	}
	s.Avg = total / time.Duration(n)
	return s
}

// ---------- runtime figures ----------

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}

func NumCPU() int {
	return runtime.NumCPU()
}
