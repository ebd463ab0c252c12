package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopesAverageOverWindow(t *testing.T) {
	p := New(3)
	for _, ms := range []int{1, 2, 3, 10} {
		p.Record("render", time.Duration(ms)*time.Millisecond)
	}

	scopes := p.Scopes()
	require.Len(t, scopes, 1)
	s := scopes[0]
	assert.Equal(t, "render", s.Name)
	assert.Equal(t, uint64(4), s.Count)
	assert.Equal(t, 10*time.Millisecond, s.Last)
	assert.Equal(t, 10*time.Millisecond, s.Max)
	assert.Equal(t, 5*time.Millisecond, s.Avg)
}

func TestScopesKeepFirstSeenOrder(t *testing.T) {
	p := New(4)
	p.Record("update", time.Millisecond)
	p.Record("render", time.Millisecond)
	p.Record("update", time.Millisecond)

	var names []string
	for _, s := range p.Scopes() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"update", "render"}, names)
}

func TestStartMeasuresScope(t *testing.T) {
	p := New(4)
	clock := time.Unix(100, 0)
	p.now = func() time.Time { return clock }

	end := p.Start("gui")
	clock = clock.Add(3 * time.Millisecond)
	end()

	end = p.Start("gui")
	clock = clock.Add(-time.Second)
	end()

	s := p.Scopes()[0]
	assert.Equal(t, uint64(2), s.Count)
	assert.Equal(t, time.Duration(0), s.Last)
	assert.Equal(t, 3*time.Millisecond, s.Max)
}

func TestRuntimeFigures(t *testing.T) {
	assert.Positive(t, NumCPU())
	assert.Positive(t, NumGoroutine())
	assert.Positive(t, MemoryUsage())
}
