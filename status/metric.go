package status

import (
	"math"
	"sync"
	"sync/atomic"
)

// Gauge is a float64 metric stored as bits; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }
func (g *Gauge) Load() float64 { return math.Float64frombits(g.bits.Load()) }

// Add applies delta with a CAS loop and returns the result
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		v := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return v
		}
	}
}

// Group is a named set of metrics sharing one atomic type
// Callers fetch pointers once at construction and update them without further lookups
type Group[T any] struct {
	m sync.Map // string -> *T
}

// Get returns the metric for key, creating it on first use
func (g *Group[T]) Get(key string) *T {
	if v, ok := g.m.Load(key); ok {
		return v.(*T)
	}
	v, _ := g.m.LoadOrStore(key, new(T))
	return v.(*T)
}

func (g *Group[T]) export(out map[string]any, read func(*T) any) {
	g.m.Range(func(k, v any) bool {
		out[k.(string)] = read(v.(*T))
		return true
	})
}
