// Package status is the metrics facade shared by systems and hosts
// Systems cache pointers at construction; the update loop writes atomics directly
package status

import "sync/atomic"

// Registry groups metrics by value type
type Registry struct {
	Bools  *Group[atomic.Bool]
	Ints   *Group[atomic.Int64]
	Floats *Group[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  new(Group[atomic.Bool]),
		Ints:   new(Group[atomic.Int64]),
		Floats: new(Group[Gauge]),
	}
}

// Snapshot returns a flat copy of every metric for JSON output
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any)
	r.Bools.export(out, func(v *atomic.Bool) any { return v.Load() })
	r.Ints.export(out, func(v *atomic.Int64) any { return v.Load() })
	r.Floats.export(out, func(v *Gauge) any { return v.Load() })
	return out
}
