package status

import (
	"sync"
	"testing"
)

func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("combat.kills")
	b := r.Ints.Get("combat.kills")
	if a != b {
		t.Fatal("Get should return the cached pointer")
	}
	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("shared counter = %d, want 3", got)
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("spawn.hostile").Store(4)
	r.Bools.Get("boss.active").Store(true)
	r.Floats.Get("tick.avg_ms").Set(1.5)

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot has %d entries, want 3", len(snap))
	}
	if snap["spawn.hostile"] != int64(4) {
		t.Errorf("spawn.hostile = %v", snap["spawn.hostile"])
	}
	if snap["boss.active"] != true {
		t.Errorf("boss.active = %v", snap["boss.active"])
	}
	if snap["tick.avg_ms"] != 1.5 {
		t.Errorf("tick.avg_ms = %v", snap["tick.avg_ms"])
	}
}

func TestGaugeConcurrentAdd(t *testing.T) {
	var f Gauge
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Load(); got != 400 {
		t.Errorf("Load = %v, want 400", got)
	}
}
