package component

import (
	"errors"
	"testing"
)

func TestCargoRejectsOverCapacity(t *testing.T) {
	c := Cargo{MaxCapacity: 3}
	if !c.Add(CargoItem{ID: "a", Weight: 2}) {
		t.Fatal("first item should fit")
	}

	if c.Add(CargoItem{ID: "b", Weight: 3}) {
		t.Fatal("item exceeding capacity must be rejected")
	}
	if c.TotalWeight != 2 || c.Len() != 1 {
		t.Errorf("rejected add mutated cargo: weight=%d len=%d", c.TotalWeight, c.Len())
	}

	if !c.Add(CargoItem{ID: "c", Weight: 1}) {
		t.Fatal("item filling capacity exactly should fit")
	}
	if c.TotalWeight != c.MaxCapacity {
		t.Errorf("TotalWeight = %d, want %d", c.TotalWeight, c.MaxCapacity)
	}
}

func TestCargoUnloadAndRemove(t *testing.T) {
	c := Cargo{MaxCapacity: 10}
	c.Add(CargoItem{ID: "a", Weight: 2})
	c.Add(CargoItem{ID: "b", Weight: 5})

	it, ok := c.Remove("a")
	if !ok || it.Weight != 2 || c.TotalWeight != 5 {
		t.Fatalf("Remove = %+v %v, weight now %d", it, ok, c.TotalWeight)
	}
	if _, ok := c.Remove("missing"); ok {
		t.Error("Remove of unknown id should fail")
	}

	items := c.Unload()
	if len(items) != 1 || c.Len() != 0 || c.TotalWeight != 0 {
		t.Errorf("Unload left %d items, weight %d", c.Len(), c.TotalWeight)
	}
}

func TestSnakeQueueRejectsReversal(t *testing.T) {
	s := Snake{Body: []Cell{{5, 5}, {4, 5}}, Dir: DirRight, NextDir: DirRight}

	if s.Queue(DirLeft) {
		t.Error("reversal should be rejected")
	}
	if s.NextDir != DirRight {
		t.Errorf("NextDir = %v after rejected reversal", s.NextDir)
	}
	if !s.Queue(DirUp) || s.NextDir != DirUp {
		t.Error("perpendicular turn should be queued")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       interface{ Validate() error }
		wantErr bool
	}{
		{"good hostile", &Hostile{ID: "h-1", Width: 10, Height: 10, Health: 5}, false},
		{"hostile missing id", &Hostile{Width: 10, Height: 10, Health: 5}, true},
		{"hostile no health", &Hostile{ID: "h-1", Width: 10, Height: 10}, true},
		{"bullet no damage", &Bullet{ID: "b-1", Width: 4, Height: 4}, true},
		{"good bullet", &Bullet{ID: "b-1", Width: 4, Height: 4, Damage: 1}, false},
		{"obstacle no size", &Obstacle{ID: "o-1", Health: 1}, true},
		{"resource without type", &Collectible{ID: "c-1", Kind: CollectibleResource, Radius: 5}, true},
		{"good cargo", &Collectible{ID: "c-1", Kind: CollectibleCargo, Radius: 5, Weight: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEntity) {
				t.Errorf("error %v does not wrap ErrInvalidEntity", err)
			}
		})
	}
}

func TestParticleOpacity(t *testing.T) {
	p := Particle{Life: 250, MaxLife: 1000}
	if got := p.Opacity(); got != 0.25 {
		t.Errorf("Opacity = %v, want 0.25", got)
	}
	p.Life = -5
	if got := p.Opacity(); got != 0 {
		t.Errorf("Opacity of dead particle = %v, want 0", got)
	}
}
