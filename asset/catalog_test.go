package asset

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/arcade/component"
)

func TestCatalogKeys(t *testing.T) {
	c := NewCatalog(nil)

	tests := []struct {
		key   string
		glyph rune
	}{
		{KeyPlayer, 'A'},
		{HostileKey(component.HostileBoss), 'M'},
		{HostileKey(component.HostileGuard), 'G'},
		{CollectibleKey(&component.Collectible{Kind: component.CollectibleCargo}), '$'},
		{CollectibleKey(&component.Collectible{Kind: component.CollectibleFood}), '*'},
		{CollectibleKey(&component.Collectible{Kind: component.CollectibleResource, Type: "gas"}), '%'},
	}
	for _, tt := range tests {
		if got := c.Sprite(tt.key); got.Glyph != tt.glyph {
			t.Errorf("Sprite(%q).Glyph = %q, want %q", tt.key, got.Glyph, tt.glyph)
		}
	}
}

func TestResourceKeyByType(t *testing.T) {
	got := CollectibleKey(&component.Collectible{Kind: component.CollectibleResource, Type: "ice"})
	if got != "resource.ice" {
		t.Errorf("key = %q", got)
	}
	got = CollectibleKey(&component.Collectible{Kind: component.CollectibleResource})
	if got != "collectible.resource" {
		t.Errorf("untyped key = %q", got)
	}
}

func TestFallbackLoggedOnce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewCatalog(zap.New(core))

	for i := 0; i < 3; i++ {
		if got := c.Sprite("resource.plasma"); got != Fallback {
			t.Fatalf("Sprite = %+v, want fallback", got)
		}
	}
	if n := logs.FilterMessage("sprite missing, using fallback").Len(); n != 1 {
		t.Errorf("logged %d times, want 1", n)
	}

	c.Register("resource.plasma", Sprite{Glyph: '~', Color: tcell.ColorBlue})
	if got := c.Sprite("resource.plasma"); got.Glyph != '~' {
		t.Errorf("registered sprite not returned: %+v", got)
	}
}
