package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/arcade/engine"
)

func TestCreditsSpend(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := NewCredits(2, zap.New(core))

	if !c.CanAfford(2) || c.CanAfford(3) {
		t.Fatal("CanAfford wrong for balance 2")
	}
	if !c.Spend(2, "play shooter") || c.Balance() != 0 {
		t.Fatalf("balance = %d after spend", c.Balance())
	}
	if c.Spend(1, "play snake") {
		t.Error("spend beyond balance succeeded")
	}
	if c.Balance() != 0 {
		t.Errorf("refused spend changed balance to %d", c.Balance())
	}
	if n := logs.FilterMessage("spend refused").Len(); n != 1 {
		t.Errorf("refusal log entries = %d", n)
	}
	c.Grant(5)
	if c.Balance() != 5 {
		t.Errorf("balance = %d after grant", c.Balance())
	}
}

func TestCreditsConcurrentSpend(t *testing.T) {
	c := NewCredits(50, nil)
	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Spend(1, "race") {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if ok != 50 || c.Balance() != 0 {
		t.Errorf("successful spends = %d, balance = %d", ok, c.Balance())
	}
}

func TestLeaderboardRanking(t *testing.T) {
	lb := NewLeaderboard(3, nil)
	base := time.Unix(1000, 0)
	tick := 0
	lb.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Second) }

	ctx := context.Background()
	for _, s := range []int{100, 400, 250, 400, 50} {
		if err := lb.Submit(ctx, "shooter", s, s); err != nil {
			t.Fatal(err)
		}
	}
	lb.Submit(ctx, "snake", 300, 300)

	top := lb.Top("shooter")
	want := []int{400, 400, 250}
	if len(top) != len(want) {
		t.Fatalf("top = %+v", top)
	}
	for i := range want {
		if top[i].Score != want[i] {
			t.Errorf("top[%d] = %d, want %d", i, top[i].Score, want[i])
		}
	}
	if !top[0].At.Before(top[1].At) {
		t.Error("tie should keep the earlier entry first")
	}

	global := lb.Global()
	if len(global) != 3 || global[0].Score != 400 || global[2].Score != 300 {
		t.Errorf("global = %+v", global)
	}
}

func TestLeaderboardHonoursContext(t *testing.T) {
	lb := NewLeaderboard(5, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := lb.Submit(ctx, "cargo", 1, 1); err == nil {
		t.Error("submit with cancelled context succeeded")
	}
	if err := lb.ReportResult(ctx, engine.Result{}); err == nil {
		t.Error("report with cancelled context succeeded")
	}
}

func TestReportResult(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	lb := NewLeaderboard(5, zap.New(core))
	res := engine.Result{SessionID: "s-1", GameID: "cargo", Status: engine.StatusLevelComplete, Score: 900}
	if err := lb.ReportResult(context.Background(), res); err != nil {
		t.Fatal(err)
	}
	if got := lb.Results(); len(got) != 1 || got[0].Score != 900 {
		t.Errorf("results = %+v", got)
	}
	entries := logs.FilterMessage("session result").All()
	if len(entries) != 1 || entries[0].ContextMap()["status"] != "levelComplete" {
		t.Errorf("log entries = %+v", entries)
	}
}
