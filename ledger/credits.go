// Package ledger holds the in-memory collaborators a cabinet host plugs into sessions
package ledger

import (
	"sync"

	"go.uber.org/zap"
)

// Credits is a thread-safe credit balance
type Credits struct {
	mu      sync.Mutex
	balance int
	log     *zap.Logger
}

func NewCredits(initial int, log *zap.Logger) *Credits {
	if log == nil {
		log = zap.NewNop()
	}
	return &Credits{balance: initial, log: log.Named("credits")}
}

func (c *Credits) CanAfford(cost int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cost >= 0 && c.balance >= cost
}

// Spend deducts cost; an unaffordable spend changes nothing
func (c *Credits) Spend(cost int, reason string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cost < 0 || c.balance < cost {
		c.log.Warn("spend refused", zap.Int("cost", cost), zap.Int("balance", c.balance), zap.String("reason", reason))
		return false
	}
	c.balance -= cost
	c.log.Info("spent", zap.Int("cost", cost), zap.Int("balance", c.balance), zap.String("reason", reason))
	return true
}

func (c *Credits) Balance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance
}

// Grant adds credits, used by the operator surfaces
func (c *Credits) Grant(amount int) {
	if amount <= 0 {
		return
	}
	c.mu.Lock()
	c.balance += amount
	c.mu.Unlock()
}
