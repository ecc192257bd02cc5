package reporting

import (
	"fmt"
	"sync"
	"time"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

// reportCache é um cache em memória de demonstrativos com TTL curto.
// Otimização de latência apenas: nada depende dele para correção, e um
// processo reiniciado simplesmente recalcula.
type reportCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	statement *domain.ProfitLossStatement
	expiresAt time.Time
}

func newReportCache(ttl time.Duration) *reportCache {
	return &reportCache{
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
	}
}

func cacheKey(teamID, storeID string, startDate, endDate time.Time) string {
	return fmt.Sprintf("%s|%s|%s|%s", teamID, storeID, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
}

func (c *reportCache) get(key string) *domain.ProfitLossStatement {
	if c == nil || c.ttl <= 0 {
		return nil
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}

	return entry.statement
}

func (c *reportCache) set(key string, statement *domain.ProfitLossStatement) {
	if c == nil || c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Limpeza oportunista de entradas vencidas
	now := time.Now()
	for k, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = &cacheEntry{
		statement: statement,
		expiresAt: now.Add(c.ttl),
	}
}
