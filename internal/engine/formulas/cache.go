package formulas

import (
	"encoding/binary"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
)

// SnapshotHash fingerprints a stat snapshot for memo keys. Entries fold in
// ascending id order so map iteration cannot change the digest.
func SnapshotHash(s rubika.StatSnapshot) uint64 {
	ids := make([]rubika.StatID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	h := xxhash.New()
	var buf [8]byte
	for _, id := range ids {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(id))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(s[id]))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

type cacheKey struct {
	source   int64
	snapshot uint64
}

// criteriaCache memoizes requirement evaluations keyed by (definition id,
// snapshot hash). Entries are immutable once stored. When the cache fills
// it is dropped wholesale, there is no per-entry eviction.
type criteriaCache struct {
	mu         sync.RWMutex
	maxEntries int
	entries    map[cacheKey]*engine.CheckRequirementsOutput
}

func newCriteriaCache(maxEntries int) *criteriaCache {
	return &criteriaCache{
		maxEntries: maxEntries,
		entries:    make(map[cacheKey]*engine.CheckRequirementsOutput),
	}
}

func (c *criteriaCache) get(key cacheKey) (*engine.CheckRequirementsOutput, bool) {
	if c.maxEntries <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out, ok := c.entries[key]
	return out, ok
}

func (c *criteriaCache) put(key cacheKey, out *engine.CheckRequirementsOutput) {
	if c.maxEntries <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[cacheKey]*engine.CheckRequirementsOutput)
	}
	c.entries[key] = out
}

func (c *criteriaCache) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*engine.CheckRequirementsOutput)
}
