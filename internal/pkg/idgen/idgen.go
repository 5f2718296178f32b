// Package idgen generates the identifiers handed to build drafts. The
// orchestrator only sees the Generator interface, so tests can swap in
// predictable sequential IDs.
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/rubika-tools/planner-api/internal/pkg/idgen Generator

// Generator produces unique identifiers.
type Generator interface {
	Generate() string
}

// PrefixedGenerator produces prefix_timestamp_random IDs. Collisions
// require two generations in the same nanosecond drawing the same four
// random bytes.
type PrefixedGenerator struct {
	prefix string
}

// NewPrefixed creates a generator stamping every ID with the given prefix.
func NewPrefixed(prefix string) *PrefixedGenerator {
	return &PrefixedGenerator{prefix: prefix}
}

// Generate returns a new ID in the form prefix_timestamp_random.
func (g *PrefixedGenerator) Generate() string {
	timestamp := time.Now().UnixNano()
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	return fmt.Sprintf("%s_%d_%s", g.prefix, timestamp, hex.EncodeToString(randomBytes))
}

// SequentialGenerator counts up from one. Tests use it to get stable IDs
// like build_1, build_2 without mocking the generator.
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a sequential generator with an optional prefix.
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID in the sequence. Safe for concurrent use.
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator produces UUID-based IDs with an optional prefix, for
// callers that want opaque IDs without the embedded timestamp.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator with an optional prefix.
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a new UUID, prefixed when configured.
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
