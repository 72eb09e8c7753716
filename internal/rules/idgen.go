package rules

import (
	"sync"

	"github.com/google/uuid"
)

// RuleIDGenerator mints identifiers for newly induced rules.
type RuleIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 rule ids, the same way
// the teacher's engine package stamps flow tokens.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined rule ids for testing, enabling
// deterministic golden-file comparisons of induced rule sets.
type FixedGenerator struct {
	mu     sync.Mutex
	ids    []string
	cursor int
}

// NewFixedGenerator builds a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined id. Panics once every id has
// been consumed - a fail-fast signal that a test fixture needs more ids
// than it supplied.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cursor >= len(g.ids) {
		panic("rules: FixedGenerator exhausted")
	}
	id := g.ids[g.cursor]
	g.cursor++
	return id
}
