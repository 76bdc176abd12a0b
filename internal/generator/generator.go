// Package generator provides random word selection.
package generator

import (
	"math/rand"
	"time"
)

// Generator draws words uniformly at random from a list.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed for repeatable draws.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects a uniform random index into words and returns it with the
// word at that index. The list must be non-empty.
func (g *Generator) Pick(words []string) (int, string) {
	idx := g.rnd.Intn(len(words))
	return idx, words[idx]
}
