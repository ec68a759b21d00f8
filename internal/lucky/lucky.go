// Package lucky draws the number printed by the lucky feature.
package lucky

import "math/rand/v2"

// Source produces one uniformly distributed integer in [1, 100] per Draw.
// The selector consumes only this interface, so the provider can be swapped
// or stubbed without touching selection logic.
type Source interface {
	Draw() int
}

// NewSource returns the production source, backed by math/rand/v2. No seed
// state is persisted; every process draws fresh.
func NewSource() Source {
	return randSource{}
}

type randSource struct{}

func (randSource) Draw() int {
	return rand.IntN(100) + 1
}

// Fixed returns a Source that always yields n, for deterministic tests.
func Fixed(n int) Source {
	return fixedSource(n)
}

type fixedSource int

func (f fixedSource) Draw() int {
	return int(f)
}
