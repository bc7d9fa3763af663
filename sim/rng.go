package sim

import "math/rand"

// rng is the simulation's seeded random source. Every random draw in a
// run goes through one rng instance so a seed reproduces the whole run.
type rng struct {
	r *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{r: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform int in [a, b], both ends included.
func (g *rng) IntRange(a, b int) int {
	return a + g.r.Intn(b-a+1)
}

// FloatRange returns a uniform float64 in [a, b).
func (g *rng) FloatRange(a, b float64) float64 {
	return a + g.r.Float64()*(b-a)
}

// Chance returns true with probability p.
func (g *rng) Chance(p float64) bool {
	return g.r.Float64() < p
}

// Directions returns the four cardinal directions in shuffled order.
func (g *rng) Directions() [DirCount]Direction {
	dirs := [DirCount]Direction{Up, Right, Down, Left}
	g.r.Shuffle(DirCount, func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}
