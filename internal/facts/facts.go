// Package facts holds the space facts shown on page load.
package facts

import (
	"math/rand/v2"
	"sync"
)

var spaceFacts = [...]string{
	"Venus rotates backwards: the Sun rises in the west there.",
	"A day on Venus is longer than a year on Venus (it rotates very slowly).",
	"There are more trees on Earth than stars in the Milky Way, but the Milky Way still has billions of stars.",
	"Neutron stars can spin hundreds of times per second and are incredibly dense: a sugar-cube-sized amount of neutron-star material would weigh about a billion tons.",
	"Space is not completely empty. It's filled with low-density gas, dust, and radiation.",
	"A spoonful of the Sun's core would weigh millions of tons on Earth because of the extreme density and pressure.",
	"Jupiter's magnetosphere is so large it would appear bigger than the full Moon in our sky if it were visible.",
	"Saturn isn't the only planet with rings. Jupiter, Uranus and Neptune also have ring systems.",
	"Footprints on the Moon can last for millions of years because there's no wind or water to erode them.",
	"On Mars, sunsets appear blue due to the way dust in the atmosphere scatters sunlight.",
}

// Picker selects facts uniformly at random.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker creates a Picker drawing from rng. A nil rng uses a randomly
// seeded source.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{rng: rng}
}

// Pick returns one fact.
func (p *Picker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return spaceFacts[p.rng.IntN(len(spaceFacts))]
}

// All returns a copy of every fact in display order.
func All() []string {
	out := make([]string, len(spaceFacts))
	copy(out, spaceFacts[:])
	return out
}
