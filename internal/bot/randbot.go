package bot

import (
	rand "math/rand/v2"

	"github.com/lox/drawpoker/poker"
)

// RandBot throws away each card with even odds
type RandBot struct {
	rng *rand.Rand
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand) *RandBot {
	if rng == nil {
		panic("rng is required for random strategy")
	}
	return &RandBot{rng: rng}
}

func (r *RandBot) Name() string { return Random }

func (r *RandBot) Discards(hand poker.Hand) []int {
	var out []int
	for i := range hand {
		if r.rng.IntN(2) == 0 {
			out = append(out, i)
		}
	}
	return out
}
