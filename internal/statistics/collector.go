package statistics

import (
	"github.com/lox/drawpoker/internal/game"
)

// Collector feeds Statistics from an engine's event bus. It is not safe for
// concurrent use; give each engine its own collector and Merge the results.
type Collector struct {
	stats *Statistics
	drawn map[string]int
}

// NewCollector creates a collector with empty statistics
func NewCollector() *Collector {
	return &Collector{
		stats: New(),
		drawn: make(map[string]int),
	}
}

// OnEvent records replacements and completed rounds
func (c *Collector) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.NewDealEvent:
		clear(c.drawn)
	case game.ReplacementReceivedEvent:
		c.drawn[e.Player.Name] = len(e.Discarded)
	case game.RoundCompleteEvent:
		c.stats.Add(e.Result, c.drawn)
	}
}

// Statistics returns the accumulated statistics
func (c *Collector) Statistics() *Statistics {
	return c.stats
}
