package store

import (
	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
)

// StandingsSource supplies the standings to persist. *game.Engine
// satisfies it.
type StandingsSource interface {
	Standings() []game.Standing
}

// Autosaver writes standings after every completed round. Failures are
// logged and the game carries on.
type Autosaver struct {
	path   string
	source StandingsSource
	logger *log.Logger
	err    error
}

// NewAutosaver creates an autosaver writing to path
func NewAutosaver(path string, source StandingsSource, logger *log.Logger) *Autosaver {
	return &Autosaver{
		path:   path,
		source: source,
		logger: logger.WithPrefix("store"),
	}
}

// OnEvent saves on round completion
func (a *Autosaver) OnEvent(event game.GameEvent) {
	if _, ok := event.(game.RoundCompleteEvent); !ok {
		return
	}
	_ = a.Flush()
}

// Flush saves the current standings immediately
func (a *Autosaver) Flush() error {
	a.err = Save(a.path, a.source.Standings())
	if a.err != nil {
		a.logger.Error("Failed to save standings", "path", a.path, "error", a.err)
		return a.err
	}
	a.logger.Debug("Saved standings", "path", a.path)
	return nil
}

// Err returns the error from the most recent save, if any
func (a *Autosaver) Err() error {
	return a.err
}
