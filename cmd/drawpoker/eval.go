package main

import (
	"fmt"
	"io"

	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

type EvalCmd struct {
	Hands   []string `arg:"" help:"Five-card hands such as '♠A ♥A ♣10 ♦9 ♣3' or 'As Ah Tc 9d 3c'"`
	NoColor bool     `help:"Disable colour output"`

	out io.Writer
}

func (c *EvalCmd) Run() error {
	contenders, err := parseContenders(c.Hands)
	if err != nil {
		return err
	}
	outcome, err := game.ResolveWinners(contenders)
	if err != nil {
		return err
	}
	display.NewConsole(stdout(c.out), !c.NoColor).Evaluations(contenders, outcome)
	return nil
}

// parseContenders reads each hand and rejects cards that appear twice, since
// every hand comes from the same deck.
func parseContenders(hands []string) ([]game.Contender, error) {
	seen := make(map[poker.Card]int)
	contenders := make([]game.Contender, 0, len(hands))
	for i, h := range hands {
		cards, err := poker.ParseCards(h)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		for _, card := range cards {
			if prev, ok := seen[card]; ok {
				return nil, fmt.Errorf("hand %d: %s already used in hand %d", i+1, card, prev)
			}
			seen[card] = i + 1
		}
		c, err := game.NewContender(fmt.Sprintf("hand %d", i+1), cards)
		if err != nil {
			return nil, err
		}
		contenders = append(contenders, c)
	}
	return contenders, nil
}
