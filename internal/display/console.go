package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/statistics"
	"github.com/lox/drawpoker/poker"
)

var lipglossBorder = lipgloss.RoundedBorder()

// Console narrates rounds as they are played
type Console struct {
	out    io.Writer
	styles *Styles
}

// NewConsole creates a console writing to out
func NewConsole(out io.Writer, color bool) *Console {
	return &Console{
		out:    out,
		styles: NewStyles(NewRenderer(out, color)),
	}
}

// OnEvent prints the events a person at the table would see
func (c *Console) OnEvent(event game.GameEvent) {
	s := c.styles
	switch e := event.(type) {
	case game.NewDealEvent:
		c.printf("\n%s\n", s.Header.Render(fmt.Sprintf("Round %d", e.Number)))
	case game.ReplacementReceivedEvent:
		switch n := len(e.Discarded); n {
		case 0:
			c.printf("%s stands pat\n", s.Player.Render(e.Player.Name))
		case 1:
			c.printf("%s draws 1 card\n", s.Player.Render(e.Player.Name))
		default:
			c.printf("%s draws %d cards\n", s.Player.Render(e.Player.Name), n)
		}
	case game.ShowAllHandsEvent:
		c.printf("\n")
		for _, p := range e.Players {
			category := ""
			if eval, ok := p.Evaluation(); ok {
				category = s.Category.Render(eval.Category.String())
			}
			c.printf("  %-12s %s  %s\n", p.Name, s.Hand(p.Hand()), category)
		}
	case game.WinnerEvent:
		c.printf("\n%s wins with %s %s\n",
			s.Success.Render(e.Player.Name),
			s.Category.Render(e.Category.String()),
			s.Info.Render(fmt.Sprintf("(%d wins)", e.Player.Wins())))
	case game.DrawEvent:
		c.printf("\n%s between %s with %s\n",
			s.Warning.Render("Draw"),
			strings.Join(names(e.Players), ", "),
			s.Category.Render(e.Category.String()))
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Standings prints a table of players and their wins
func (c *Console) Standings(standings []game.Standing) {
	t := table.New().
		Border(lipglossBorder).
		BorderStyle(c.styles.Border).
		Headers("Player", "Wins")
	for _, st := range standings {
		t.Row(st.Name, strconv.Itoa(st.Wins))
	}
	fmt.Fprintln(c.out, t.Render())
}

// Statistics prints category frequencies, wins and draws
func (c *Console) Statistics(stats *statistics.Statistics) {
	fmt.Fprintf(c.out, "%s\n", c.styles.Header.Render(fmt.Sprintf("%d rounds, %d hands", stats.Rounds, stats.HandCount())))

	cats := table.New().
		Border(lipglossBorder).
		BorderStyle(c.styles.Border).
		Headers("Category", "Hands", "Frequency", "Winning")
	for _, cat := range poker.Categories {
		cats.Row(
			cat.String(),
			strconv.Itoa(stats.Hands[cat]),
			fmt.Sprintf("%.4f%%", 100*stats.Frequency(cat)),
			strconv.Itoa(stats.Winning[cat]),
		)
	}
	fmt.Fprintln(c.out, cats.Render())

	wins := table.New().
		Border(lipglossBorder).
		BorderStyle(c.styles.Border).
		Headers("Player", "Wins", "Share")
	for _, name := range stats.Players() {
		share := 0.0
		if stats.Rounds > 0 {
			share = 100 * float64(stats.Wins[name]) / float64(stats.Rounds)
		}
		wins.Row(name, strconv.Itoa(stats.Wins[name]), fmt.Sprintf("%.2f%%", share))
	}
	wins.Row("(draws)", strconv.Itoa(stats.Draws), fmt.Sprintf("%.2f%%", 100*stats.DrawRate()))
	fmt.Fprintln(c.out, wins.Render())

	fmt.Fprintf(c.out, "Cards drawn per hand: %.2f ± %.2f\n", stats.MeanDrawn(), stats.StdDevDrawn())
}

// Evaluations prints hands with their evaluation, marking the winners
func (c *Console) Evaluations(contenders []game.Contender, outcome game.Outcome) {
	winners := make(map[*game.Player]bool, len(outcome.Winners))
	for _, w := range outcome.Winners {
		winners[w] = true
	}

	t := table.New().
		Border(lipglossBorder).
		BorderStyle(c.styles.Border).
		Headers("", "Hand", "Category", "Ranks")
	for _, ct := range contenders {
		mark := ""
		if winners[ct.Player] {
			mark = "*"
		}
		t.Row(mark, poker.FormatCards(ct.Player.Hand()), ct.Hand.Category.String(), fmt.Sprint(ct.Hand.Ranks))
	}
	fmt.Fprintln(c.out, t.Render())

	if outcome.Draw() {
		fmt.Fprintf(c.out, "%s with %s\n", c.styles.Warning.Render("Draw"), outcome.Category)
		return
	}
	fmt.Fprintf(c.out, "%s wins with %s\n", c.styles.Success.Render(outcome.Winner().Name), outcome.Category)
}

func names(players []*game.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}
