package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

type pickerKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Pick   key.Binding
	Done   key.Binding
	Quit   key.Binding
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Toggle, k.Pick, k.Done, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var pickerKeys = pickerKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "discard"),
	),
	Pick: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "discard card"),
	),
	Done: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "draw"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "save and quit"),
	),
}

// PickerModel is the Bubble Tea model for choosing discards
type PickerModel struct {
	player string
	hand   poker.Hand
	marked []bool
	cursor int
	done   bool
	quit   bool

	styles *Styles
	help   help.Model
}

// NewPickerModel creates a picker for one player's sorted hand
func NewPickerModel(player string, hand poker.Hand, styles *Styles) PickerModel {
	return PickerModel{
		player: player,
		hand:   hand,
		marked: make([]bool, len(hand)),
		styles: styles,
		help:   help.New(),
	}
}

// Init initializes the picker
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Done):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, pickerKeys.Right):
		if m.cursor < len(m.hand)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, pickerKeys.Toggle):
		m.toggle(m.cursor)
	case key.Matches(keyMsg, pickerKeys.Pick):
		if idx := int(keyMsg.Runes[0] - '1'); idx < len(m.hand) {
			m.cursor = idx
			m.toggle(idx)
		}
	}
	return m, nil
}

func (m *PickerModel) toggle(idx int) {
	if idx >= 0 && idx < len(m.marked) {
		m.marked[idx] = !m.marked[idx]
	}
}

// View renders the hand with the cursor and the marked cards
func (m PickerModel) View() string {
	if m.done || m.quit {
		return ""
	}
	s := m.styles

	var b strings.Builder
	fmt.Fprintf(&b, "%s, choose cards to discard\n\n", s.Player.Render(m.player))
	for i, c := range m.hand {
		card := s.Card(c)
		if m.marked[i] {
			card = s.Marked.Render(c.String())
		}
		if i == m.cursor {
			card = s.Cursor.Render("[") + card + s.Cursor.Render("]")
		} else {
			card = " " + card + " "
		}
		b.WriteString(card)
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(pickerKeys))
	b.WriteString("\n")
	return b.String()
}

// Discards returns the marked indexes in hand order
func (m PickerModel) Discards() []int {
	var out []int
	for i, marked := range m.marked {
		if marked {
			out = append(out, i)
		}
	}
	return out
}

// Quit reports whether the player asked to leave the game
func (m PickerModel) Quit() bool {
	return m.quit
}

// PromptFunc asks a person which cards to discard. quit reports a request to
// leave the game after this round.
type PromptFunc func(player string, hand poker.Hand) (discards []int, quit bool, err error)

// TerminalPrompt runs the picker on the given terminal streams
func TerminalPrompt(in io.Reader, out io.Writer, color bool) PromptFunc {
	styles := NewStyles(NewRenderer(out, color))
	return func(player string, hand poker.Hand) ([]int, bool, error) {
		program := tea.NewProgram(
			NewPickerModel(player, hand, styles),
			tea.WithInput(in),
			tea.WithOutput(out),
		)
		final, err := program.Run()
		if err != nil {
			return nil, false, fmt.Errorf("running discard picker: %w", err)
		}
		m := final.(PickerModel)
		return m.Discards(), m.Quit(), nil
	}
}

// HumanSeat lets a person choose discards for one player
type HumanSeat struct {
	player string
	prompt PromptFunc
	onQuit func()
	logger *log.Logger
}

// NewHumanSeat creates a seat for the named player. onQuit is called when
// the person asks to leave, typically (*game.Engine).Stop.
func NewHumanSeat(player string, prompt PromptFunc, onQuit func(), logger *log.Logger) *HumanSeat {
	return &HumanSeat{
		player: player,
		prompt: prompt,
		onQuit: onQuit,
		logger: logger.WithPrefix("human"),
	}
}

// OnEvent prompts when it is this player's turn to draw
func (h *HumanSeat) OnEvent(event game.GameEvent) {
	sel, ok := event.(game.SelectDiscardsEvent)
	if !ok || sel.Player.Name != h.player {
		return
	}

	discards, quit, err := h.prompt(h.player, sel.Player.Hand())
	if err != nil {
		// Standing pat keeps the round going.
		h.logger.Error("Discard prompt failed", "player", h.player, "error", err)
		return
	}
	for _, idx := range discards {
		if err := sel.Player.MarkDiscard(idx); err != nil {
			h.logger.Warn("Ignoring discard", "player", h.player, "error", err)
		}
	}
	if quit && h.onQuit != nil {
		h.logger.Info("Player asked to quit", "player", h.player)
		h.onQuit()
	}
}
