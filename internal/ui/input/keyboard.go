// Package input handles keyboard input processing.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/poker-machine/internal/game"
	gameinput "github.com/palemoky/poker-machine/internal/game/input"
)

// KeyMap holds every key binding of the machine.
type KeyMap struct {
	Basic     key.Binding
	Poker     key.Binding
	Play      key.Binding
	Quit      key.Binding
	Continue  key.Binding
	Advance   key.Binding
	Select    key.Binding
	Finish    key.Binding
	Exit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Basic:     key.NewBinding(key.WithKeys("b", "B"), key.WithHelp("b", "basic")),
		Poker:     key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "poker")),
		Play:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		Quit:      key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),
		Continue:  key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "continue")),
		Advance:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "stop / confirm")),
		Select:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "redraw slot")),
		Finish:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "keep hand")),
		Exit:      key.NewBinding(key.WithKeys("enter", "q", "Q", "esc"), key.WithHelp("enter", "exit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Bindings returns the bindings shown in the help line for a phase.
func (k KeyMap) Bindings(p game.Phase, redrawing bool) []key.Binding {
	switch p {
	case game.PhaseMenu:
		return []key.Binding{k.Basic, k.Poker, k.ForceQuit}
	case game.PhaseIntro:
		return []key.Binding{k.Play, k.Quit}
	case game.PhasePlaying:
		if redrawing {
			return []key.Binding{k.Select, k.Finish, k.Advance, k.ForceQuit}
		}
		return []key.Binding{k.Advance, k.ForceQuit}
	case game.PhaseResult:
		return []key.Binding{k.Continue, k.ForceQuit}
	default:
		return []key.Binding{k.Exit}
	}
}

// KeyLatch turns key press events into per-frame signals.
// Terminals only report presses, so a press counts as "held" for the frame
// it arrived in. Auto-repeat faster than a frame keeps it held; the
// terminal's initial repeat delay does not, and reads as a second press.
type KeyLatch struct {
	advance   bool
	selection int
	selected  bool
}

var _ gameinput.Signals = (*KeyLatch)(nil)

// PressAdvance records an advance key press for the current frame.
func (l *KeyLatch) PressAdvance() {
	l.advance = true
}

// PressDigit records a digit key press for the current frame.
// Anything outside 0-9 is ignored.
func (l *KeyLatch) PressDigit(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return false
	}
	l.selection = int(r - '0')
	l.selected = true
	return true
}

// Advance implements gameinput.Signals.
func (l *KeyLatch) Advance() bool {
	return l.advance
}

// Selection implements gameinput.Signals.
func (l *KeyLatch) Selection() (int, bool) {
	return l.selection, l.selected
}

// EndFrame clears everything latched during the frame.
func (l *KeyLatch) EndFrame() {
	*l = KeyLatch{}
}
