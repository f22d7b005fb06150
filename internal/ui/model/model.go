// Package model implements the bubbletea model driving a game session.
package model

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/poker-machine/internal/apperrors"
	"github.com/palemoky/poker-machine/internal/game"
	"github.com/palemoky/poker-machine/internal/game/poker"
	"github.com/palemoky/poker-machine/internal/logger"
	"github.com/palemoky/poker-machine/internal/sound"
	"github.com/palemoky/poker-machine/internal/ui/input"
	"github.com/palemoky/poker-machine/internal/ui/view"
)

// FrameMsg is delivered once per frame by the ticker.
type FrameMsg time.Time

// Model is the root tea.Model: it renders, samples the key latch and
// steps the session once per frame.
type Model struct {
	session *game.Session
	keys    input.KeyMap
	latch   input.KeyLatch
	help    help.Model
	sound   sound.Player
	frame   time.Duration

	width  int
	height int
	notice string
}

// New creates a Model. player may be nil for a silent machine.
func New(s *game.Session, player sound.Player, frame time.Duration) *Model {
	return &Model{
		session: s,
		keys:    input.DefaultKeyMap(),
		help:    help.New(),
		sound:   player,
		frame:   frame,
	}
}

// Session returns the underlying game session.
func (m *Model) Session() *game.Session { return m.session }

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case FrameMsg:
		m.step()
		return m, m.tick()
	}
	return m, nil
}

// step polls the session with this frame's input, then clears the latch.
// bubbletea recovers panics from Update on its own, so the stack is written
// to the debug log here before the panic continues.
func (m *Model) step() {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	ev := m.session.Poll(&m.latch)
	m.latch.EndFrame()
	m.playEvent(ev)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		logger.LogInfo("force quit")
		return tea.Quit
	}

	var err error
	switch m.session.Phase() {
	case game.PhaseMenu:
		switch {
		case key.Matches(msg, m.keys.Basic):
			err = m.session.SelectMode(game.ModeBasic)
		case key.Matches(msg, m.keys.Poker):
			err = m.session.SelectMode(game.ModePoker)
		}
	case game.PhaseIntro:
		switch {
		case key.Matches(msg, m.keys.Play):
			err = m.session.Start()
		case key.Matches(msg, m.keys.Quit):
			err = m.session.Quit()
		}
	case game.PhasePlaying:
		if key.Matches(msg, m.keys.Advance) {
			m.latch.PressAdvance()
		} else {
			m.latch.PressDigit(msg)
		}
	case game.PhaseResult:
		if key.Matches(msg, m.keys.Continue) {
			err = m.session.Continue()
			if m.session.Phase() == game.PhaseGameOver {
				m.play(sound.GameOver)
			}
		}
	case game.PhaseGameOver, game.PhaseQuit:
		if key.Matches(msg, m.keys.Exit) {
			return tea.Quit
		}
	}

	if err != nil {
		logger.LogError("key %q: %v", msg.String(), err)
		m.notice = noticeFor(err)
	} else {
		m.notice = ""
	}
	return nil
}

// noticeFor turns a session error into a line for the player.
func noticeFor(err error) string {
	if errors.Is(err, apperrors.ErrInsufficientPoints) {
		return "Not enough points to play another round."
	}
	return err.Error()
}

// playEvent maps a session event to a sound effect.
func (m *Model) playEvent(ev game.Event) {
	switch ev {
	case game.EventReveal:
		if m.session.Mode() == game.ModePoker {
			m.play(sound.Deal)
		} else {
			m.play(sound.Stop)
		}
	case game.EventSelect:
		m.play(sound.Select)
	case game.EventCommit:
		m.play(sound.Commit)
	case game.EventWin:
		m.play(sound.Win)
	case game.EventJackpot:
		m.play(sound.Jackpot)
	case game.EventLoss:
		m.play(sound.Lose)
	}
}

func (m *Model) play(name string) {
	if m.sound != nil {
		m.sound.Play(name)
	}
}

// redrawing reports whether a poker round is waiting on slot selection.
func (m *Model) redrawing() bool {
	p := m.session.Play()
	return m.session.Mode() == game.ModePoker && p != nil && p.Stage() == poker.StageRedrawing
}

func (m *Model) View() string {
	helpLine := m.help.ShortHelpView(m.keys.Bindings(m.session.Phase(), m.redrawing()))
	return view.Render(m.session, m.width, m.notice, helpLine)
}
