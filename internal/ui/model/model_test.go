package model

import (
	"math/rand/v2"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/poker-machine/internal/apperrors"
	"github.com/palemoky/poker-machine/internal/game"
	"github.com/palemoky/poker-machine/internal/game/ledger"
	"github.com/palemoky/poker-machine/internal/logger"
	"github.com/palemoky/poker-machine/internal/sound"
)

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newModel(l game.Ledger, opts game.Options, player sound.Player) *Model {
	s := game.NewSession(l, rand.New(rand.NewPCG(3, 4)), opts)
	return New(s, player, 10*time.Millisecond)
}

func newLedger(points int) *ledger.Ledger {
	return ledger.New(ledger.Rules{StartingPoints: points, MinCost: 20, CostPercent: 10})
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func frame() tea.Msg { return FrameMsg(time.Now()) }

func TestModel_InitTicks(t *testing.T) {
	t.Parallel()

	m := newModel(newLedger(100), game.Options{}, nil)
	assert.NotNil(t, m.Init())
}

func TestModel_MenuToIntro(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  tea.KeyMsg
		mode game.Mode
	}{
		{"basic", runeKey('b'), game.ModeBasic},
		{"poker", runeKey('P'), game.ModePoker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newModel(newLedger(100), game.Options{}, nil)
			send(m, tt.key)
			assert.Equal(t, game.PhaseIntro, m.Session().Phase())
			assert.Equal(t, tt.mode, m.Session().Mode())
		})
	}
}

func TestModel_IgnoresKeysOutOfPhase(t *testing.T) {
	t.Parallel()

	m := newModel(newLedger(100), game.Options{}, nil)
	send(m, enterKey, runeKey('c'), spaceKey, runeKey('q'))
	assert.Equal(t, game.PhaseMenu, m.Session().Phase())
	assert.Empty(t, m.notice)
}

func TestModel_ForceQuit(t *testing.T) {
	t.Parallel()

	m := newModel(newLedger(100), game.Options{}, nil)
	cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_PokerRound(t *testing.T) {
	t.Parallel()

	player := new(sound.MockPlayer)
	player.On("Play", sound.Deal).Times(4)
	player.On("Play", mock.AnythingOfType("string")).Once()

	m := newModel(newLedger(100), game.Options{RedrawBudget: 0}, player)
	send(m, runeKey('p'), enterKey)
	require.Equal(t, game.PhasePlaying, m.Session().Phase())
	assert.Equal(t, 80, m.Session().Ledger().Points())
	assert.Contains(t, m.View(), "deal slot 1")

	for range 5 {
		send(m, spaceKey, frame(), frame())
	}

	assert.Equal(t, game.PhaseResult, m.Session().Phase())
	assert.Contains(t, m.View(), "Press C to continue.")
	player.AssertExpectations(t)

	send(m, runeKey('c'))
	assert.Equal(t, game.PhaseIntro, m.Session().Phase())
}

func TestModel_HeldSpaceDealsOnce(t *testing.T) {
	t.Parallel()

	m := newModel(newLedger(100), game.Options{RedrawBudget: 5}, nil)
	send(m, runeKey('p'), enterKey)

	// 自动重复：每帧都收到按键
	for range 4 {
		send(m, spaceKey, frame())
	}
	assert.Equal(t, 4, m.Session().Play().Dealer().Remaining())
}

func TestModel_RedrawSelection(t *testing.T) {
	t.Parallel()

	player := new(sound.MockPlayer)
	player.On("Play", mock.AnythingOfType("string"))

	m := newModel(newLedger(100), game.Options{RedrawBudget: 2}, player)
	send(m, runeKey('p'), enterKey)
	for range 5 {
		send(m, spaceKey, frame(), frame())
	}
	assert.Contains(t, m.View(), "1-5")

	send(m, runeKey('3'), frame())
	assert.Equal(t, 2, m.Session().Play().Redrawer().Slot())
	player.AssertCalled(t, "Play", sound.Select)

	send(m, spaceKey, frame(), frame())
	assert.Equal(t, 1, m.Session().Play().Redrawer().Budget())
	player.AssertCalled(t, "Play", sound.Commit)

	send(m, runeKey('0'), frame())
	assert.Equal(t, game.PhaseResult, m.Session().Phase())
}

func TestModel_BasicRound(t *testing.T) {
	t.Parallel()

	player := new(sound.MockPlayer)
	player.On("Play", sound.Stop).Times(4)
	player.On("Play", mock.AnythingOfType("string")).Once()

	m := newModel(newLedger(100), game.Options{}, player)
	send(m, runeKey('b'), enterKey)
	for range 5 {
		send(m, spaceKey, frame(), frame())
	}

	assert.Equal(t, game.PhaseResult, m.Session().Phase())
	player.AssertExpectations(t)
}

func TestModel_InsufficientPoints(t *testing.T) {
	t.Parallel()

	l := new(game.MockLedger)
	l.On("Charge").Return(0, apperrors.ErrInsufficientPoints)
	l.On("Points").Return(10)
	l.On("Cost").Return(20)

	m := newModel(l, game.Options{}, nil)
	send(m, runeKey('b'), enterKey)

	assert.Equal(t, game.PhaseIntro, m.Session().Phase())
	assert.Equal(t, "Not enough points to play another round.", m.notice)
	assert.Contains(t, m.View(), "Not enough points")
}

func TestModel_GameOver(t *testing.T) {
	t.Parallel()

	l := new(game.MockLedger)
	l.On("Charge").Return(20, nil)
	l.On("Credit", mock.Anything, mock.Anything).Return()
	l.On("Points").Return(0)
	l.On("Cost").Return(20)
	l.On("MaxPoints").Return(100)
	l.On("CanAfford").Return(false)
	l.On("Rounds").Return(1)
	l.On("Tally", mock.AnythingOfType("string")).Return(0)

	player := new(sound.MockPlayer)
	player.On("Play", mock.AnythingOfType("string"))

	m := newModel(l, game.Options{}, player)
	send(m, runeKey('b'), enterKey)
	for range 5 {
		send(m, spaceKey, frame(), frame())
	}
	send(m, runeKey('c'))

	assert.Equal(t, game.PhaseGameOver, m.Session().Phase())
	player.AssertCalled(t, "Play", sound.GameOver)
	out := m.View()
	assert.Contains(t, out, game.GameOverMessage)
	assert.Contains(t, out, "Max points:   100")

	cmd := send(m, enterKey)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	t.Parallel()

	m := newModel(newLedger(100), game.Options{}, nil)
	send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Contains(t, m.View(), "POKER MACHINE")
}

func TestModel_PanicDuringFrameIsLogged(t *testing.T) {
	require.NoError(t, logger.Init(t.TempDir(), "info"))
	t.Cleanup(logger.Close)

	l := new(game.MockLedger)
	l.On("Charge").Return(20, nil)
	l.On("Points").Return(80)
	l.On("Cost").Return(20)
	l.On("Credit", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("ledger unavailable")
	})

	m := newModel(l, game.Options{}, nil)
	send(m, runeKey('b'), enterKey)
	for range 4 {
		send(m, spaceKey, frame(), frame())
	}
	send(m, spaceKey)

	assert.PanicsWithValue(t, "ledger unavailable", func() { m.Update(frame()) })

	data, err := os.ReadFile(logger.GetLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[PANIC] ledger unavailable")
}
