package slots

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/poker-machine/internal/game/input"
)

func gridFromRows(rows ...string) Grid {
	var g Grid
	for i, row := range rows {
		copy(g[i][:], []rune(row))
	}
	return g
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		grid     Grid
		score    int
		jackpots int
	}{
		{
			name:  "No matches",
			grid:  gridFromRows("ABCXY", "BCXYZ", "CXYZ$", "XYZ$%", "YZ$%@"),
			score: 0,
		},
		{
			name:  "One pair in one row",
			grid:  gridFromRows("AABXY", "BCXYZ", "CXYZ$", "XYZ$%", "YZ$%@"),
			score: 10,
		},
		{
			name:  "Three in a row",
			grid:  gridFromRows("ABBBY", "BCXYZ", "CXYZ$", "XYZ$%", "YZ$%@"),
			score: 100,
		},
		{
			name:  "Longest run counts, not the sum",
			grid:  gridFromRows("AABBB", "BCXYZ", "CXYZ$", "XYZ$%", "YZ$%@"),
			score: 100,
		},
		{
			name:  "Separate pairs count once",
			grid:  gridFromRows("AAXBB", "BCXYZ", "CXYZ$", "XYZ$%", "YZ$%@"),
			score: 10,
		},
		{
			name:  "Four in a row",
			grid:  gridFromRows("~~~~Y", "BCXYZ", "CXYZ$", "XYZ$%", "YZ$%@"),
			score: 1000,
		},
		{
			name:     "Jackpot",
			grid:     gridFromRows("$$$$$", "BCXYZ", "CXYZ$", "XYZ$%", "YZ$%@"),
			score:    10000,
			jackpots: 1,
		},
		{
			name:     "All rows jackpot",
			grid:     gridFromRows("AAAAA", "BBBBB", "CCCCC", "XXXXX", "YYYYY"),
			score:    50000,
			jackpots: 5,
		},
		{
			name:  "Mixed rows",
			grid:  gridFromRows("AABXY", "BBBYZ", "CXYZ$", "@@@@%", "YZ$%@"),
			score: 10 + 100 + 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Score(tt.grid)
			assert.Equal(t, tt.score, r.Score)
			assert.Equal(t, tt.jackpots, r.Jackpots)
		})
	}
}

func TestNewSpin_UsesKnownSymbols(t *testing.T) {
	t.Parallel()

	s := NewSpin(rand.New(rand.NewPCG(1, 2)))
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, Cols, s.Moving())
	for _, row := range s.Grid() {
		for _, sym := range row {
			assert.True(t, slices.Contains(Symbols, sym), "unexpected symbol %c", sym)
		}
	}
}

func TestSpin_StopsColumnsLeftToRight(t *testing.T) {
	t.Parallel()

	s := NewSpin(rand.New(rand.NewPCG(3, 4)))

	// 停下第一列
	assert.Equal(t, EventStopped, s.Poll(input.NewScript(input.Press())))
	assert.Equal(t, Cols-1, s.Moving())
	frozen := s.Grid()

	// 后续帧里第一列保持不变
	for range 10 {
		s.Poll(input.NewScript(input.Release()))
		g := s.Grid()
		for row := range Rows {
			assert.Equal(t, frozen[row][0], g[row][0])
		}
	}
}

func TestSpin_RotateShiftsDown(t *testing.T) {
	t.Parallel()

	s := NewSpin(rand.New(rand.NewPCG(5, 6)))
	before := s.Grid()
	s.Poll(input.NewScript(input.Release()))
	after := s.Grid()

	for col := range Cols {
		for row := 1; row < Rows; row++ {
			assert.Equal(t, before[row-1][col], after[row][col])
		}
	}
}

func TestSpin_HeldKeyStopsOneColumn(t *testing.T) {
	t.Parallel()

	s := NewSpin(rand.New(rand.NewPCG(7, 8)))
	script := input.NewScript(input.Press(), input.Press(), input.Press())
	for !script.Done() {
		s.Poll(script)
		script.Next()
	}
	assert.Equal(t, Cols-1, s.Moving())
}

func TestSpin_FinishScoresGrid(t *testing.T) {
	t.Parallel()

	s := NewSpin(rand.New(rand.NewPCG(9, 10)))
	var last Event
	for range Cols {
		last = s.Poll(input.NewScript(input.Press()))
		s.Poll(input.NewScript(input.Release()))
	}
	require.True(t, s.Done())
	assert.Equal(t, EventFinished, last)
	assert.Equal(t, Score(s.Grid()), s.Result())

	before := s.Grid()
	assert.Equal(t, EventNone, s.Poll(input.NewScript(input.Press())))
	assert.Equal(t, before, s.Grid())
}
