package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/poker-machine/internal/apperrors"
)

var defaultRules = Rules{StartingPoints: 100, MinCost: 20, CostPercent: 10}

func TestLedger_Cost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points int
		cost   int
	}{
		{"minimum applies", 100, 20},
		{"exactly the threshold", 200, 20},
		{"percentage applies", 1000, 100},
		{"rounds down", 1234, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := New(Rules{StartingPoints: tt.points, MinCost: 20, CostPercent: 10})
			assert.Equal(t, tt.cost, l.Cost())
		})
	}
}

func TestLedger_ChargeAndCredit(t *testing.T) {
	t.Parallel()

	l := New(defaultRules)
	assert.Equal(t, 100, l.Points())
	assert.Equal(t, 100, l.MaxPoints())

	cost, err := l.Charge()
	require.NoError(t, err)
	assert.Equal(t, 20, cost)
	assert.Equal(t, 80, l.Points())
	assert.Equal(t, 1, l.Rounds())

	l.Credit("Straight", 100)
	assert.Equal(t, 180, l.Points())
	assert.Equal(t, 180, l.MaxPoints())
	assert.Equal(t, 1, l.Tally("Straight"))

	_, err = l.Charge()
	require.NoError(t, err)
	l.Credit("High Card", 0)
	assert.Equal(t, 160, l.Points())
	assert.Equal(t, 180, l.MaxPoints(), "max is kept")
	assert.Equal(t, 1, l.Tally("High Card"))
	assert.Equal(t, 0, l.Tally("Flush"))
}

func TestLedger_InsufficientPoints(t *testing.T) {
	t.Parallel()

	l := New(Rules{StartingPoints: 30, MinCost: 20, CostPercent: 10})
	_, err := l.Charge()
	require.NoError(t, err)
	assert.False(t, l.CanAfford())

	_, err = l.Charge()
	assert.True(t, errors.Is(err, apperrors.ErrInsufficientPoints))
	assert.Equal(t, 10, l.Points())
	assert.Equal(t, 1, l.Rounds())
}
