// Package slots 实现基础模式：5×5 的符号转轮，逐列停下后按行计分。
package slots

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/palemoky/poker-machine/internal/game/input"
)

const (
	Rows = 5
	Cols = 5
)

// Symbols 转轮上的全部符号
var Symbols = []rune{'A', 'B', 'C', 'X', 'Y', 'Z', '$', '%', '@', '#', '!', '~'}

// Grid 转轮的当前画面，Grid[row][col]
type Grid [Rows][Cols]rune

// Event 一帧轮询产生的事件
type Event int

const (
	EventNone     Event = iota
	EventStopped        // 停下一列
	EventFinished       // 全部停下并已计分
)

// Spin 一局基础模式
type Spin struct {
	ID string

	grid    Grid
	moving  int
	rng     *rand.Rand
	advance input.EdgeDetector
	result  Result
}

// NewSpin 随机填满转轮，全部列都在转动
func NewSpin(rng *rand.Rand) *Spin {
	s := &Spin{ID: uuid.NewString(), moving: Cols, rng: rng}
	for row := range Rows {
		for col := range Cols {
			s.grid[row][col] = s.randomSymbol()
		}
	}
	return s
}

func (s *Spin) randomSymbol() rune {
	if s.rng != nil {
		return Symbols[s.rng.IntN(len(Symbols))]
	}
	return Symbols[rand.IntN(len(Symbols))]
}

// rotate 最右边 n 列整体下移一行，顶部补一个新符号
func (s *Spin) rotate(n int) {
	for col := Cols - n; col < Cols; col++ {
		for row := Rows - 1; row > 0; row-- {
			s.grid[row][col] = s.grid[row-1][col]
		}
		s.grid[0][col] = s.randomSymbol()
	}
}

// Poll 处理一帧：转动仍在转的列，确认键刚按下时停下最左边转动的列
func (s *Spin) Poll(sig input.Signals) Event {
	if s.Done() {
		return EventNone
	}

	s.rotate(s.moving)
	if !s.advance.JustActivated(sig.Advance()) {
		return EventNone
	}

	s.moving--
	if s.moving == 0 {
		s.result = Score(s.grid)
		return EventFinished
	}
	return EventStopped
}

// Moving 仍在转动的列数
func (s *Spin) Moving() int { return s.moving }

// Done 是否全部停下
func (s *Spin) Done() bool { return s.moving == 0 }

// Grid 当前画面
func (s *Spin) Grid() Grid { return s.grid }

// Result 计分结果，仅在 Done 之后有效
func (s *Spin) Result() Result { return s.result }
