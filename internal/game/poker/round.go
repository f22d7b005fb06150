package poker

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/palemoky/poker-machine/internal/game/card"
	"github.com/palemoky/poker-machine/internal/game/input"
)

// DefaultRedrawBudget 每局默认的换牌次数
const DefaultRedrawBudget = 5

// Round 一局扑克的上下文：牌堆、手牌、换牌次数都只在本局内有效
type Round struct {
	ID     string
	Deck   *card.Deck
	Hand   *Hand
	Budget int

	advance input.EdgeDetector
}

// NewRound 重新生成并洗牌，手牌清空，换牌次数重置
func NewRound(rng *rand.Rand, budget int) *Round {
	return &Round{
		ID:     uuid.NewString(),
		Deck:   card.NewDeck(rng),
		Hand:   &Hand{},
		Budget: max(budget, 0),
	}
}

// advanced 每帧采样一次确认键，返回是否刚刚按下
func (r *Round) advanced(sig input.Signals) bool {
	return r.advance.JustActivated(sig.Advance())
}

// mustDraw 摸牌；牌堆为空说明程序不变量被破坏
func (r *Round) mustDraw() card.Card {
	c, err := r.Deck.Draw()
	if err != nil {
		panic(fmt.Errorf("round %s: %w", r.ID, err))
	}
	return c
}

// CardCount 牌堆与手牌合计张数，整局保持 52
func (r *Round) CardCount() int {
	return r.Deck.Len() + r.Hand.Count()
}
