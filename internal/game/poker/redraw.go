package poker

import (
	"github.com/palemoky/poker-machine/internal/game/card"
	"github.com/palemoky/poker-machine/internal/game/input"
	"github.com/palemoky/poker-machine/internal/game/rule"
)

// RedrawPhase 换牌阶段的状态
type RedrawPhase int

const (
	PhaseSelecting RedrawPhase = iota // 等待选择牌位
	PhaseDrawing                      // 预览新牌，等待确认
	PhaseFinished                     // 换牌结束
)

// FinishSelection 选择该数字立即结束换牌
const FinishSelection = 0

// Redrawer 换牌控制器：在次数用完或选择 0 之前，可反复选择牌位换牌
type Redrawer struct {
	round *Round
	phase RedrawPhase
	slot  int
}

// NewRedrawer 创建换牌控制器；次数为 0 时直接结束
func NewRedrawer(r *Round) *Redrawer {
	rd := &Redrawer{round: r, slot: -1}
	if r.Budget <= 0 {
		rd.phase = PhaseFinished
	}
	return rd
}

// Phase 当前状态
func (rd *Redrawer) Phase() RedrawPhase {
	return rd.phase
}

// Done 换牌是否结束
func (rd *Redrawer) Done() bool {
	return rd.phase == PhaseFinished
}

// Slot 正在换的牌位，未选择时为 -1
func (rd *Redrawer) Slot() int {
	return rd.slot
}

// Budget 剩余换牌次数
func (rd *Redrawer) Budget() int {
	return rd.round.Budget
}

// Poll 处理一帧输入
func (rd *Redrawer) Poll(sig input.Signals) Event {
	// 每帧都采样确认键，保证边沿检测的状态连续
	advanced := rd.round.advanced(sig)

	switch rd.phase {
	case PhaseSelecting:
		return rd.pollSelection(sig)
	case PhaseDrawing:
		return rd.pollDrawing(advanced)
	default:
		return EventNone
	}
}

// pollSelection 0 结束，1-5 选择牌位，其它输入忽略
func (rd *Redrawer) pollSelection(sig input.Signals) Event {
	n, ok := sig.Selection()
	if !ok {
		return EventNone
	}
	switch {
	case n == FinishSelection:
		rd.round.Budget = 0
		rd.phase = PhaseFinished
		return EventFinished
	case n >= 1 && n <= rule.HandSize:
		rd.slot = n - 1
		rd.phase = PhaseDrawing
		return EventSelected
	default:
		return EventNone
	}
}

// pollDrawing 未确认时洗牌换预览；确认后摸顶牌换入牌位，原牌放回牌堆底部
func (rd *Redrawer) pollDrawing(advanced bool) Event {
	if !advanced {
		rd.round.Deck.Shuffle()
		return EventNone
	}

	prev, err := rd.round.Hand.Replace(rd.slot, rd.round.mustDraw())
	if err != nil {
		panic(err)
	}
	rd.round.Deck.Return(prev)
	rd.round.Budget--
	rd.slot = -1

	if rd.round.Budget <= 0 {
		rd.round.Budget = 0
		rd.phase = PhaseFinished
	} else {
		rd.phase = PhaseSelecting
	}
	return EventCommitted
}

// Preview 正在换的牌位上预览的新牌
func (rd *Redrawer) Preview() (card.Card, bool) {
	if rd.phase != PhaseDrawing {
		return card.Card{}, false
	}
	top := rd.round.Deck.Peek(1)
	if len(top) == 0 {
		return card.Card{}, false
	}
	return top[0], true
}
