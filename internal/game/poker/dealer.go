package poker

import (
	"github.com/palemoky/poker-machine/internal/game/card"
	"github.com/palemoky/poker-machine/internal/game/input"
	"github.com/palemoky/poker-machine/internal/game/rule"
)

// Event 一帧轮询产生的事件
type Event int

const (
	EventNone      Event = iota
	EventDealt           // 揭开一张牌
	EventSelected        // 选中要换的牌位
	EventCommitted       // 换牌完成
	EventFinished        // 换牌阶段结束
	EventScored          // 已计分
)

// Dealer 依次揭开五张牌，每次确认揭开最左边未揭开的牌位
type Dealer struct {
	round     *Round
	remaining int
}

// NewDealer 创建发牌控制器
func NewDealer(r *Round) *Dealer {
	return &Dealer{round: r, remaining: rule.HandSize - r.Hand.Count()}
}

// Remaining 剩余未揭开的张数
func (d *Dealer) Remaining() int {
	return d.remaining
}

// Done 是否已全部揭开
func (d *Dealer) Done() bool {
	return d.remaining == 0
}

// NextSlot 下一个要揭开的牌位
func (d *Dealer) NextSlot() int {
	return rule.HandSize - d.remaining
}

// Poll 处理一帧：确认键刚按下时摸顶牌放入下一个牌位，否则洗牌换一组预览
func (d *Dealer) Poll(sig input.Signals) Event {
	if d.Done() {
		return EventNone
	}
	if !d.round.advanced(sig) {
		d.round.Deck.Shuffle()
		return EventNone
	}

	slot := d.NextSlot()
	if err := d.round.Hand.Place(slot, d.round.mustDraw()); err != nil {
		panic(err)
	}
	d.remaining--
	return EventDealt
}

// Preview 未揭开牌位上显示的牌：第 k 个未揭开的牌位显示牌堆第 k 张
func (d *Dealer) Preview() []card.Card {
	return d.round.Deck.Peek(d.remaining)
}
