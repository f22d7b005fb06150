package poker

import (
	"github.com/palemoky/poker-machine/internal/game/card"
	"github.com/palemoky/poker-machine/internal/game/input"
	"github.com/palemoky/poker-machine/internal/game/rule"
)

// Stage 一局扑克所处的阶段
type Stage int

const (
	StageDealing Stage = iota
	StageRedrawing
	StageScored
)

// SlotState 牌位的显示状态
type SlotState int

const (
	SlotFaceDown  SlotState = iota // 背面
	SlotPreview                    // 预览中的牌，尚未确定
	SlotDealt                      // 已确定的牌
	SlotRedrawing                  // 正在换的牌位，显示预览的新牌
)

// SlotView 渲染一个牌位所需的信息
type SlotView struct {
	Card  card.Card
	State SlotState
}

// Play 串联发牌、换牌与计分
type Play struct {
	round       *Round
	dealer      *Dealer
	redrawer    *Redrawer
	stage       Stage
	result      rule.Result
	description string
	hidePreview bool
}

// NewPlay 以给定的上下文开始一局
func NewPlay(r *Round, hidePreview bool) *Play {
	return &Play{
		round:       r,
		dealer:      NewDealer(r),
		hidePreview: hidePreview,
	}
}

// Round 本局上下文
func (p *Play) Round() *Round { return p.round }

// Stage 当前阶段
func (p *Play) Stage() Stage { return p.stage }

// Dealer 发牌控制器
func (p *Play) Dealer() *Dealer { return p.dealer }

// Redrawer 换牌控制器，发牌结束前为 nil
func (p *Play) Redrawer() *Redrawer { return p.redrawer }

// Result 计分结果，仅在 StageScored 有效
func (p *Play) Result() rule.Result { return p.result }

// Description 牌型的文字描述，可能为空
func (p *Play) Description() string { return p.description }

// Poll 处理一帧输入并推进阶段
func (p *Play) Poll(sig input.Signals) Event {
	switch p.stage {
	case StageDealing:
		ev := p.dealer.Poll(sig)
		if p.dealer.Done() {
			p.enterRedraw()
		}
		if p.stage == StageScored {
			return EventScored
		}
		return ev
	case StageRedrawing:
		ev := p.redrawer.Poll(sig)
		if p.redrawer.Done() {
			p.score()
			return EventScored
		}
		return ev
	default:
		return EventNone
	}
}

func (p *Play) enterRedraw() {
	p.redrawer = NewRedrawer(p.round)
	p.stage = StageRedrawing
	if p.redrawer.Done() {
		p.score()
	}
}

func (p *Play) score() {
	cards, err := p.round.Hand.Cards()
	if err != nil {
		panic(err)
	}
	p.result = rule.Evaluate(cards)
	if p.result.Category != rule.HighCard {
		p.description, _ = rule.Describe(cards)
	}
	p.stage = StageScored
}

// Slots 返回五个牌位当前的显示状态
func (p *Play) Slots() [rule.HandSize]SlotView {
	var views [rule.HandSize]SlotView
	for i := range views {
		if c, ok := p.round.Hand.Card(i); ok {
			views[i] = SlotView{Card: c, State: SlotDealt}
		}
	}

	switch p.stage {
	case StageDealing:
		if p.hidePreview {
			break
		}
		next := p.dealer.NextSlot()
		for k, c := range p.dealer.Preview() {
			views[next+k] = SlotView{Card: c, State: SlotPreview}
		}
	case StageRedrawing:
		if c, ok := p.redrawer.Preview(); ok {
			views[p.redrawer.Slot()] = SlotView{Card: c, State: SlotRedrawing}
		}
	}
	return views
}
