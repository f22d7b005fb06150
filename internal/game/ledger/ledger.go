// Package ledger 记录积分：每局扣除花费、累加得分并追踪最高积分。
package ledger

import (
	"fmt"

	"github.com/palemoky/poker-machine/internal/apperrors"
)

// Rules 积分规则
type Rules struct {
	StartingPoints int
	MinCost        int
	CostPercent    int // 花费为当前积分的百分比与 MinCost 的较大者
}

// Ledger 积分账本
type Ledger struct {
	rules  Rules
	points int
	max    int
	rounds int
	tally  map[string]int
}

// New 创建账本
func New(rules Rules) *Ledger {
	return &Ledger{
		rules:  rules,
		points: rules.StartingPoints,
		max:    rules.StartingPoints,
		tally:  make(map[string]int),
	}
}

// Points 当前积分
func (l *Ledger) Points() int { return l.points }

// MaxPoints 本次游戏达到过的最高积分
func (l *Ledger) MaxPoints() int { return l.max }

// Rounds 已开始的局数
func (l *Ledger) Rounds() int { return l.rounds }

// Cost 当前一局的花费
func (l *Ledger) Cost() int {
	return max(l.rules.MinCost, l.points*l.rules.CostPercent/100)
}

// CanAfford 当前积分是否足够再玩一局
func (l *Ledger) CanAfford() bool {
	return l.points >= l.Cost()
}

// Charge 开局扣除花费，返回扣除的积分
func (l *Ledger) Charge() (int, error) {
	cost := l.Cost()
	if l.points < cost {
		return 0, fmt.Errorf("需要 %d，剩余 %d: %w", cost, l.points, apperrors.ErrInsufficientPoints)
	}
	l.points -= cost
	l.rounds++
	return cost, nil
}

// Credit 记入一局的结果
func (l *Ledger) Credit(category string, score int) {
	l.points += score
	l.max = max(l.max, l.points)
	l.tally[category]++
}

// Tally 各结果出现的次数
func (l *Ledger) Tally(category string) int {
	return l.tally[category]
}
