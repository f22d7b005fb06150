package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/palemoky/poker-machine/internal/apperrors"
	"github.com/palemoky/poker-machine/internal/game/input"
	"github.com/palemoky/poker-machine/internal/game/poker"
	"github.com/palemoky/poker-machine/internal/game/rule"
	"github.com/palemoky/poker-machine/internal/game/slots"
	"github.com/palemoky/poker-machine/internal/logger"
)

// 结束时的提示
const (
	QuitMessage     = "You quit the game."
	GameOverMessage = "You have run out of points! Game over."
)

// Mode 游戏模式
type Mode int

const (
	ModeBasic Mode = iota
	ModePoker
)

func (m Mode) String() string {
	if m == ModePoker {
		return "poker"
	}
	return "basic"
}

// Phase 会话阶段
type Phase int

const (
	PhaseMenu     Phase = iota // 选择模式
	PhaseIntro                 // 规则说明与花费，等待开始或退出
	PhasePlaying               // 转轮或发牌/换牌中
	PhaseResult                // 显示本局得分，等待继续
	PhaseGameOver              // 积分不足
	PhaseQuit                  // 玩家退出
)

// Event 会话层面的事件，供界面播放音效
type Event int

const (
	EventNone    Event = iota
	EventReveal        // 揭开一张牌或停下一列
	EventSelect        // 选中换牌位
	EventCommit        // 换牌完成
	EventWin           // 本局有得分
	EventJackpot       // 头奖或皇家同花顺
	EventLoss          // 本局零分
)

// Ledger 积分账本：开局扣费，结束时记入 (结果, 得分)
type Ledger interface {
	Points() int
	MaxPoints() int
	Cost() int
	CanAfford() bool
	Charge() (int, error)
	Credit(category string, score int)
	Rounds() int
	Tally(label string) int
}

// BasicLabel 基础模式一局结果的名称
const BasicLabel = "Basic"

// ResultLabels 账本中可能出现的全部结果名称：扑克牌型从高到低，最后是基础模式
func ResultLabels() []string {
	cats := rule.Categories()
	labels := make([]string, 0, len(cats)+1)
	for _, c := range cats {
		labels = append(labels, c.String())
	}
	return append(labels, BasicLabel)
}

// Options 回合参数
type Options struct {
	RedrawBudget int
	HidePreview  bool
}

// Outcome 一局的结果
type Outcome struct {
	Mode        Mode
	Label       string // 扑克为牌型名称，基础模式为 BasicLabel
	Score       int
	Jackpots    int
	Description string
}

// Session 一次游戏会话，替代全局变量保存积分与当前回合
type Session struct {
	ID string

	ledger Ledger
	rng    *rand.Rand
	opts   Options

	mode    Mode
	phase   Phase
	play    *poker.Play
	spin    *slots.Spin
	outcome Outcome
	message string
}

// NewSession 创建会话；rng 为 nil 时使用全局随机源
func NewSession(l Ledger, rng *rand.Rand, opts Options) *Session {
	return &Session{
		ID:     uuid.NewString(),
		ledger: l,
		rng:    rng,
		opts:   opts,
		phase:  PhaseMenu,
	}
}

func (s *Session) log() *logrus.Entry {
	return logger.WithFields(logrus.Fields{"session": s.ID, "mode": s.mode.String()})
}

func (s *Session) expect(p Phase) error {
	if s.phase != p {
		return fmt.Errorf("phase %d: %w", s.phase, apperrors.ErrWrongPhase)
	}
	return nil
}

// SelectMode 在菜单中选择模式
func (s *Session) SelectMode(m Mode) error {
	if err := s.expect(PhaseMenu); err != nil {
		return err
	}
	s.mode = m
	s.phase = PhaseIntro
	s.log().Info("mode selected")
	return nil
}

// Start 扣除花费并开始新的一局
func (s *Session) Start() error {
	if err := s.expect(PhaseIntro); err != nil {
		return err
	}
	cost, err := s.ledger.Charge()
	if err != nil {
		return err
	}

	var roundID string
	switch s.mode {
	case ModePoker:
		round := poker.NewRound(s.rng, s.opts.RedrawBudget)
		s.play = poker.NewPlay(round, s.opts.HidePreview)
		s.spin = nil
		roundID = round.ID
	default:
		s.spin = slots.NewSpin(s.rng)
		s.play = nil
		roundID = s.spin.ID
	}
	s.outcome = Outcome{}
	s.phase = PhasePlaying
	s.log().WithFields(logrus.Fields{"round": roundID, "cost": cost, "points": s.ledger.Points()}).Info("round started")
	return nil
}

// Quit 在说明页退出
func (s *Session) Quit() error {
	if err := s.expect(PhaseIntro); err != nil {
		return err
	}
	s.phase = PhaseQuit
	s.message = QuitMessage
	s.log().WithFields(logrus.Fields{"points": s.ledger.Points(), "rounds": s.ledger.Rounds()}).Info("player quit")
	return nil
}

// Poll 处理一帧输入，仅在 PhasePlaying 有效
func (s *Session) Poll(sig input.Signals) Event {
	if s.phase != PhasePlaying {
		return EventNone
	}
	if s.mode == ModePoker {
		return s.pollPoker(sig)
	}
	return s.pollBasic(sig)
}

func (s *Session) pollPoker(sig input.Signals) Event {
	switch s.play.Poll(sig) {
	case poker.EventDealt:
		return EventReveal
	case poker.EventSelected:
		return EventSelect
	case poker.EventCommitted:
		return EventCommit
	case poker.EventScored:
		res := s.play.Result()
		return s.finish(Outcome{
			Mode:        ModePoker,
			Label:       res.Category.String(),
			Score:       res.Score,
			Description: s.play.Description(),
		}, res.Category == rule.RoyalFlush)
	default:
		return EventNone
	}
}

func (s *Session) pollBasic(sig input.Signals) Event {
	switch s.spin.Poll(sig) {
	case slots.EventStopped:
		return EventReveal
	case slots.EventFinished:
		res := s.spin.Result()
		return s.finish(Outcome{
			Mode:     ModeBasic,
			Label:    BasicLabel,
			Score:    res.Score,
			Jackpots: res.Jackpots,
		}, res.Jackpots > 0)
	default:
		return EventNone
	}
}

func (s *Session) finish(o Outcome, jackpot bool) Event {
	s.outcome = o
	s.ledger.Credit(o.Label, o.Score)
	s.phase = PhaseResult
	s.log().WithFields(logrus.Fields{
		"result": o.Label,
		"score":  o.Score,
		"points": s.ledger.Points(),
	}).Info("round finished")

	switch {
	case jackpot:
		return EventJackpot
	case o.Score > 0:
		return EventWin
	default:
		return EventLoss
	}
}

// Continue 结果页继续：积分足够回到说明页，否则游戏结束
func (s *Session) Continue() error {
	if err := s.expect(PhaseResult); err != nil {
		return err
	}
	if s.ledger.CanAfford() {
		s.phase = PhaseIntro
		return nil
	}
	s.phase = PhaseGameOver
	s.message = GameOverMessage
	s.log().WithFields(logrus.Fields{"max_points": s.ledger.MaxPoints(), "rounds": s.ledger.Rounds()}).Info("game over")
	return nil
}

// Phase 当前阶段
func (s *Session) Phase() Phase { return s.phase }

// Mode 当前模式
func (s *Session) Mode() Mode { return s.mode }

// Play 当前扑克局，基础模式下为 nil
func (s *Session) Play() *poker.Play { return s.play }

// Spin 当前基础模式局，扑克模式下为 nil
func (s *Session) Spin() *slots.Spin { return s.spin }

// Outcome 最近一局的结果
func (s *Session) Outcome() Outcome { return s.outcome }

// Message 退出或游戏结束时的提示
func (s *Session) Message() string { return s.message }

// Ledger 积分账本
func (s *Session) Ledger() Ledger { return s.ledger }

// Ended 会话是否已经结束
func (s *Session) Ended() bool {
	return s.phase == PhaseQuit || s.phase == PhaseGameOver
}
