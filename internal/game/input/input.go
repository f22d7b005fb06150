// Package input 提供输入信号的抽象与边沿检测。
package input

// Signals 输入信号源，每帧采样一次
type Signals interface {
	// Advance 返回发牌/确认键的原始电平（是否处于按下状态）
	Advance() bool
	// Selection 返回一次选择输入（0-5），没有输入时 ok 为 false
	Selection() (n int, ok bool)
}

// EdgeDetector 边沿检测：只有从未激活到激活的跳变才算一次触发
type EdgeDetector struct {
	wasActive bool
}

// JustActivated 采样当前电平，仅在上一次采样未激活而本次激活时返回 true
func (e *EdgeDetector) JustActivated(active bool) bool {
	fired := active && !e.wasActive
	e.wasActive = active
	return fired
}

// Script 按帧回放的输入序列，用于测试和演示
type Script struct {
	frames []Frame
	pos    int
}

// Frame 一帧的输入
type Frame struct {
	Advance   bool
	Selection int
	Selected  bool
}

// Press 按下确认键的一帧
func Press() Frame { return Frame{Advance: true} }

// Release 无输入的一帧
func Release() Frame { return Frame{} }

// Select 选择输入的一帧
func Select(n int) Frame { return Frame{Selection: n, Selected: true} }

// NewScript 创建输入脚本；脚本耗尽后保持无输入
func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames}
}

// Next 前进到下一帧，返回是否仍有脚本帧
func (s *Script) Next() bool {
	if s.pos >= len(s.frames) {
		return false
	}
	s.pos++
	return s.pos < len(s.frames)
}

func (s *Script) current() Frame {
	if s.pos >= len(s.frames) {
		return Frame{}
	}
	return s.frames[s.pos]
}

// Advance 实现 Signals
func (s *Script) Advance() bool {
	return s.current().Advance
}

// Selection 实现 Signals
func (s *Script) Selection() (int, bool) {
	f := s.current()
	return f.Selection, f.Selected
}

// Done 脚本是否已经耗尽
func (s *Script) Done() bool {
	return s.pos >= len(s.frames)
}
