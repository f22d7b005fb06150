package apperrors

// 错误码
const (
	CodeEmptyDeck = iota + 1001
	CodeInsufficientPoints
	CodeInvalidSlot
	CodeRoundNotFinished
	CodeWrongPhase
)

// GameError 游戏错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrEmptyDeck          = &GameError{Code: CodeEmptyDeck, Message: "牌堆已空"}
	ErrInsufficientPoints = &GameError{Code: CodeInsufficientPoints, Message: "积分不足"}
	ErrInvalidSlot        = &GameError{Code: CodeInvalidSlot, Message: "无效的牌位"}
	ErrRoundNotFinished   = &GameError{Code: CodeRoundNotFinished, Message: "本局尚未结束"}
	ErrWrongPhase         = &GameError{Code: CodeWrongPhase, Message: "当前阶段无法执行该操作"}
)
