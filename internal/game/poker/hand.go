package poker

import (
	"fmt"

	"github.com/palemoky/poker-machine/internal/apperrors"
	"github.com/palemoky/poker-machine/internal/game/card"
	"github.com/palemoky/poker-machine/internal/game/rule"
)

// Hand 五个牌位，发牌前为空
type Hand struct {
	slots [rule.HandSize]card.Card
	dealt [rule.HandSize]bool
}

func checkSlot(i int) error {
	if i < 0 || i >= rule.HandSize {
		return fmt.Errorf("牌位 %d: %w", i+1, apperrors.ErrInvalidSlot)
	}
	return nil
}

// Place 将牌放入空牌位
func (h *Hand) Place(i int, c card.Card) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	if h.dealt[i] {
		return fmt.Errorf("牌位 %d 已有牌 %s: %w", i+1, h.slots[i], apperrors.ErrInvalidSlot)
	}
	h.slots[i] = c
	h.dealt[i] = true
	return nil
}

// Replace 替换已发牌位上的牌，返回原来的牌
func (h *Hand) Replace(i int, c card.Card) (card.Card, error) {
	if err := checkSlot(i); err != nil {
		return card.Card{}, err
	}
	if !h.dealt[i] {
		return card.Card{}, fmt.Errorf("牌位 %d 尚未发牌: %w", i+1, apperrors.ErrInvalidSlot)
	}
	prev := h.slots[i]
	h.slots[i] = c
	return prev, nil
}

// Card 返回牌位上的牌
func (h *Hand) Card(i int) (card.Card, bool) {
	if checkSlot(i) != nil || !h.dealt[i] {
		return card.Card{}, false
	}
	return h.slots[i], true
}

// Count 已发牌的牌位数
func (h *Hand) Count() int {
	n := 0
	for _, d := range h.dealt {
		if d {
			n++
		}
	}
	return n
}

// Complete 五个牌位是否都已发牌
func (h *Hand) Complete() bool {
	return h.Count() == rule.HandSize
}

// Cards 返回完整的五张牌
func (h *Hand) Cards() ([rule.HandSize]card.Card, error) {
	if !h.Complete() {
		return h.slots, apperrors.ErrRoundNotFinished
	}
	return h.slots, nil
}
