package rule

import (
	"github.com/paulhankin/poker"

	"github.com/palemoky/poker-machine/internal/game/card"
)

// librarySuits 花色到 paulhankin/poker 花色的映射
var librarySuits = map[card.Suit]poker.Suit{
	card.Diamond: poker.Diamond,
	card.Club:    poker.Club,
	card.Heart:   poker.Heart,
	card.Spade:   poker.Spade,
}

// toLibraryCard 转换为 paulhankin/poker 的牌（A 为 1，2-K 为 2-13）
func toLibraryCard(c card.Card) (poker.Card, error) {
	rank := poker.Rank(c.Ordinal() + 2)
	if c.Rank == card.RankA {
		rank = poker.Rank(1)
	}
	return poker.MakeCard(librarySuits[c.Suit], rank)
}

func toLibraryHand(cards [HandSize]card.Card) ([HandSize]poker.Card, error) {
	var out [HandSize]poker.Card
	for i, c := range cards {
		pc, err := toLibraryCard(c)
		if err != nil {
			return out, err
		}
		out[i] = pc
	}
	return out, nil
}

// isWheel A-2-3-4-5：本机不认作顺子，而通用牌力库会
func isWheel(ords [HandSize]int) bool {
	return ords == [HandSize]int{0, 1, 2, 3, int(card.RankA)}
}

// Describe 返回牌力库给出的手牌描述，例如 "seven-high straight flush"。
// 描述与 Evaluate 的牌型可能不一致时（A-2-3-4-5）返回 false。
func Describe(cards [HandSize]card.Card) (string, bool) {
	if isWheel(SortedOrdinals(cards)) {
		return "", false
	}
	hand, err := toLibraryHand(cards)
	if err != nil {
		return "", false
	}
	desc, err := poker.Describe(hand[:])
	if err != nil || desc == "" {
		return "", false
	}
	return desc, true
}
