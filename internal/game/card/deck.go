package card

import (
	"math/rand/v2"
	"slices"

	"github.com/palemoky/poker-machine/internal/apperrors"
)

// DeckSize 一副牌的张数
const DeckSize = NumRanks * NumSuits

// Deck 定义一副牌：从顶部摸牌，向底部还牌
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck 生成 52 张牌并洗牌；rng 为 nil 时使用全局随机源
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for s := Diamond; s <= Spade; s++ {
		for r := Rank2; r <= RankA; r++ {
			d.cards = append(d.cards, New(r, s))
		}
	}
	d.Shuffle()
	return d
}

// Shuffle 打乱剩余牌的顺序
func (d *Deck) Shuffle() {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
		return
	}
	rand.Shuffle(len(d.cards), swap)
}

// Draw 摸走顶部的牌
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, apperrors.ErrEmptyDeck
	}
	top := d.cards[0]
	d.cards = d.cards[1:]
	return top, nil
}

// Return 将牌放回底部
func (d *Deck) Return(c Card) {
	d.cards = append(d.cards, c)
}

// Peek 返回顶部最多 n 张牌的副本，不改变牌堆
func (d *Deck) Peek(n int) []Card {
	n = min(max(n, 0), len(d.cards))
	return slices.Clone(d.cards[:n])
}

// Len 剩余张数
func (d *Deck) Len() int {
	return len(d.cards)
}

// Contains 判断牌是否仍在牌堆中
func (d *Deck) Contains(c Card) bool {
	return slices.Contains(d.cards, c)
}

// Cards 返回剩余牌的副本（顶部在前）
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}
