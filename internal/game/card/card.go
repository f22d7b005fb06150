package card

import (
	"fmt"
	"strings"
)

// Suit 定义花色
type Suit int

// Rank 定义点数，取值即序数：0 表示 "2"，12 表示 "A"
type Rank int

// CardColor 定义牌的颜色
type CardColor int

const (
	Black CardColor = iota
	Red
)

const (
	Diamond Suit = iota // 方块
	Club                // 梅花
	Heart               // 红心
	Spade               // 黑桃
)

// NumSuits 花色数量
const NumSuits = 4

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Diamond: "♦",
	Club:    "♣",
	Heart:   "♥",
	Spade:   "♠",
}

// suitLetters 花色字母，用于解析
var suitLetters = map[rune]Suit{
	'D': Diamond, '♦': Diamond,
	'C': Club, '♣': Club,
	'H': Heart, '♥': Heart,
	'S': Spade, '♠': Spade,
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// Color 返回花色颜色
func (s Suit) Color() CardColor {
	if s == Heart || s == Diamond {
		return Red
	}
	return Black
}

const (
	Rank2 Rank = iota
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// NumRanks 点数数量
const NumRanks = 13

// rankNames 牌面值字符，按序数排列
const rankNames = "23456789TJQKA"

func (r Rank) String() string {
	if r < Rank2 || r > RankA {
		return "?"
	}
	return string(rankNames[r])
}

// RankFromChar 将字符转换为点数
func RankFromChar(char rune) (Rank, error) {
	if i := strings.IndexRune(rankNames, char); i >= 0 {
		return Rank(i), nil
	}
	return -1, fmt.Errorf("无法识别的点数: %c", char)
}

// Card 定义一张牌，构造后不可变
type Card struct {
	Rank Rank
	Suit Suit
}

// New 创建一张牌
func New(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

// Ordinal 返回点数序数 0-12
func (c Card) Ordinal() int {
	return int(c.Rank)
}

// Color 返回牌的颜色
func (c Card) Color() CardColor {
	return c.Suit.Color()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Parse 解析形如 "TC"、"T♣"、"10♣" 的牌面
func Parse(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(strings.Replace(s, "10", "T", 1)))
	runes := []rune(s)
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("无效的牌面: %q", s)
	}

	rank, err := RankFromChar(runes[0])
	if err != nil {
		return Card{}, err
	}
	suit, ok := suitLetters[runes[1]]
	if !ok {
		return Card{}, fmt.Errorf("无法识别的花色: %c", runes[1])
	}
	return New(rank, suit), nil
}

// ParseCards 解析以空格分隔的多张牌
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
