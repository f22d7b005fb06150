package rule

import (
	"fmt"
	"slices"

	"github.com/palemoky/poker-machine/internal/game/card"
)

// HandSize 一手牌的张数
const HandSize = 5

// Category 定义牌型
type Category int

const (
	HighCard      Category = iota // 高牌
	Pair                          // 一对
	TwoPair                       // 两对
	ThreeOfAKind                  // 三条
	Straight                      // 顺子
	Flush                         // 同花
	FullHouse                     // 葫芦
	FourOfAKind                   // 四条
	StraightFlush                 // 同花顺
	RoyalFlush                    // 皇家同花顺
)

// categoryNames 牌型名称映射表
var categoryNames = map[Category]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// categoryScores 牌型得分表
var categoryScores = map[Category]int{
	HighCard:      0,
	Pair:          10,
	TwoPair:       25,
	ThreeOfAKind:  50,
	Straight:      100,
	Flush:         150,
	FullHouse:     200,
	FourOfAKind:   250,
	StraightFlush: 1000,
	RoyalFlush:    10000,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Score 返回牌型得分
func (c Category) Score() int {
	return categoryScores[c]
}

// Categories 按得分从高到低返回所有牌型
func Categories() []Category {
	return []Category{RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush, Straight, ThreeOfAKind, TwoPair, Pair, HighCard}
}

// Result 评估结果
type Result struct {
	Category Category
	Score    int
}

func (r Result) String() string {
	return fmt.Sprintf("%s (%d)", r.Category, r.Score)
}

// HandAnalysis 对一手牌的预分析，各项只计算一次
type HandAnalysis struct {
	ords     [HandSize]int // 升序排列的点数序数
	flush    bool
	straight bool
	pairs    int // 相邻相等的边界数，同一组三条或四条只计一次
	nOfAKind int // 0、3 或 4
}

// SortedOrdinals 返回升序排列的点数序数
func SortedOrdinals(cards [HandSize]card.Card) [HandSize]int {
	var ords [HandSize]int
	for i, c := range cards {
		ords[i] = c.Ordinal()
	}
	slices.Sort(ords[:])
	return ords
}

// analyzeCards 分析手牌
func analyzeCards(cards [HandSize]card.Card) HandAnalysis {
	a := HandAnalysis{ords: SortedOrdinals(cards)}
	a.flush = isFlush(cards)
	a.straight = isStraight(a.ords)
	a.pairs = countPairs(a.ords)
	a.nOfAKind = countOfAKind(a.ords)
	return a
}

// isFlush 五张同花色
func isFlush(cards [HandSize]card.Card) bool {
	for i := 1; i < HandSize; i++ {
		if cards[i].Suit != cards[i-1].Suit {
			return false
		}
	}
	return true
}

// isStraight 五个连续序数；A-2-3-4-5 不算
func isStraight(ords [HandSize]int) bool {
	for i := 1; i < HandSize; i++ {
		if ords[i] != ords[i-1]+1 {
			return false
		}
	}
	return true
}

// countPairs 统计对子数：每一段相等的序数只在其起始边界计一次
func countPairs(ords [HandSize]int) int {
	pairs := 0
	for i := 1; i < HandSize; i++ {
		if ords[i] == ords[i-1] && (i == 1 || ords[i] != ords[i-2]) {
			pairs++
		}
	}
	return pairs
}

// countOfAKind 返回 3（三条）、4（四条）或 0
func countOfAKind(ords [HandSize]int) int {
	n := 0
	for i := 2; i < HandSize; i++ {
		if ords[i] == ords[i-1] && ords[i] == ords[i-2] {
			n = 3
			if i >= 3 && ords[i] == ords[i-3] {
				n = 4
			}
		}
	}
	return n
}

// checks 按优先级排列的牌型判断，第一个命中的生效
var checks = []struct {
	category Category
	match    func(HandAnalysis) bool
}{
	{RoyalFlush, func(a HandAnalysis) bool {
		return a.flush && a.straight && a.ords[0] == int(card.Rank10) && a.ords[HandSize-1] == int(card.RankA)
	}},
	{StraightFlush, func(a HandAnalysis) bool { return a.flush && a.straight }},
	{FourOfAKind, func(a HandAnalysis) bool { return a.nOfAKind == 4 }},
	{FullHouse, func(a HandAnalysis) bool { return a.pairs == 2 && a.nOfAKind == 3 }},
	{Flush, func(a HandAnalysis) bool { return a.flush }},
	{Straight, func(a HandAnalysis) bool { return a.straight }},
	{ThreeOfAKind, func(a HandAnalysis) bool { return a.nOfAKind == 3 }},
	{TwoPair, func(a HandAnalysis) bool { return a.pairs == 2 }},
	{Pair, func(a HandAnalysis) bool { return a.pairs == 1 }},
}

// Evaluate 计算一手牌的牌型与得分，结果与牌的顺序无关
func Evaluate(cards [HandSize]card.Card) Result {
	analysis := analyzeCards(cards)
	for _, check := range checks {
		if check.match(analysis) {
			return Result{Category: check.category, Score: check.category.Score()}
		}
	}
	return Result{Category: HighCard, Score: HighCard.Score()}
}
