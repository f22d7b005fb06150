package slots

// Result 基础模式的计分结果
type Result struct {
	Score    int
	Jackpots int       // 整行相同的行数
	Matches  [Rows]int // 每行最长连续相同的相邻对数（0-4）
}

// rowMatches 一行中最长连续相同符号的相邻对数
func rowMatches(row [Cols]rune) int {
	current, longest := 0, 0
	for j := 1; j < Cols; j++ {
		if row[j] == row[j-1] {
			current++
			longest = max(longest, current)
		} else {
			current = 0
		}
	}
	return longest
}

// pow10 10 的 n 次方
func pow10(n int) int {
	v := 1
	for range n {
		v *= 10
	}
	return v
}

// Score 每行按最长连续相同数 m 计 10^m 分（m > 0），整行相同为头奖
func Score(g Grid) Result {
	var r Result
	for i, row := range g {
		m := rowMatches(row)
		r.Matches[i] = m
		if m > 0 {
			r.Score += pow10(m)
		}
		if m == Cols-1 {
			r.Jackpots++
		}
	}
	return r
}
