package sound

// Sound names, matched against file base names in the sound directory
// (e.g. assets/sounds/deal.wav).
const (
	Deal     = "deal"
	Stop     = "stop"
	Select   = "select"
	Commit   = "commit"
	Win      = "win"
	Jackpot  = "jackpot"
	Lose     = "lose"
	GameOver = "gameover"
)

// Player plays named sound effects.
type Player interface {
	Play(name string)
}
