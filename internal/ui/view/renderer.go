// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/poker-machine/internal/game"
	"github.com/palemoky/poker-machine/internal/ui/common"
)

const title = "🎰 POKER MACHINE"

// Render renders the screen for the session's current phase.
// helpLine is the rendered key help shown at the bottom.
func Render(s *game.Session, width int, notice, helpLine string) string {
	var body string
	switch s.Phase() {
	case game.PhaseMenu:
		body = MenuView(s)
	case game.PhaseIntro:
		body = IntroView(s)
	case game.PhasePlaying:
		body = PlayingView(s)
	case game.PhaseResult:
		body = ResultView(s)
	case game.PhaseGameOver, game.PhaseQuit:
		body = FinalView(s)
	default:
		body = "Unknown phase"
	}

	var sb strings.Builder
	sb.WriteString(common.Center(width, common.TitleStyle(title)))
	sb.WriteString("\n\n")
	sb.WriteString(common.Center(width, body))
	if notice != "" {
		sb.WriteString("\n")
		sb.WriteString(common.Center(width, common.ErrorStyle.Render(notice)))
	}
	if helpLine != "" {
		sb.WriteString("\n")
		sb.WriteString(common.Center(width, common.PromptStyle.Render(helpLine)))
	}
	return common.DocStyle.Render(sb.String())
}

// pointsLine renders the current points and the next cost.
func pointsLine(l game.Ledger) string {
	return fmt.Sprintf("Points: %d   Cost per round: %d", l.Points(), l.Cost())
}

// MenuView renders the mode selection screen.
func MenuView(s *game.Session) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		"Choose a machine:",
		"",
		"  [B] Basic  - stop five spinning columns of symbols",
		"  [P] Poker  - deal five cards, then redraw",
		"",
		pointsLine(s.Ledger()),
	)
	return common.BoxStyle.Padding(0, 1).Render(content)
}

// IntroView renders the rules and cost of the selected mode.
func IntroView(s *game.Session) string {
	var rules string
	if s.Mode() == game.ModePoker {
		rules = PokerRules()
	} else {
		rules = BasicRules()
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		rules,
		"",
		pointsLine(s.Ledger()),
		"Press Enter to play or Q to quit.",
	)
	return common.BoxStyle.Padding(0, 1).Render(content)
}

// PlayingView renders the round in progress with the running points.
func PlayingView(s *game.Session) string {
	var table string
	if s.Mode() == game.ModePoker {
		table = PokerTable(s.Play())
	} else {
		table = BasicTable(s.Spin())
	}
	return lipgloss.JoinVertical(lipgloss.Center, table, "", pointsLine(s.Ledger()))
}

// ResultView renders the finished round and its outcome.
func ResultView(s *game.Session) string {
	o := s.Outcome()

	var table string
	if o.Mode == game.ModePoker {
		table = PokerTable(s.Play())
	} else {
		table = BasicTable(s.Spin())
	}

	lines := []string{table, ""}
	if o.Mode == game.ModePoker {
		lines = append(lines, common.ScoreStyle.Render(fmt.Sprintf("%s! +%d", o.Label, o.Score)))
		if o.Description != "" {
			lines = append(lines, o.Description)
		}
	} else {
		lines = append(lines, common.ScoreStyle.Render(fmt.Sprintf("Score: +%d", o.Score)))
		if o.Jackpots > 0 {
			lines = append(lines, fmt.Sprintf("%s JACKPOT! %s %s", common.JackpotIcon, common.Plural(o.Jackpots, "full row"), common.JackpotIcon))
		}
	}
	lines = append(lines, fmt.Sprintf("Points: %d", s.Ledger().Points()), "Press C to continue.")
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// tallyLines lists how often each result came up, best first.
func tallyLines(l game.Ledger) []string {
	var lines []string
	for _, label := range game.ResultLabels() {
		if n := l.Tally(label); n > 0 {
			lines = append(lines, fmt.Sprintf("  %-16s x%d", label, n))
		}
	}
	return lines
}

// FinalView renders the closing screen after quitting or running out of points.
func FinalView(s *game.Session) string {
	l := s.Ledger()
	lines := []string{
		s.Message(),
		"",
		fmt.Sprintf("Final points: %d", l.Points()),
		fmt.Sprintf("Max points:   %d", l.MaxPoints()),
		fmt.Sprintf("Played:       %s", common.Plural(l.Rounds(), "round")),
	}
	if tally := tallyLines(l); len(tally) > 0 {
		lines = append(lines, "")
		lines = append(lines, tally...)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return common.BoxStyle.Padding(0, 2).Render(content)
}
