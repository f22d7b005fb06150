package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/poker-machine/internal/game/card"
	"github.com/palemoky/poker-machine/internal/game/poker"
	"github.com/palemoky/poker-machine/internal/game/rule"
	"github.com/palemoky/poker-machine/internal/ui/common"
)

// PokerRules renders the payout table.
func PokerRules() string {
	var sb strings.Builder
	sb.WriteString("Deal five cards with SPACE. Each card is the one on screen when you press.\n")
	sb.WriteString("Then pick a slot 1-5 to redraw, SPACE to take the new card, 0 to keep your hand.\n\n")
	for _, c := range rule.Categories() {
		if c == rule.HighCard {
			continue
		}
		fmt.Fprintf(&sb, "  %-16s %6d\n", c.String(), c.Score())
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderFace renders a card's rank and suit in its color.
func renderFace(c card.Card, dim bool) string {
	style := common.BlackStyle
	if c.Color() == card.Red {
		style = common.RedStyle
	}
	if dim {
		style = common.GrayStyle
	}
	return style.Render(fmt.Sprintf("%-2s", c.String()))
}

// renderSlot renders one hand slot as a card box.
func renderSlot(v poker.SlotView) string {
	switch v.State {
	case poker.SlotDealt:
		return common.CardStyle.Render(renderFace(v.Card, false))
	case poker.SlotPreview:
		return common.CardStyle.Render(renderFace(v.Card, true))
	case poker.SlotRedrawing:
		return common.ActiveStyle.Render(renderFace(v.Card, false))
	default:
		return common.CardStyle.Render(common.BackStyle.Render(common.CardBack + " "))
	}
}

// renderHand lays the five slots out with their numbers underneath.
func renderHand(views [rule.HandSize]poker.SlotView) string {
	cols := make([]string, 0, len(views))
	for i, v := range views {
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center, renderSlot(v), fmt.Sprintf("%d", i+1)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// pokerStatus describes what the player is expected to do next.
func pokerStatus(p *poker.Play) string {
	switch p.Stage() {
	case poker.StageDealing:
		d := p.Dealer()
		return fmt.Sprintf("Press SPACE to deal slot %d. %s to go.", d.NextSlot()+1, common.Plural(d.Remaining(), "card"))
	case poker.StageRedrawing:
		rd := p.Redrawer()
		if rd.Phase() == poker.PhaseDrawing {
			return fmt.Sprintf("Press SPACE to take the new card for slot %d. %s left.", rd.Slot()+1, common.Plural(rd.Budget(), "redraw"))
		}
		return fmt.Sprintf("%s left. Choose a slot 1-5, or 0 to keep your hand.", common.Plural(rd.Budget(), "redraw"))
	default:
		return p.Result().String()
	}
}

// PokerTable renders the hand and the current prompt.
func PokerTable(p *poker.Play) string {
	if p == nil {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Center, renderHand(p.Slots()), "", pokerStatus(p))
}
