// Package ui provides the main entry point for the UI.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/poker-machine/internal/game"
	"github.com/palemoky/poker-machine/internal/sound"
	"github.com/palemoky/poker-machine/internal/ui/model"
)

// NewModel creates the root model for a session.
func NewModel(s *game.Session, player sound.Player, frame time.Duration) *model.Model {
	return model.New(s, player, frame)
}

// Run runs the machine in the alternate screen until the player exits.
func Run(s *game.Session, player sound.Player, frame time.Duration) error {
	p := tea.NewProgram(NewModel(s, player, frame), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
