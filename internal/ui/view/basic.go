package view

import (
	"fmt"
	"strings"

	"github.com/palemoky/poker-machine/internal/game/slots"
	"github.com/palemoky/poker-machine/internal/ui/common"
)

// BasicRules renders the rules of the symbol machine.
func BasicRules() string {
	return strings.Join([]string{
		"Five columns spin. Press SPACE to stop them one at a time, left to right.",
		"Each row pays for its longest run of matching neighbours:",
		"  2 in a row: 10   3: 100   4: 1000   5: 10000 " + common.JackpotIcon,
		fmt.Sprintf("Symbols: %s", string(slots.Symbols)),
	}, "\n")
}

// renderGrid draws the grid; stopped columns are highlighted.
func renderGrid(g slots.Grid, moving int) string {
	stopped := slots.Cols - moving
	var sb strings.Builder
	for row := range slots.Rows {
		for col := range slots.Cols {
			cell := fmt.Sprintf(" %c ", g[row][col])
			if col < stopped {
				cell = common.StoppedStyle.Render(cell)
			} else {
				cell = common.SymbolStyle.Render(cell)
			}
			sb.WriteString(cell)
		}
		if row < slots.Rows-1 {
			sb.WriteString("\n")
		}
	}
	return common.BoxStyle.Render(sb.String())
}

// BasicTable renders the grid and the current prompt.
func BasicTable(s *slots.Spin) string {
	if s == nil {
		return ""
	}
	status := fmt.Sprintf("Press SPACE to stop column %d.", slots.Cols-s.Moving()+1)
	if s.Done() {
		status = fmt.Sprintf("All columns stopped. Score: %d", s.Result().Score)
	}
	return renderGrid(s.Grid(), s.Moving()) + "\n\n" + status
}
