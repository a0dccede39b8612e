package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	resultsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	resultsScoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	resultsHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	resultsPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3)
)

// renderResults renders the game over panel with the run history,
// centered in a width x height area.
func renderResults(score int, h *History, width, height int) string {
	var b strings.Builder

	b.WriteString(resultsTitleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(resultsScoreStyle.Render(fmt.Sprintf("Score: %d   Best: %d", score, h.Best())))
	b.WriteString("\n\n")
	if h.Len() > 0 {
		t := historyTable(h)
		b.WriteString(t.View())
		b.WriteString("\n\n")
	}
	b.WriteString(resultsHintStyle.Render("Press Space to play again"))

	panel := resultsPanelStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
