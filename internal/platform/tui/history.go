package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// maxHistoryRows is the number of runs shown on the results screen.
const maxHistoryRows = 8

// RunRecord describes one finished session of the current process.
type RunRecord struct {
	Number   int
	Score    int
	Survived time.Duration
}

// History keeps the finished runs of this process in memory. Nothing is
// written to disk.
type History struct {
	runs []RunRecord
	best int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Add records a finished run and returns it.
func (h *History) Add(score int, survived time.Duration) RunRecord {
	r := RunRecord{
		Number:   len(h.runs) + 1,
		Score:    score,
		Survived: survived,
	}
	h.runs = append(h.runs, r)
	if score > h.best {
		h.best = score
	}
	return r
}

// Runs returns every recorded run, oldest first.
func (h *History) Runs() []RunRecord {
	return h.runs
}

// Len returns the number of recorded runs.
func (h *History) Len() int {
	return len(h.runs)
}

// Best returns the highest score recorded so far.
func (h *History) Best() int {
	return h.best
}

// Recent returns up to n runs, newest first.
func (h *History) Recent(n int) []RunRecord {
	if n > len(h.runs) {
		n = len(h.runs)
	}
	out := make([]RunRecord, 0, n)
	for i := len(h.runs) - 1; i >= len(h.runs)-n; i-- {
		out = append(out, h.runs[i])
	}
	return out
}

// historyTable builds the results table for the most recent runs.
func historyTable(h *History) table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 9},
	}

	recent := h.Recent(maxHistoryRows)
	rows := make([]table.Row, len(recent))
	for i, r := range recent {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.Number),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.1fs", r.Survived.Seconds()),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}
