package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// bannerColors picks the banner color for each ending.
var bannerColors = map[invaders.Outcome]lipgloss.Color{
	invaders.OutcomeVictory: lipgloss.Color("10"),
	invaders.OutcomeDefeat:  lipgloss.Color("9"),
	invaders.OutcomeQuit:    lipgloss.Color("245"),
}

// Summary is what the result screen shows about a finished game.
type Summary struct {
	Outcome invaders.Outcome
	State   core.GameState
	Final   *core.Frame // Board at the end; may be nil
}

// Banner returns the headline for the outcome.
func (s Summary) Banner() string {
	switch s.Outcome {
	case invaders.OutcomeVictory:
		return "YOU WIN"
	case invaders.OutcomeDefeat:
		return "GAME OVER"
	default:
		return "GAME ABANDONED"
	}
}

// Rows returns the statistics table rows.
func (s Summary) Rows() []table.Row {
	return []table.Row{
		{"Score", fmt.Sprintf("%d", s.State.Score)},
		{"Invaders destroyed", fmt.Sprintf("%d", s.State.Hits)},
		{"Invaders left", fmt.Sprintf("%d", s.State.Remaining)},
		{"Shots fired", fmt.Sprintf("%d", s.State.ShotsFired)},
		{"Accuracy", fmt.Sprintf("%.0f%%", s.State.Accuracy()*100)},
		{"Time", s.State.Elapsed.Round(100 * time.Millisecond).String()},
	}
}

// ResultModel is the Bubble Tea model for the result screen.
type ResultModel struct {
	summary  Summary
	table    table.Model
	help     help.Model
	keys     ScreenKeyMap
	width    int
	again    bool
	quitting bool
}

// NewResultModel creates the result screen for a finished game.
func NewResultModel(s Summary) ResultModel {
	return ResultModel{
		summary: s,
		table:   newStatsTable(s.Rows()),
		help:    help.New(),
		keys:    DefaultScreenKeyMap("play again"),
		width:   60,
	}
}

// newStatsTable creates the statistics table.
func newStatsTable(rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Stat", Width: 20},
			{Title: "Value", Width: 10},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// Init initializes the result model.
func (m ResultModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the result screen.
func (m ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Continue):
			m.again = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the result screen.
func (m ResultModel) View() string {
	if m.quitting || m.again {
		return ""
	}

	var b strings.Builder

	banner := lipgloss.NewStyle().
		Bold(true).
		Foreground(bannerColors[m.summary.Outcome]).
		Render(m.summary.Banner())
	b.WriteString("\n")
	b.WriteString(centerText(banner, m.width))
	b.WriteString("\n\n")

	stats := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.table.View())

	body := stats
	if m.summary.Final != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, RenderBoard(m.summary.Final), "  ", stats)
	}
	b.WriteString(centerText(body, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// PlayAgain reports whether the player asked for another round.
func (m ResultModel) PlayAgain() bool {
	return m.again
}

// RunResult shows the result screen. Returns true if the player wants to
// play again.
func RunResult(s Summary) (again bool, err error) {
	p := tea.NewProgram(
		NewResultModel(s),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ResultModel)
	if !ok {
		return false, nil
	}
	return m.PlayAgain(), nil
}
