package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// titleRowWidth is the number of invaders shown in the title art.
const titleRowWidth = 7

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TitleModel is the Bubble Tea model for the title screen.
type TitleModel struct {
	skin     invaders.Skin
	game     GameKeyMap
	keys     ScreenKeyMap
	help     help.Model
	frame    int
	width    int
	height   int
	start    bool
	quitting bool
}

// NewTitleModel creates a title screen describing the configured controls.
func NewTitleModel(skin invaders.Skin, keys config.KeyConfig) TitleModel {
	h := help.New()
	h.ShowAll = true

	return TitleModel{
		skin:  skin,
		game:  NewGameKeyMap(keys),
		keys:  DefaultScreenKeyMap("start"),
		help:  h,
		width: 60,
	}
}

// Init starts the animation.
func (m TitleModel) Init() tea.Cmd {
	return tickCmd(blinkInterval)
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Continue):
			m.start = true
			return m, tea.Quit
		}

	case TickMsg:
		m.frame++
		return m, tickCmd(blinkInterval)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.quitting || m.start {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("I N V A D E R S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.invaderRow(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.glyph(m.skin.Shot), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.glyph(m.skin.Player), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Controls", m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.game), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())), m.width))
	b.WriteString("\n")

	return b.String()
}

// invaderRow draws a line of invaders that flips glyphs every tick.
func (m TitleModel) invaderRow() string {
	cell := m.skin.Invader[m.frame%2]
	style := colorStyles[cell.Color]

	glyphs := make([]string, titleRowWidth)
	for i := range glyphs {
		glyphs[i] = string(cell.Rune)
	}
	return style.Render(strings.Join(glyphs, " "))
}

// glyph renders a single styled character.
func (m TitleModel) glyph(c core.Cell) string {
	return colorStyles[c.Color].Render(string(c.Rune))
}

// Start reports whether the player chose to start the game.
func (m TitleModel) Start() bool {
	return m.start
}

// RunTitle shows the title screen. Returns false if the player quit.
func RunTitle(skin invaders.Skin, keys config.KeyConfig) (start bool, err error) {
	p := tea.NewProgram(
		NewTitleModel(skin, keys),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(TitleModel)
	if !ok {
		return false, nil
	}
	return m.Start(), nil
}
