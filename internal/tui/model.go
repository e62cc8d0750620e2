package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dotdrift/pkg/reconcile"
)

const (
	tabManifest = iota
	tabSystem
)

var tabTitles = []string{"Only in Manifest", "Only on System"}

// Model is the bubbletea model for the drift browser.
type Model struct {
	result *reconcile.Result
	styles *Styles
	keys   KeyMap

	tab    int
	cursor [2]int
	width  int
	height int
}

// NewModel creates a drift browser over a reconciliation result.
func NewModel(result *reconcile.Result) Model {
	return Model{
		result: result,
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
	}
}

// Run opens the drift browser and blocks until the user quits.
func Run(result *reconcile.Result) error {
	p := tea.NewProgram(NewModel(result), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor[m.tab] > 0 {
				m.cursor[m.tab]--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor[m.tab] < len(m.column(m.tab))-1 {
				m.cursor[m.tab]++
			}
		case key.Matches(msg, m.keys.Left):
			m.tab = tabManifest
		case key.Matches(msg, m.keys.Right):
			m.tab = tabSystem
		case key.Matches(msg, m.keys.Top):
			m.cursor[m.tab] = 0
		case key.Matches(msg, m.keys.Bot):
			if n := len(m.column(m.tab)); n > 0 {
				m.cursor[m.tab] = n - 1
			}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("dotdrift: Brewfile drift"))
	b.WriteString("\n")

	for i, title := range tabTitles {
		label := fmt.Sprintf("%s (%d)", title, len(m.column(i)))
		if i == m.tab {
			b.WriteString(m.styles.TabActive.Render(label))
		} else {
			b.WriteString(m.styles.TabInactive.Render(label))
		}
	}
	b.WriteString("\n\n")

	items := m.column(m.tab)
	if len(items) == 0 {
		b.WriteString(m.styles.Empty.Render("nothing here, this side is clean"))
		b.WriteString("\n")
	} else {
		for i, pkg := range items {
			if i == m.cursor[m.tab] {
				b.WriteString(m.styles.ItemSelected.Render("▸ " + pkg))
			} else {
				b.WriteString(m.styles.Item.Render(pkg))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) column(tab int) []string {
	if tab == tabManifest {
		return m.result.OnlyInManifest
	}
	return m.result.OnlyOnSystem
}

func (m Model) renderHelp() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, m.styles.HelpKey.Render(h.Key)+" "+h.Desc)
	}
	return m.styles.Footer.Render(strings.Join(parts, lipgloss.NewStyle().Foreground(ColorMuted).Render("  •  ")))
}
