package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// MenuItem is one row of the level-select table.
type MenuItem struct {
	Index   int
	Title   string
	Width   int
	Enemies int
	Boss    bool
}

// MenuItems describes every registered level in play order.
func MenuItems() []MenuItem {
	levels := registry.List()
	items := make([]MenuItem, 0, len(levels))
	for i, info := range levels {
		l, err := registry.Create(info.Kind)
		if err != nil {
			continue
		}
		items = append(items, MenuItem{
			Index:   i,
			Title:   info.Title,
			Width:   int(l.Width),
			Enemies: len(l.Enemies),
			Boss:    l.Boss != nil,
		})
	}
	return items
}

// MenuModel is the Bubble Tea model for the level-select screen.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a level-select menu sized for the terminal.
func NewMenuModel(width, height int) MenuModel {
	m := MenuModel{
		items:  MenuItems(),
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.help.Width = width
	return m
}

func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 18},
		{Title: "Length", Width: 8},
		{Title: "Enemies", Width: 8},
		{Title: "Boss", Width: 5},
	}

	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		boss := ""
		if it.Boss {
			boss = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", it.Index+1),
			it.Title,
			fmt.Sprintf("%d", it.Width),
			fmt.Sprintf("%d", it.Enemies),
			boss,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(m.height-8, 3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.items) {
				selected := m.items[c]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P L A T F O R M E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a starting level", m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the chosen level, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Index  int
	Width  int
	Height int
	Quit   bool
}

// RunMenu shows the level-select screen and returns the choice along with
// the terminal size it last saw.
func RunMenu(width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height, Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	return MenuResult{
		Index:  m.Selected().Index,
		Width:  m.width,
		Height: m.height,
	}, nil
}
