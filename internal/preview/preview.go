package preview

import (
	"fmt"
	"strings"

	"scitblr/internal/table"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tagWidth      = 10
	maxCellWidth  = 16
	defaultHeight = 20
	chromeLines   = 6 // title, summary, blank, blank, help, slack
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	plainTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	ruleTagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	headerTagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("40"))
)

var tags = map[table.RowStyle]string{
	table.Plain:     "",
	table.Top:       "TOP",
	table.Header:    "HEADER",
	table.TopHeader: "TOP+HEADER",
	table.Bottom:    "BOTTOM",
}

type model struct {
	table *table.Table

	offset int
	width  int
	height int

	confirmed bool
	done      bool
}

func initialModel(t *table.Table) model {
	return model{
		table:  t,
		height: defaultHeight,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "enter":
			m.confirmed = true
			m.done = true
			return m, tea.Quit

		case "n", "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit

		case "up", "k":
			m.offset--
		case "down", "j":
			m.offset++
		case "pgup":
			m.offset -= m.visibleRows()
		case "pgdown", " ":
			m.offset += m.visibleRows()
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.offset = m.maxOffset()
		}
		m.clampOffset()
	}
	return m, nil
}

func (m model) visibleRows() int {
	n := m.height - chromeLines
	if n < 1 {
		n = 1
	}
	return n
}

func (m model) maxOffset() int {
	limit := m.table.RowCount + 1 - m.visibleRows()
	if limit < 0 {
		return 0
	}
	return limit
}

func (m *model) clampOffset() {
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	t := m.table

	b.WriteString(titleStyle.Render(fmt.Sprintf("Preview: %s.%s [%s]", t.Stem, t.Ext, t.SheetName)))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("%d rows, %d columns, header row %d",
		t.RowCount+1, t.ColumnCount+1, t.HeaderIndex+1)))
	b.WriteString("\n\n")

	end := m.offset + m.visibleRows()
	if end > t.RowCount+1 {
		end = t.RowCount + 1
	}
	for r := m.offset; r < end; r++ {
		b.WriteString(m.renderRow(r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll • y/enter write • n/q cancel"))
	return b.String()
}

func (m model) renderRow(r int) string {
	style := m.table.Style(r)

	tag := fmt.Sprintf("%-*s", tagWidth, tags[style])
	switch style {
	case table.Plain:
		tag = plainTagStyle.Render(tag)
	case table.Header, table.TopHeader:
		tag = headerTagStyle.Render(tag)
	default:
		tag = ruleTagStyle.Render(tag)
	}

	cells := make([]string, len(m.table.Rows[r]))
	for i, cell := range m.table.Rows[r] {
		cells[i] = truncate(cell, maxCellWidth)
	}
	line := fmt.Sprintf("%4d %s %s", r+1, tag, strings.Join(cells, " │ "))

	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// Confirm shows the row classification of t and reports whether the user
// chose to write the formatted copy.
func Confirm(t *table.Table) (bool, error) {
	p := tea.NewProgram(initialModel(t), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running preview: %w", err)
	}

	final := finalModel.(model)
	return final.confirmed, nil
}
