package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// footer line below the viewport
const pagerChrome = 1

// pagerModel scrolls long output.
type pagerModel struct {
	viewport viewport.Model
	content  string
	width    int
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return pagerModel{viewport: vp, content: content, width: width}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.viewport.Width = msg.Width
		p.viewport.Height = max(msg.Height-pagerChrome, 1)
		p.viewport.SetContent(p.content)

		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Width(p.width).
		Render(fmt.Sprintf("↑/k up • ↓/j down • pgup/pgdn page • q quit   %3.f%%", p.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left, p.viewport.View(), footer)
}
