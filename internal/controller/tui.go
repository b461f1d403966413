package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/docfold/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	kindStyles = map[m.Kind]lipgloss.Style{
		m.KindModule:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		m.KindNamespace: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		m.KindClass:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		m.KindInterface: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		m.KindFunction:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		m.KindMethod:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

// TUI implements UI with lipgloss styling. Output taller than the terminal
// is paged through a Bubble Tea viewport.
type TUI struct {
	output io.Writer
	width  int
	height int
	run    func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output, width: 80}

	if f, ok := output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			t.width = width
			t.height = height
		}
	}

	t.run = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen()).Run()
		return err
	}

	return t
}

// DisplayBuild shows a styled summary followed by the tree.
func (t *TUI) DisplayBuild(report m.BuildReport, err error) error {
	if err != nil {
		_, _ = fmt.Fprintln(t.output, errorStyle.Render("build error: ")+err.Error())
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("📚 "+report.Project.Root.Name) + "\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"Packages: %s   Modules: %s   Renamed: %s   Merged: %s   Relocated: %s",
		accentStyle.Render(fmt.Sprintf("%d", report.Packages)),
		accentStyle.Render(fmt.Sprintf("%d", len(moduleRows(report.Project)))),
		accentStyle.Render(fmt.Sprintf("%d", report.Stats.Renamed)),
		accentStyle.Render(fmt.Sprintf("%d", report.Stats.Merged)),
		accentStyle.Render(fmt.Sprintf("%d", report.Stats.Relocated)),
	)) + "\n")

	if report.Output != "" {
		b.WriteString(mutedStyle.Render("wrote "+string(report.Output)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(t.renderTree(report.Project))

	return t.show(b.String())
}

// DisplayDirectives lists directives grouped by package.
func (t *TUI) DisplayDirectives(entries []m.DirectiveEntry, err error) error {
	if err != nil {
		_, _ = fmt.Fprintln(t.output, errorStyle.Render("directive scan error: ")+err.Error())
		return err
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(t.output, mutedStyle.Render("No directives found"))
		return nil
	}

	var b strings.Builder

	for _, entry := range entries {
		b.WriteString(kindStyle(entry.Kind).Render(entry.Package) + "\n")

		for _, d := range entry.Directives {
			b.WriteString("  " + accentStyle.Render("@doc-"+d.Name) + " " + d.Value + "\n")
		}
	}

	return t.show(b.String())
}

// DisplayTree prints the styled tree.
func (t *TUI) DisplayTree(project *m.Project, err error) error {
	if err != nil {
		_, _ = fmt.Fprintln(t.output, errorStyle.Render("tree load error: ")+err.Error())
		return err
	}

	return t.show(titleStyle.Render(project.Root.Name) + "\n" + t.renderTree(project))
}

func (t *TUI) renderTree(project *m.Project) string {
	var b strings.Builder

	for _, line := range flattenTree(project) {
		indent := strings.Repeat("  ", line.depth)
		label := kindStyle(line.kind).Render(line.name)
		kind := mutedStyle.Render(line.kind.String())

		row := fmt.Sprintf("%s%s %s", indent, label, kind)
		if line.short != "" {
			room := t.width - lipgloss.Width(row) - 3
			if room > 10 {
				row += "  " + summaryStyle.Render(truncateToWidth(line.short, room))
			}
		}

		b.WriteString(row + "\n")
	}

	return b.String()
}

// show prints content directly when it fits, and pages it otherwise.
func (t *TUI) show(content string) error {
	lines := strings.Count(content, "\n")
	if t.height <= 0 || lines < t.height {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	return t.run(newPagerModel(content, t.width, t.height))
}

func kindStyle(kind m.Kind) lipgloss.Style {
	if style, ok := kindStyles[kind]; ok {
		return style
	}

	return lipgloss.NewStyle()
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
