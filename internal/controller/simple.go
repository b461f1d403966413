package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/docfold/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayBuild prints a table of the top-level modules and the merge counts.
func (s *SimpleUI) DisplayBuild(report m.BuildReport, err error) error {
	if err != nil {
		s.printf("build error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Kind", "Members"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	rows := moduleRows(report.Project)
	for _, r := range rows {
		table.Append([]string{r.Name, r.Kind.String(), fmt.Sprintf("%d", len(r.Children))})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Modules %d", len(rows)),
		fmt.Sprintf("Packages %d", report.Packages),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
	s.printf("renamed %d, merged %d, stale %d, relocated %d\n",
		report.Stats.Renamed, report.Stats.Merged, report.Stats.Stale, report.Stats.Relocated)

	if report.Output != "" {
		s.printf("wrote %s\n", report.Output)
	}

	return nil
}

// DisplayDirectives prints one row per directive.
func (s *SimpleUI) DisplayDirectives(entries []m.DirectiveEntry, err error) error {
	if err != nil {
		s.printf("directive scan error: %v\n", err)
		return err
	}

	if len(entries) == 0 {
		s.printf("No directives found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Package", "Directive", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoMergeCells(true)

	count := 0

	for _, entry := range entries {
		for _, d := range entry.Directives {
			table.Append([]string{entry.Package, d.Name, d.Value})
			count++
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Packages %d", len(entries)), fmt.Sprintf("%d", count), ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayTree prints the tree indented by depth.
func (s *SimpleUI) DisplayTree(project *m.Project, err error) error {
	if err != nil {
		s.printf("tree load error: %v\n", err)
		return err
	}

	s.printf("%s\n", project.Root.Name)

	for _, line := range flattenTree(project) {
		s.printf("%s%s %s\n", strings.Repeat("  ", line.depth+1), line.kind, line.name)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
