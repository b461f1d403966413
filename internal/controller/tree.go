package controller

import (
	m "github.com/mouse-blink/docfold/internal/model"
)

type treeLine struct {
	depth      int
	kind       m.Kind
	name       string
	short      string
	childCount int
}

// flattenTree lists every reflection below the root in display order.
func flattenTree(project *m.Project) []treeLine {
	var lines []treeLine

	project.Walk(func(r *m.Reflection, depth int) bool {
		if r == project.Root {
			return true
		}

		line := treeLine{
			depth:      depth - 1,
			kind:       r.Kind,
			name:       r.Name,
			childCount: len(r.Children),
		}
		if r.Comment != nil {
			line.short = r.Comment.ShortText
		}

		lines = append(lines, line)

		return true
	})

	return lines
}

// moduleRows summarises the groupable reflections directly under the root.
func moduleRows(project *m.Project) []*m.Reflection {
	var rows []*m.Reflection

	for _, r := range project.Root.Children {
		if r.Kind.Groupable() {
			rows = append(rows, r)
		}
	}

	return rows
}
