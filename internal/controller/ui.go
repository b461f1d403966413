// Package controller renders build results for the terminal.
package controller

import (
	m "github.com/mouse-blink/docfold/internal/model"
)

// UI defines how build results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayBuild shows the resolved tree summary, or err when the build failed.
	DisplayBuild(report m.BuildReport, err error) error
	// DisplayDirectives lists the directives found per package.
	DisplayDirectives(entries []m.DirectiveEntry, err error) error
	// DisplayTree prints a stored or freshly built tree.
	DisplayTree(project *m.Project, err error) error
}
