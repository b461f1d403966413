// Package domain contains the directive handling and tree-merge logic of docfold.
package domain

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mouse-blink/docfold/internal/adapter"
	"github.com/mouse-blink/docfold/internal/controller"
	m "github.com/mouse-blink/docfold/internal/model"
)

// LoadArgs selects the packages a command works on.
type LoadArgs struct {
	Paths    []m.Path
	Exclude  []string
	Parallel int
}

// BuildArgs configures a full build.
type BuildArgs struct {
	LoadArgs
	Name   string
	Output m.Path
	Format string
	// Check validates the tree after every merge.
	Check bool
}

// DirectivesArgs configures a directive listing.
type DirectivesArgs struct {
	LoadArgs
}

// TreeArgs names a stored tree to display.
type TreeArgs struct {
	Input m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Build(ctx context.Context, args BuildArgs) error
	Directives(ctx context.Context, args DirectivesArgs) error
	Tree(args TreeArgs) error
}

type workflow struct {
	loader adapter.PackageLoader
	store  adapter.TreeStore
	ui     controller.UI
	logger *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(loader adapter.PackageLoader, store adapter.TreeStore, ui controller.UI, logger *zap.Logger) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		loader: loader,
		store:  store,
		ui:     ui,
		logger: logger,
	}
}

func (w *workflow) Build(ctx context.Context, args BuildArgs) error {
	report, err := w.build(ctx, args)
	return w.ui.DisplayBuild(report, err)
}

func (w *workflow) build(ctx context.Context, args BuildArgs) (m.BuildReport, error) {
	format, err := adapter.ParseFormat(args.Format)
	if err != nil {
		return m.BuildReport{}, err
	}

	packages, err := w.load(ctx, args.LoadArgs)
	if err != nil {
		return m.BuildReport{}, err
	}

	plugin := NewDocsPlugin(NewResolver(w.logger, WithInvariantChecks(args.Check)), w.logger)

	project, err := NewConverter(w.logger, plugin).Convert(ctx, args.Name, packages)
	if err != nil {
		return m.BuildReport{}, err
	}

	report := m.BuildReport{
		Project:  project,
		Stats:    plugin.Stats,
		Packages: len(packages),
	}

	if args.Output != "" {
		format = adapter.FormatForPath(args.Output, format)
		if err := w.store.Save(args.Output, format, project, plugin.Stats); err != nil {
			return report, err
		}

		report.Output = args.Output
		w.logger.Info("wrote documentation tree", zap.String("path", string(args.Output)))
	}

	return report, nil
}

func (w *workflow) Directives(ctx context.Context, args DirectivesArgs) error {
	entries, err := w.directives(ctx, args)
	return w.ui.DisplayDirectives(entries, err)
}

func (w *workflow) directives(ctx context.Context, args DirectivesArgs) ([]m.DirectiveEntry, error) {
	packages, err := w.load(ctx, args.LoadArgs)
	if err != nil {
		return nil, err
	}

	var entries []m.DirectiveEntry

	for _, pkg := range packages {
		if !pkg.Decl.Kind.Groupable() {
			continue
		}

		directives := ParseDirectives(pkg.Decl.RawComment)
		if len(directives) == 0 {
			continue
		}

		entries = append(entries, m.DirectiveEntry{
			Package:    pkg.Decl.Name,
			Kind:       pkg.Decl.Kind,
			Directives: directives,
		})
	}

	return entries, nil
}

func (w *workflow) Tree(args TreeArgs) error {
	project, err := w.store.Load(args.Input)
	if err != nil {
		w.logger.Debug("tree load failed", zap.String("input", string(args.Input)), zap.Error(err))
	}

	return w.ui.DisplayTree(project, err)
}

func (w *workflow) load(ctx context.Context, args LoadArgs) ([]m.Package, error) {
	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	packages, err := w.loader.Load(ctx, adapter.LoadArgs{
		Roots:    paths,
		Exclude:  args.Exclude,
		Parallel: args.Parallel,
	})
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	w.logger.Debug("loaded packages", zap.Int("count", len(packages)))

	return packages, nil
}
