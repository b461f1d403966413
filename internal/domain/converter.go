package domain

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	m "github.com/mouse-blink/docfold/internal/model"
)

// Run is the state of one conversion. The planner belongs to the run and is
// never shared with another one.
type Run struct {
	Project *m.Project
	Planner *MergePlanner
}

// Plugin hooks into the conversion lifecycle.
type Plugin interface {
	// OnBegin fires before any reflection is created.
	OnBegin(run *Run)
	// OnDeclaration fires once per created reflection, in creation order.
	// rawComment is nil when the declaration has no comment.
	OnDeclaration(run *Run, r *m.Reflection, rawComment *string)
	// OnResolveBegin fires once every reflection of the run exists.
	OnResolveBegin(run *Run) error
}

// Converter turns parsed packages into a reflection tree and drives the
// plugins through it.
type Converter struct {
	plugins []Plugin
	logger  *zap.Logger
}

// NewConverter creates a Converter calling plugins in the given order.
func NewConverter(logger *zap.Logger, plugins ...Plugin) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Converter{plugins: plugins, logger: logger}
}

// Convert builds the project named name from packages. If ctx is cancelled
// before resolution starts, staged requests are dropped and ctx.Err() is
// returned.
func (c *Converter) Convert(ctx context.Context, name string, packages []m.Package) (*m.Project, error) {
	run := &Run{
		Project: m.NewProject(name),
		Planner: NewMergePlanner(),
	}

	for _, p := range c.plugins {
		p.OnBegin(run)
	}

	for _, pkg := range packages {
		if err := ctx.Err(); err != nil {
			run.Planner.Reset()
			return nil, err
		}

		c.createDeclaration(run, pkg.Decl, run.Project.Root)
	}

	if err := ctx.Err(); err != nil {
		run.Planner.Reset()
		return nil, err
	}

	c.logger.Debug("conversion complete",
		zap.Int("reflections", run.Project.Len()),
		zap.Int("staged", run.Planner.Len()))

	for _, p := range c.plugins {
		if err := p.OnResolveBegin(run); err != nil {
			return nil, fmt.Errorf("resolve: %w", err)
		}
	}

	return run.Project, nil
}

func (c *Converter) createDeclaration(run *Run, decl m.Declaration, parent *m.Reflection) {
	r := run.Project.CreateReflection(decl.Kind, decl.Name, parent)
	r.Comment = m.ParseComment(decl.Comment)

	if decl.Source.File != "" {
		r.Sources = append(r.Sources, decl.Source)
	}

	for _, p := range c.plugins {
		p.OnDeclaration(run, r, decl.RawComment)
	}

	for _, child := range decl.Children {
		c.createDeclaration(run, child, r)
	}
}

// DocsPlugin applies "@doc-" directives: it stages requests while the tree
// is built and resolves them once it is complete.
type DocsPlugin struct {
	resolver *Resolver
	logger   *zap.Logger

	// Stats holds the outcome of the last resolution.
	Stats m.ResolveStats
}

// NewDocsPlugin creates a DocsPlugin resolving with resolver.
func NewDocsPlugin(resolver *Resolver, logger *zap.Logger) *DocsPlugin {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DocsPlugin{resolver: resolver, logger: logger}
}

// OnBegin resets the run's planner.
func (d *DocsPlugin) OnBegin(run *Run) {
	run.Planner.Reset()
	d.Stats = m.ResolveStats{}
}

// OnDeclaration reads the directives of r.
func (d *DocsPlugin) OnDeclaration(run *Run, r *m.Reflection, rawComment *string) {
	NewDeclarationVisitor(run.Planner, d.logger).Visit(r, rawComment)
}

// OnResolveBegin executes every staged request.
func (d *DocsPlugin) OnResolveBegin(run *Run) error {
	stats, err := d.resolver.Resolve(run.Project, run.Planner.Drain())
	d.Stats = stats

	return err
}
