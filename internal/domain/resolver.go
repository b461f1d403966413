package domain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	m "github.com/mouse-blink/docfold/internal/model"
)

// ErrCorruptTree reports a structural invariant broken by the resolver itself.
var ErrCorruptTree = errors.New("corrupt reflection tree")

// Resolver executes staged merge requests once the whole tree exists.
type Resolver struct {
	logger *zap.Logger
	check  bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithInvariantChecks makes the resolver validate the tree after every merge.
func WithInvariantChecks(enabled bool) ResolverOption {
	return func(r *Resolver) {
		r.check = enabled
	}
}

// NewResolver creates a Resolver.
func NewResolver(logger *zap.Logger, opts ...ResolverOption) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Resolver{logger: logger}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve applies requests to project in order. A request whose source has
// already been merged away is skipped. The only error is ErrCorruptTree,
// returned when invariant checks are enabled and fail.
func (rs *Resolver) Resolve(project *m.Project, requests []m.MergeRequest) (m.ResolveStats, error) {
	var stats m.ResolveStats

	for _, req := range requests {
		if !project.Contains(req.Source) {
			stats.Stale++
			rs.logger.Debug("skipping stale merge request", zap.String("target", req.TargetName))

			continue
		}

		survivor := findMergeTarget(project, req.Source, req.TargetName)
		if survivor == nil {
			rs.logger.Debug("renaming reflection",
				zap.String("from", req.Source.Name),
				zap.String("to", req.TargetName))

			req.Source.Name = req.TargetName
			stats.Renamed++

			continue
		}

		stats.Relocated += rs.merge(project, req, survivor)
		stats.Merged++

		if rs.check {
			if err := project.Validate(); err != nil {
				return stats, fmt.Errorf("%w: after merging %q: %w", ErrCorruptTree, req.TargetName, err)
			}
		}
	}

	scrubDirectiveTags(project)

	rs.logger.Info("resolved merge requests",
		zap.Int("renamed", stats.Renamed),
		zap.Int("merged", stats.Merged),
		zap.Int("stale", stats.Stale),
		zap.Int("relocated", stats.Relocated))

	return stats, nil
}

// findMergeTarget returns the first reflection in creation order that has
// the source's kind and the target name. The source itself and reflections
// nested below it never qualify.
func findMergeTarget(project *m.Project, source *m.Reflection, name string) *m.Reflection {
	for _, r := range project.Reflections() {
		if r.Kind == source.Kind && r.Name == name && !within(r, source) {
			return r
		}
	}

	return nil
}

func within(r, ancestor *m.Reflection) bool {
	for ; r != nil; r = r.Parent {
		if r == ancestor {
			return true
		}
	}

	return false
}

func (rs *Resolver) merge(project *m.Project, req m.MergeRequest, survivor *m.Reflection) int {
	source := req.Source

	if survivor.Children == nil {
		survivor.Children = []*m.Reflection{}
	}

	var moved []*m.Reflection

	for _, r := range project.Reflections() {
		if r.Parent == source {
			moved = append(moved, r)
		}
	}

	for _, child := range moved {
		child.Parent = survivor
		survivor.Children = append(survivor.Children, child)
	}

	if req.Preferred {
		survivor.Comment = source.Comment.Clone()
	}

	// Truncate in place: the backing array may be shared with other holders.
	clear(source.Children)
	source.Children = source.Children[:0]

	project.RemoveReflection(source)

	survivor.Comment.RemoveTags(DirectiveTag(DirectiveGroup))
	survivor.Comment.RemoveTags(DirectiveTag(DirectivePreferred))

	rs.logger.Debug("merged reflection",
		zap.String("source", source.Name),
		zap.String("survivor", survivor.FullName()),
		zap.Int("children", len(moved)),
		zap.Bool("preferred", req.Preferred))

	return len(moved)
}

// scrubDirectiveTags keeps directive tags out of rendered comments.
func scrubDirectiveTags(project *m.Project) {
	for _, r := range project.Reflections() {
		if r.Kind.Groupable() {
			r.Comment.RemoveTagsFunc(IsDirectiveTag)
		}
	}
}
