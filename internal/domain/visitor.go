package domain

import (
	"go.uber.org/zap"

	m "github.com/mouse-blink/docfold/internal/model"
)

// declarationState collects what a node's directives ask for while they are
// applied one by one.
type declarationState struct {
	reflection *m.Reflection
	group      string
	preferred  bool
}

type directiveHandler func(v *DeclarationVisitor, st *declarationState, value string)

// Directives missing from this table are ignored.
var directiveHandlers = map[string]directiveHandler{
	DirectiveTitle: func(v *DeclarationVisitor, st *declarationState, value string) {
		v.logger.Debug("renaming from title directive",
			zap.String("from", st.reflection.Name),
			zap.String("to", value))

		st.reflection.Name = value
	},
	DirectiveType: func(*DeclarationVisitor, *declarationState, string) {},
	DirectiveGroup: func(_ *DeclarationVisitor, st *declarationState, value string) {
		st.group = value
	},
	DirectivePreferred: func(_ *DeclarationVisitor, st *declarationState, _ string) {
		st.preferred = true
	},
}

// DeclarationVisitor applies directives to reflections as they are created.
// Renames happen immediately; merges are only staged on the planner.
type DeclarationVisitor struct {
	planner *MergePlanner
	logger  *zap.Logger
}

// NewDeclarationVisitor creates a visitor staging merge requests on planner.
func NewDeclarationVisitor(planner *MergePlanner, logger *zap.Logger) *DeclarationVisitor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DeclarationVisitor{planner: planner, logger: logger}
}

// Visit processes one freshly created reflection and its raw comment, which
// may be nil.
func (v *DeclarationVisitor) Visit(r *m.Reflection, rawComment *string) {
	if !r.Kind.Groupable() {
		return
	}

	directives := ParseDirectives(rawComment)
	if len(directives) == 0 {
		return
	}

	st := &declarationState{reflection: r}

	for _, d := range directives {
		handler, ok := directiveHandlers[d.Name]
		if !ok {
			v.logger.Debug("ignoring unknown directive",
				zap.String("reflection", r.Name),
				zap.String("directive", d.Name))

			continue
		}

		handler(v, st, d.Value)
	}

	if st.group == "" {
		return
	}

	v.planner.Stage(m.MergeRequest{
		Source:     r,
		TargetName: st.group,
		Preferred:  st.preferred,
	})

	v.logger.Debug("staged merge request",
		zap.String("reflection", r.Name),
		zap.String("target", st.group),
		zap.Bool("preferred", st.preferred))
}
