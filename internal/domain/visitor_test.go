package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/docfold/internal/model"
)

func TestDeclarationVisitor_IgnoresNonGroupableKinds(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	v := NewDeclarationVisitor(planner, nil)

	for _, kind := range []m.Kind{m.KindClass, m.KindInterface, m.KindFunction, m.KindMethod, m.KindVariable} {
		r := project.CreateReflection(kind, "thing", nil)
		v.Visit(r, strPtr("@doc-title Renamed\n@doc-group Target"))

		assert.Equal(t, "thing", r.Name, kind.String())
	}

	assert.Equal(t, 0, planner.Len())
}

func TestDeclarationVisitor_NoComment(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	r := project.CreateReflection(m.KindModule, "intro", nil)

	NewDeclarationVisitor(planner, nil).Visit(r, nil)

	assert.Equal(t, "intro", r.Name)
	assert.Equal(t, 0, planner.Len())
}

func TestDeclarationVisitor_TitleRenamesImmediately(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	r := project.CreateReflection(m.KindModule, "intro", nil)

	NewDeclarationVisitor(planner, nil).Visit(r, strPtr("// @doc-title Getting Started"))

	assert.Equal(t, "Getting Started", r.Name)
	assert.Equal(t, 0, planner.Len())
}

func TestDeclarationVisitor_TitleIsIdempotent(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	r := project.CreateReflection(m.KindNamespace, "intro", nil)
	raw := strPtr("@doc-title Guides")

	v := NewDeclarationVisitor(planner, nil)
	v.Visit(r, raw)
	v.Visit(r, raw)

	assert.Equal(t, "Guides", r.Name)
}

func TestDeclarationVisitor_StagesOneRequest(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	r := project.CreateReflection(m.KindModule, "install", nil)

	NewDeclarationVisitor(planner, nil).Visit(r, strPtr("@doc-group Guides\n@doc-preferred"))

	require.Equal(t, 1, planner.Len())
	assert.Equal(t, m.MergeRequest{Source: r, TargetName: "Guides", Preferred: true}, planner.Requests()[0])
	assert.Equal(t, "install", r.Name)
}

func TestDeclarationVisitor_PreferredBeforeGroup(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	r := project.CreateReflection(m.KindModule, "install", nil)

	NewDeclarationVisitor(planner, nil).Visit(r, strPtr("@doc-preferred\n@doc-group Guides"))

	require.Equal(t, 1, planner.Len())
	assert.True(t, planner.Requests()[0].Preferred)
}

func TestDeclarationVisitor_LastGroupWins(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	r := project.CreateReflection(m.KindModule, "install", nil)

	NewDeclarationVisitor(planner, nil).Visit(r, strPtr("@doc-group Guides\n@doc-group Handbook"))

	require.Equal(t, 1, planner.Len())
	assert.Equal(t, "Handbook", planner.Requests()[0].TargetName)
}

func TestDeclarationVisitor_PreferredWithoutGroup(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	r := project.CreateReflection(m.KindModule, "install", nil)

	NewDeclarationVisitor(planner, nil).Visit(r, strPtr("@doc-preferred"))

	assert.Equal(t, 0, planner.Len())
}

func TestDeclarationVisitor_IgnoresUnknownAndType(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	r := project.CreateReflection(m.KindModule, "api", nil)

	NewDeclarationVisitor(planner, nil).Visit(r, strPtr("@doc-type module\n@doc-frobnicate\n@doc-group Reference"))

	assert.Equal(t, "api", r.Name)
	require.Equal(t, 1, planner.Len())
	assert.Equal(t, "Reference", planner.Requests()[0].TargetName)
	assert.False(t, planner.Requests()[0].Preferred)
}

func TestDeclarationVisitor_TitleAndGroup(t *testing.T) {
	project := m.NewProject("docs")
	planner := NewMergePlanner()
	r := project.CreateReflection(m.KindModule, "intro", nil)

	NewDeclarationVisitor(planner, nil).Visit(r, strPtr("@doc-title Intro\n@doc-group Guides"))

	assert.Equal(t, "Intro", r.Name)
	require.Equal(t, 1, planner.Len())
	assert.Same(t, r, planner.Requests()[0].Source)
}
