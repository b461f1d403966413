package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/docfold/internal/model"
)

func newCheckedResolver() *Resolver {
	return NewResolver(nil, WithInvariantChecks(true))
}

func childNames(r *m.Reflection) []string {
	names := make([]string, 0, len(r.Children))
	for _, c := range r.Children {
		names = append(names, c.Name)
	}

	return names
}

func TestResolve_NoRequests(t *testing.T) {
	project := m.NewProject("docs")
	project.CreateReflection(m.KindModule, "intro", nil)

	stats, err := newCheckedResolver().Resolve(project, nil)

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{}, stats)
	assert.Equal(t, 2, project.Len())
}

func TestResolve_RenamesWhenNoTarget(t *testing.T) {
	project := m.NewProject("docs")
	install := project.CreateReflection(m.KindModule, "install", nil)
	project.CreateReflection(m.KindClass, "Options", install)

	stats, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: install, TargetName: "Guides"},
	})

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{Renamed: 1}, stats)
	assert.Equal(t, "Guides", install.Name)
	assert.True(t, project.Contains(install))
	assert.Equal(t, []string{"Options"}, childNames(install))
}

func TestResolve_MergesIntoTarget(t *testing.T) {
	project := m.NewProject("docs")
	guides := project.CreateReflection(m.KindModule, "Guides", nil)
	project.CreateReflection(m.KindClass, "Intro", guides)
	install := project.CreateReflection(m.KindModule, "install", nil)
	steps := project.CreateReflection(m.KindClass, "Steps", install)
	project.CreateReflection(m.KindField, "Count", steps)
	project.CreateReflection(m.KindFunction, "Run", install)

	stats, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: install, TargetName: "Guides"},
	})

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{Merged: 1, Relocated: 2}, stats)

	assert.False(t, project.Contains(install))
	assert.Nil(t, install.Parent)
	assert.Empty(t, install.Children)
	assert.Equal(t, []string{"Guides"}, childNames(project.Root))

	assert.Equal(t, []string{"Intro", "Steps", "Run"}, childNames(guides))
	assert.Same(t, guides, steps.Parent)
	assert.Equal(t, []string{"Count"}, childNames(steps))
	assert.True(t, project.Contains(steps.Children[0]))
	assert.NoError(t, project.Validate())
}

func TestResolve_PreferredCopiesComment(t *testing.T) {
	project := m.NewProject("docs")
	guides := project.CreateReflection(m.KindModule, "Guides", nil)
	guides.Comment = m.ParseComment("Guide index.")
	install := project.CreateReflection(m.KindModule, "install", nil)
	install.Comment = m.ParseComment("Installing the tool.\n\nLonger text.\n\n@doc-group Guides\n@doc-preferred\n@since 1.0")

	_, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: install, TargetName: "Guides", Preferred: true},
	})

	require.NoError(t, err)
	require.NotNil(t, guides.Comment)
	assert.NotSame(t, install.Comment, guides.Comment)
	assert.Equal(t, "Installing the tool.", guides.Comment.ShortText)
	assert.Equal(t, "Longer text.", guides.Comment.Text)
	assert.False(t, guides.Comment.HasTag("doc-group"))
	assert.False(t, guides.Comment.HasTag("doc-preferred"))
	assert.True(t, guides.Comment.HasTag("since"))
}

func TestResolve_NotPreferredKeepsSurvivorComment(t *testing.T) {
	project := m.NewProject("docs")
	guides := project.CreateReflection(m.KindModule, "Guides", nil)
	guides.Comment = m.ParseComment("Guide index.")
	advanced := project.CreateReflection(m.KindModule, "advanced", nil)
	advanced.Comment = m.ParseComment("Advanced usage.\n\n@doc-group Guides")

	_, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: advanced, TargetName: "Guides"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Guide index.", guides.Comment.ShortText)
}

func TestResolve_PreferredNilComment(t *testing.T) {
	project := m.NewProject("docs")
	guides := project.CreateReflection(m.KindModule, "Guides", nil)
	guides.Comment = m.ParseComment("Guide index.")
	install := project.CreateReflection(m.KindModule, "install", nil)

	_, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: install, TargetName: "Guides", Preferred: true},
	})

	require.NoError(t, err)
	assert.Nil(t, guides.Comment)
}

func TestResolve_SelfMergeIsRename(t *testing.T) {
	project := m.NewProject("docs")
	guides := project.CreateReflection(m.KindModule, "Guides", nil)
	project.CreateReflection(m.KindClass, "Intro", guides)

	stats, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: guides, TargetName: "Guides"},
	})

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{Renamed: 1}, stats)
	assert.True(t, project.Contains(guides))
	assert.Equal(t, []string{"Intro"}, childNames(guides))
}

func TestResolve_KindMustMatch(t *testing.T) {
	project := m.NewProject("docs")
	ns := project.CreateReflection(m.KindNamespace, "Guides", nil)
	mod := project.CreateReflection(m.KindModule, "install", nil)

	stats, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: mod, TargetName: "Guides"},
	})

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{Renamed: 1}, stats)
	assert.True(t, project.Contains(ns))
	assert.True(t, project.Contains(mod))
	assert.Equal(t, "Guides", mod.Name)
}

func TestResolve_FirstCreatedTargetWins(t *testing.T) {
	project := m.NewProject("docs")
	first := project.CreateReflection(m.KindModule, "Guides", nil)
	second := project.CreateReflection(m.KindModule, "Guides", nil)
	src := project.CreateReflection(m.KindModule, "install", nil)
	project.CreateReflection(m.KindClass, "Steps", src)

	_, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: src, TargetName: "Guides"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Steps"}, childNames(first))
	assert.Empty(t, second.Children)
}

func TestResolve_ChainedMerges(t *testing.T) {
	project := m.NewProject("docs")
	a := project.CreateReflection(m.KindModule, "A", nil)
	project.CreateReflection(m.KindClass, "a1", a)
	b := project.CreateReflection(m.KindModule, "B", nil)
	project.CreateReflection(m.KindClass, "b1", b)
	c := project.CreateReflection(m.KindModule, "C", nil)
	project.CreateReflection(m.KindClass, "c1", c)

	stats, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: a, TargetName: "B"},
		{Source: b, TargetName: "C"},
	})

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{Merged: 2, Relocated: 3}, stats)
	assert.Equal(t, []string{"C"}, childNames(project.Root))
	assert.ElementsMatch(t, []string{"a1", "b1", "c1"}, childNames(c))
}

func TestResolve_ChainedMergesReverseOrder(t *testing.T) {
	project := m.NewProject("docs")
	a := project.CreateReflection(m.KindModule, "A", nil)
	project.CreateReflection(m.KindClass, "a1", a)
	b := project.CreateReflection(m.KindModule, "B", nil)
	project.CreateReflection(m.KindClass, "b1", b)
	c := project.CreateReflection(m.KindModule, "C", nil)

	stats, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: b, TargetName: "C"},
		{Source: a, TargetName: "B"},
	})

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{Renamed: 1, Merged: 1, Relocated: 1}, stats)
	// B is gone by the time A looks for it, so A takes the name instead
	assert.ElementsMatch(t, []string{"B", "C"}, childNames(project.Root))
	assert.Equal(t, "B", a.Name)
	assert.Equal(t, []string{"a1"}, childNames(a))
	assert.Equal(t, []string{"b1"}, childNames(c))
}

func TestResolve_StaleRequestIsSkipped(t *testing.T) {
	project := m.NewProject("docs")
	guides := project.CreateReflection(m.KindModule, "Guides", nil)
	install := project.CreateReflection(m.KindModule, "install", nil)
	project.CreateReflection(m.KindClass, "Steps", install)

	stats, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: install, TargetName: "Guides"},
		{Source: install, TargetName: "Other"},
	})

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{Merged: 1, Stale: 1, Relocated: 1}, stats)
	assert.Equal(t, "install", install.Name)
	assert.Equal(t, []string{"Steps"}, childNames(guides))
}

func TestResolve_DescendantIsNotATarget(t *testing.T) {
	project := m.NewProject("docs")
	outer := project.CreateReflection(m.KindNamespace, "outer", nil)
	inner := project.CreateReflection(m.KindNamespace, "Guides", outer)

	stats, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: outer, TargetName: "Guides"},
	})

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{Renamed: 1}, stats)
	assert.Equal(t, "Guides", outer.Name)
	assert.Same(t, outer, inner.Parent)
}

func TestResolve_MergeIntoAncestor(t *testing.T) {
	project := m.NewProject("docs")
	guides := project.CreateReflection(m.KindNamespace, "Guides", nil)
	inner := project.CreateReflection(m.KindNamespace, "inner", guides)
	project.CreateReflection(m.KindFunction, "Setup", inner)

	stats, err := newCheckedResolver().Resolve(project, []m.MergeRequest{
		{Source: inner, TargetName: "Guides"},
	})

	require.NoError(t, err)
	assert.Equal(t, m.ResolveStats{Merged: 1, Relocated: 1}, stats)
	assert.Equal(t, []string{"Setup"}, childNames(guides))
	assert.False(t, project.Contains(inner))
}

func TestResolve_ScrubsDirectiveTags(t *testing.T) {
	project := m.NewProject("docs")
	api := project.CreateReflection(m.KindModule, "api", nil)
	api.Comment = m.ParseComment("API reference.\n\n@doc-type module\n@doc-title API\n@since 2.0")
	class := project.CreateReflection(m.KindClass, "Client", api)
	class.Comment = m.ParseComment("Client.\n\n@doc-group Nope")

	_, err := newCheckedResolver().Resolve(project, nil)

	require.NoError(t, err)
	assert.Equal(t, []m.Tag{{Name: "since", Text: "2.0"}}, api.Comment.Tags)
	assert.True(t, class.Comment.HasTag("doc-group"))
}

func TestResolve_CorruptTree(t *testing.T) {
	project := m.NewProject("docs")
	project.CreateReflection(m.KindModule, "Guides", nil)
	install := project.CreateReflection(m.KindModule, "install", nil)
	project.Root.Children = append(project.Root.Children, &m.Reflection{ID: 99, Kind: m.KindModule, Name: "ghost", Parent: project.Root})

	requests := []m.MergeRequest{{Source: install, TargetName: "Guides"}}

	_, err := newCheckedResolver().Resolve(project, requests)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorruptTree))
}

func TestResolve_CorruptTreeUncheckedIsSilent(t *testing.T) {
	project := m.NewProject("docs")
	project.CreateReflection(m.KindModule, "Guides", nil)
	install := project.CreateReflection(m.KindModule, "install", nil)
	project.Root.Children = append(project.Root.Children, &m.Reflection{ID: 99, Kind: m.KindModule, Name: "ghost", Parent: project.Root})

	stats, err := NewResolver(nil).Resolve(project, []m.MergeRequest{{Source: install, TargetName: "Guides"}})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Merged)
}
