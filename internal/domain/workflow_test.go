package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/docfold/internal/adapter"
	adaptermocks "github.com/mouse-blink/docfold/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/docfold/internal/controller/mocks"
	m "github.com/mouse-blink/docfold/internal/model"
)

// echoErr makes the UI mock hand back the error it was given, like the real UIs.
func echoErr(_ m.BuildReport, err error) error { return err }

func TestWorkflow_Build_NoOutput(t *testing.T) {
	loader := adaptermocks.NewMockPackageLoader(t)
	store := adaptermocks.NewMockTreeStore(t)
	ui := controllermocks.NewMockUI(t)

	loader.EXPECT().Load(mock.Anything, adapter.LoadArgs{
		Roots:    []m.Path{"./..."},
		Parallel: 2,
	}).Return(guidePackages(), nil)

	var got m.BuildReport

	ui.EXPECT().DisplayBuild(mock.Anything, nil).Run(func(report m.BuildReport, _ error) {
		got = report
	}).Return(nil)

	wf := NewWorkflow(loader, store, ui, nil)
	err := wf.Build(context.Background(), BuildArgs{
		LoadArgs: LoadArgs{Parallel: 2},
		Name:     "handbook",
		Check:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "handbook", got.Project.Root.Name)
	assert.Equal(t, 4, got.Packages)
	assert.Equal(t, m.ResolveStats{Renamed: 1, Merged: 2, Relocated: 2}, got.Stats)
	assert.Empty(t, got.Output)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Build_WritesOutput(t *testing.T) {
	loader := adaptermocks.NewMockPackageLoader(t)
	store := adaptermocks.NewMockTreeStore(t)
	ui := controllermocks.NewMockUI(t)

	loader.EXPECT().Load(mock.Anything, adapter.LoadArgs{
		Roots:   []m.Path{"./pkg/..."},
		Exclude: []string{"internal/**"},
	}).Return(guidePackages(), nil)
	store.EXPECT().Save(m.Path("out/tree.json"), adapter.FormatJSON, mock.Anything, mock.Anything).
		Run(func(_ m.Path, _ adapter.Format, project *m.Project, stats m.ResolveStats) {
			assert.Len(t, project.Root.Children, 2)
			assert.Equal(t, 2, stats.Merged)
		}).
		Return(nil)
	ui.EXPECT().DisplayBuild(mock.MatchedBy(func(r m.BuildReport) bool {
		return r.Output == "out/tree.json"
	}), nil).Return(nil)

	wf := NewWorkflow(loader, store, ui, nil)
	err := wf.Build(context.Background(), BuildArgs{
		LoadArgs: LoadArgs{Paths: []m.Path{"./pkg/..."}, Exclude: []string{"internal/**"}},
		Name:     "docs",
		Output:   "out/tree.json",
		Format:   "yaml",
	})

	require.NoError(t, err)
}

func TestWorkflow_Build_LoadError(t *testing.T) {
	loader := adaptermocks.NewMockPackageLoader(t)
	store := adaptermocks.NewMockTreeStore(t)
	ui := controllermocks.NewMockUI(t)

	loadErr := errors.New("boom")

	loader.EXPECT().Load(mock.Anything, mock.Anything).Return(nil, loadErr)
	ui.EXPECT().DisplayBuild(m.BuildReport{}, mock.Anything).RunAndReturn(echoErr)

	err := NewWorkflow(loader, store, ui, nil).Build(context.Background(), BuildArgs{})

	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "load packages")
}

func TestWorkflow_Build_BadFormat(t *testing.T) {
	loader := adaptermocks.NewMockPackageLoader(t)
	store := adaptermocks.NewMockTreeStore(t)
	ui := controllermocks.NewMockUI(t)

	ui.EXPECT().DisplayBuild(m.BuildReport{}, mock.Anything).RunAndReturn(echoErr)

	err := NewWorkflow(loader, store, ui, nil).Build(context.Background(), BuildArgs{Format: "toml"})

	assert.Error(t, err)
	loader.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestWorkflow_Build_SaveError(t *testing.T) {
	loader := adaptermocks.NewMockPackageLoader(t)
	store := adaptermocks.NewMockTreeStore(t)
	ui := controllermocks.NewMockUI(t)

	saveErr := errors.New("disk full")

	loader.EXPECT().Load(mock.Anything, mock.Anything).Return(guidePackages(), nil)
	store.EXPECT().Save(m.Path("tree.yaml"), adapter.FormatYAML, mock.Anything, mock.Anything).Return(saveErr)
	ui.EXPECT().DisplayBuild(mock.Anything, saveErr).RunAndReturn(echoErr)

	err := NewWorkflow(loader, store, ui, nil).Build(context.Background(), BuildArgs{Output: "tree.yaml"})

	assert.ErrorIs(t, err, saveErr)
}

func TestWorkflow_Directives(t *testing.T) {
	loader := adaptermocks.NewMockPackageLoader(t)
	store := adaptermocks.NewMockTreeStore(t)
	ui := controllermocks.NewMockUI(t)

	packages := append(guidePackages(), m.Package{Decl: m.Declaration{
		Kind:       m.KindModule,
		Name:       "plain",
		RawComment: strPtr("// Package plain has no directives.\n"),
	}})

	loader.EXPECT().Load(mock.Anything, mock.Anything).Return(packages, nil)

	var got []m.DirectiveEntry

	ui.EXPECT().DisplayDirectives(mock.Anything, nil).Run(func(entries []m.DirectiveEntry, _ error) {
		got = entries
	}).Return(nil)

	err := NewWorkflow(loader, store, ui, nil).Directives(context.Background(), DirectivesArgs{})

	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "intro", got[0].Package)
	assert.Equal(t, []m.Directive{{Name: "title", Value: "Guides"}}, got[0].Directives)
	assert.Equal(t, "api", got[3].Package)
	assert.Equal(t, []m.Directive{
		{Name: "type", Value: "module"},
		{Name: "group", Value: "Reference"},
	}, got[3].Directives)
}

func TestWorkflow_Tree(t *testing.T) {
	loader := adaptermocks.NewMockPackageLoader(t)
	store := adaptermocks.NewMockTreeStore(t)
	ui := controllermocks.NewMockUI(t)

	project := m.NewProject("docs")

	store.EXPECT().Load(m.Path("tree.yaml")).Return(project, nil)
	ui.EXPECT().DisplayTree(project, nil).Return(nil)

	err := NewWorkflow(loader, store, ui, nil).Tree(TreeArgs{Input: "tree.yaml"})

	assert.NoError(t, err)
}

func TestWorkflow_Tree_LoadError(t *testing.T) {
	loader := adaptermocks.NewMockPackageLoader(t)
	store := adaptermocks.NewMockTreeStore(t)
	ui := controllermocks.NewMockUI(t)

	loadErr := errors.New("not found")

	store.EXPECT().Load(m.Path("missing.yaml")).Return(nil, loadErr)
	ui.EXPECT().DisplayTree(mock.Anything, loadErr).RunAndReturn(func(_ *m.Project, err error) error {
		return err
	})

	err := NewWorkflow(loader, store, ui, nil).Tree(TreeArgs{Input: "missing.yaml"})

	assert.ErrorIs(t, err, loadErr)
}
