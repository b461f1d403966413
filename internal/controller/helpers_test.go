package controller

import (
	m "github.com/mouse-blink/docfold/internal/model"
)

func sampleReport() m.BuildReport {
	p := m.NewProject("handbook")

	guides := p.CreateReflection(m.KindModule, "Guides", nil)
	guides.Comment = &m.Comment{ShortText: "How-to guides for every subsystem."}
	p.CreateReflection(m.KindFunction, "Install", guides)
	p.CreateReflection(m.KindFunction, "Upgrade", guides)

	ref := p.CreateReflection(m.KindModule, "Reference", nil)
	cfg := p.CreateReflection(m.KindClass, "Config", ref)
	p.CreateReflection(m.KindField, "Name", cfg)

	return m.BuildReport{
		Project:  p,
		Packages: 3,
		Stats:    m.ResolveStats{Renamed: 1, Merged: 1, Relocated: 2},
		Output:   "out/tree.yaml",
	}
}
