package model

// ResolveStats counts what a resolution pass did.
type ResolveStats struct {
	Renamed   int `yaml:"renamed" json:"renamed"`
	Merged    int `yaml:"merged" json:"merged"`
	Stale     int `yaml:"stale" json:"stale"`
	Relocated int `yaml:"relocated" json:"relocated"`
}

// BuildReport is what a build hands to the UI.
type BuildReport struct {
	Project  *Project
	Stats    ResolveStats
	Packages int
	Output   Path
}

// DirectiveEntry lists the directives written on one groupable package.
type DirectiveEntry struct {
	Package    string
	Kind       Kind
	Directives []Directive
}
