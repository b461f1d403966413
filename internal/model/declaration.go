package model

// Path represents a file system path.
type Path string

// Declaration is a source-level element handed to the converter before any
// reflection exists for it.
type Declaration struct {
	Kind Kind
	Name string
	// RawComment is the comment exactly as written, markers included. Nil
	// when the declaration has no comment.
	RawComment *string
	// Comment is the comment text with markers stripped.
	Comment  string
	Source   SourceRef
	Children []Declaration
}

// Package is one parsed Go package.
type Package struct {
	ImportPath string
	Dir        Path
	Decl       Declaration
}
