package model

// ID identifies a reflection within one project.
type ID int

// SourceRef points at the declaration a reflection was built from.
type SourceRef struct {
	File string `yaml:"file" json:"file"`
	Line int    `yaml:"line,omitempty" json:"line,omitempty"`
}

// Reflection is one documentable element of the tree.
//
// Parent is a lookup-only back-reference. Ownership flows through Children:
// a reflection is part of the tree while it is listed in its parent's Children.
type Reflection struct {
	ID       ID
	Kind     Kind
	Name     string
	Comment  *Comment
	Sources  []SourceRef
	Parent   *Reflection
	Children []*Reflection
}

// KindOf reports whether r has the given kind.
func (r *Reflection) KindOf(kind Kind) bool {
	return r.Kind == kind
}

// ChildIndex returns the position of child in r.Children, or -1.
func (r *Reflection) ChildIndex(child *Reflection) int {
	for i, c := range r.Children {
		if c == child {
			return i
		}
	}

	return -1
}

// FullName joins the names from the first non-project ancestor down to r.
func (r *Reflection) FullName() string {
	if r.Parent == nil || r.Parent.Kind == KindProject {
		return r.Name
	}

	return r.Parent.FullName() + "." + r.Name
}
