package model

import (
	"fmt"
	"slices"
)

// Project is the root of a documentation tree together with a flat index of
// every reflection it contains.
type Project struct {
	Root *Reflection

	reflections map[ID]*Reflection
	nextID      ID
}

// NewProject creates a project whose root reflection carries the given name.
func NewProject(name string) *Project {
	root := &Reflection{ID: 0, Kind: KindProject, Name: name}

	return &Project{
		Root:        root,
		reflections: map[ID]*Reflection{root.ID: root},
		nextID:      1,
	}
}

// CreateReflection adds a new reflection under parent. A nil parent means the
// project root.
func (p *Project) CreateReflection(kind Kind, name string, parent *Reflection) *Reflection {
	if parent == nil {
		parent = p.Root
	}

	r := &Reflection{
		ID:     p.nextID,
		Kind:   kind,
		Name:   name,
		Parent: parent,
	}
	p.nextID++

	parent.Children = append(parent.Children, r)
	p.reflections[r.ID] = r

	return r
}

// Reflections returns every indexed reflection except the root, in creation order.
func (p *Project) Reflections() []*Reflection {
	refs := make([]*Reflection, 0, len(p.reflections))
	for id, r := range p.reflections {
		if id == p.Root.ID {
			continue
		}

		refs = append(refs, r)
	}

	slices.SortFunc(refs, func(a, b *Reflection) int { return int(a.ID - b.ID) })

	return refs
}

// Get returns the reflection with the given id.
func (p *Project) Get(id ID) (*Reflection, bool) {
	r, ok := p.reflections[id]
	return r, ok
}

// Contains reports whether r is still part of the project index.
func (p *Project) Contains(r *Reflection) bool {
	if r == nil {
		return false
	}

	indexed, ok := p.reflections[r.ID]

	return ok && indexed == r
}

// Len returns the number of indexed reflections, root included.
func (p *Project) Len() int {
	return len(p.reflections)
}

// RemoveReflection excises r from the tree. Anything still attached below r
// is dropped from the index as well. The root cannot be removed.
func (p *Project) RemoveReflection(r *Reflection) {
	if r == nil || r == p.Root || !p.Contains(r) {
		return
	}

	if parent := r.Parent; parent != nil {
		if i := parent.ChildIndex(r); i >= 0 {
			parent.Children = slices.Delete(parent.Children, i, i+1)
		}
	}

	p.forget(r)
	r.Parent = nil
}

func (p *Project) forget(r *Reflection) {
	for _, child := range r.Children {
		p.forget(child)
	}

	delete(p.reflections, r.ID)
}

// Walk visits the tree depth-first, parents before children. Returning false
// from fn skips the children of that reflection.
func (p *Project) Walk(fn func(r *Reflection, depth int) bool) {
	walk(p.Root, 0, fn)
}

func walk(r *Reflection, depth int, fn func(*Reflection, int) bool) {
	if !fn(r, depth) {
		return
	}

	for _, child := range r.Children {
		walk(child, depth+1, fn)
	}
}

// Validate checks that parent links and children lists agree, that every
// reachable reflection is indexed exactly once, and that nothing unreachable
// remains in the index.
func (p *Project) Validate() error {
	seen := make(map[ID]struct{}, len(p.reflections))

	var err error

	p.Walk(func(r *Reflection, _ int) bool {
		if err != nil {
			return false
		}

		if _, dup := seen[r.ID]; dup {
			err = fmt.Errorf("reflection %d (%s) reachable twice", r.ID, r.Name)
			return false
		}

		seen[r.ID] = struct{}{}

		if !p.Contains(r) {
			err = fmt.Errorf("reflection %d (%s) is in the tree but not indexed", r.ID, r.Name)
			return false
		}

		for _, child := range r.Children {
			if child.Parent != r {
				err = fmt.Errorf("reflection %d (%s) listed under %d but points at another parent",
					child.ID, child.Name, r.ID)
				return false
			}
		}

		return true
	})

	if err != nil {
		return err
	}

	for id, r := range p.reflections {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("reflection %d (%s) is indexed but unreachable", id, r.Name)
		}
	}

	return nil
}
