package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/docfold/internal/model"
)

// Format selects the encoding of a stored tree.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. An empty name means YAML.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}

	return "", fmt.Errorf("unsupported format %q", s)
}

// FormatForPath picks a format from a file extension, falling back to def.
func FormatForPath(path m.Path, def Format) Format {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}

	return def
}

// TreeStore persists and retrieves resolved documentation trees.
type TreeStore interface {
	Save(path m.Path, format Format, project *m.Project, stats m.ResolveStats) error
	Load(path m.Path) (*m.Project, error)
}

// LocalTreeStore writes trees to the local disk.
type LocalTreeStore struct{}

// NewTreeStore constructs a TreeStore implementation.
func NewTreeStore() TreeStore {
	return &LocalTreeStore{}
}

type treeDocument struct {
	Project  string          `yaml:"project" json:"project"`
	Stats    m.ResolveStats  `yaml:"stats" json:"stats"`
	Children []treeNodeShape `yaml:"children,omitempty" json:"children,omitempty"`
}

type treeNodeShape struct {
	ID       m.ID            `yaml:"id" json:"id"`
	Kind     m.Kind          `yaml:"kind" json:"kind"`
	Name     string          `yaml:"name" json:"name"`
	Comment  *m.Comment      `yaml:"comment,omitempty" json:"comment,omitempty"`
	Sources  []m.SourceRef   `yaml:"sources,omitempty" json:"sources,omitempty"`
	Children []treeNodeShape `yaml:"children,omitempty" json:"children,omitempty"`
}

// Save writes project to path, creating parent directories as needed.
func (s *LocalTreeStore) Save(path m.Path, format Format, project *m.Project, stats m.ResolveStats) error {
	doc := treeDocument{
		Project:  project.Root.Name,
		Stats:    stats,
		Children: shapeChildren(project.Root),
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case FormatYAML, "":
		data, err = marshalYAML(doc)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}

	return nil
}

// Load reads a stored tree back. Reflections get fresh IDs in tree order.
func (s *LocalTreeStore) Load(path m.Path) (*m.Project, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}

	var doc treeDocument

	switch FormatForPath(path, FormatYAML) {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}

	if err != nil {
		return nil, fmt.Errorf("decode tree %s: %w", path, err)
	}

	project := m.NewProject(doc.Project)
	for _, child := range doc.Children {
		rebuild(project, child, project.Root)
	}

	return project, nil
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func shapeChildren(r *m.Reflection) []treeNodeShape {
	if len(r.Children) == 0 {
		return nil
	}

	shapes := make([]treeNodeShape, 0, len(r.Children))
	for _, child := range r.Children {
		shapes = append(shapes, treeNodeShape{
			ID:       child.ID,
			Kind:     child.Kind,
			Name:     child.Name,
			Comment:  child.Comment,
			Sources:  child.Sources,
			Children: shapeChildren(child),
		})
	}

	return shapes
}

func rebuild(project *m.Project, shape treeNodeShape, parent *m.Reflection) {
	r := project.CreateReflection(shape.Kind, shape.Name, parent)
	r.Comment = shape.Comment
	r.Sources = shape.Sources

	for _, child := range shape.Children {
		rebuild(project, child, r)
	}
}
