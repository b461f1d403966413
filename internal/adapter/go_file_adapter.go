package adapter

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	m "github.com/mouse-blink/docfold/internal/model"
)

// GoFileAdapter encapsulates Go parsing and declaration extraction so the
// domain layer only ever sees model declarations.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and optional source bytes.
	Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)
	// ExtractPackage turns the files of one package into a Module declaration.
	ExtractPackage(fileSet *token.FileSet, name string, files []*ast.File) m.Declaration
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// ExtractPackage collects the exported declarations of files. Methods are
// attached to their receiver type when it is declared in the same package.
func (a *LocalGoFileAdapter) ExtractPackage(fileSet *token.FileSet, name string, files []*ast.File) m.Declaration {
	pkg := m.Declaration{Kind: m.KindModule, Name: name}

	var (
		raw     []string
		text    []string
		types   = map[string]int{}
		methods []*ast.FuncDecl
	)

	for _, file := range files {
		if file.Doc != nil {
			raw = append(raw, rawText(file.Doc))
			text = append(text, file.Doc.Text())

			if pkg.Source.File == "" {
				pkg.Source = sourceRef(fileSet, file.Package)
			}
		}

		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				for _, child := range genDeclarations(fileSet, d) {
					if child.Kind == m.KindClass || child.Kind == m.KindInterface || child.Kind == m.KindTypeAlias {
						types[child.Name] = len(pkg.Children)
					}

					pkg.Children = append(pkg.Children, child)
				}
			case *ast.FuncDecl:
				if !d.Name.IsExported() {
					continue
				}

				if d.Recv != nil {
					methods = append(methods, d)
					continue
				}

				pkg.Children = append(pkg.Children, declaration(fileSet, m.KindFunction, d.Name.Name, d.Doc, d.Pos()))
			}
		}
	}

	for _, fn := range methods {
		i, ok := types[receiverName(fn.Recv)]
		if !ok {
			continue
		}

		pkg.Children[i].Children = append(pkg.Children[i].Children,
			declaration(fileSet, m.KindMethod, fn.Name.Name, fn.Doc, fn.Pos()))
	}

	if len(raw) > 0 {
		joined := strings.Join(raw, "\n")
		pkg.RawComment = &joined
		pkg.Comment = strings.Join(text, "\n")
	}

	return pkg
}

func genDeclarations(fileSet *token.FileSet, d *ast.GenDecl) []m.Declaration {
	var decls []m.Declaration

	for _, spec := range d.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			if !s.Name.IsExported() {
				continue
			}

			decls = append(decls, typeDeclaration(fileSet, s, specDoc(s.Doc, d)))
		case *ast.ValueSpec:
			for _, ident := range s.Names {
				if !ident.IsExported() {
					continue
				}

				decls = append(decls, declaration(fileSet, m.KindVariable, ident.Name, specDoc(s.Doc, d), ident.Pos()))
			}
		}
	}

	return decls
}

func typeDeclaration(fileSet *token.FileSet, s *ast.TypeSpec, doc *ast.CommentGroup) m.Declaration {
	switch t := s.Type.(type) {
	case *ast.StructType:
		decl := declaration(fileSet, m.KindClass, s.Name.Name, doc, s.Pos())
		decl.Children = fieldDeclarations(fileSet, t.Fields, m.KindField)

		return decl
	case *ast.InterfaceType:
		decl := declaration(fileSet, m.KindInterface, s.Name.Name, doc, s.Pos())
		decl.Children = fieldDeclarations(fileSet, t.Methods, m.KindMethod)

		return decl
	default:
		return declaration(fileSet, m.KindTypeAlias, s.Name.Name, doc, s.Pos())
	}
}

func fieldDeclarations(fileSet *token.FileSet, fields *ast.FieldList, kind m.Kind) []m.Declaration {
	if fields == nil {
		return nil
	}

	var decls []m.Declaration

	for _, field := range fields.List {
		for _, name := range fieldNames(field) {
			if !ast.IsExported(name) {
				continue
			}

			k := kind
			if _, isFunc := field.Type.(*ast.FuncType); kind == m.KindMethod && !isFunc {
				// embedded interface
				k = m.KindTypeAlias
			}

			decls = append(decls, declaration(fileSet, k, name, field.Doc, field.Pos()))
		}
	}

	return decls
}

func fieldNames(field *ast.Field) []string {
	if len(field.Names) > 0 {
		names := make([]string, 0, len(field.Names))
		for _, n := range field.Names {
			names = append(names, n.Name)
		}

		return names
	}

	if name := typeName(field.Type); name != "" {
		return []string{name}
	}

	return nil
}

func receiverName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}

	return typeName(recv.List[0].Type)
}

func typeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return typeName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return typeName(t.X)
	case *ast.IndexListExpr:
		return typeName(t.X)
	}

	return ""
}

// specDoc falls back to the declaration doc for ungrouped specs.
func specDoc(doc *ast.CommentGroup, d *ast.GenDecl) *ast.CommentGroup {
	if doc == nil && !d.Lparen.IsValid() {
		return d.Doc
	}

	return doc
}

func declaration(fileSet *token.FileSet, kind m.Kind, name string, doc *ast.CommentGroup, pos token.Pos) m.Declaration {
	decl := m.Declaration{
		Kind:   kind,
		Name:   name,
		Source: sourceRef(fileSet, pos),
	}

	if doc != nil {
		r := rawText(doc)
		decl.RawComment = &r
		decl.Comment = doc.Text()
	}

	return decl
}

// rawText returns a comment group as written, markers included.
func rawText(group *ast.CommentGroup) string {
	lines := make([]string, 0, len(group.List))
	for _, c := range group.List {
		lines = append(lines, c.Text)
	}

	return strings.Join(lines, "\n")
}

func sourceRef(fileSet *token.FileSet, pos token.Pos) m.SourceRef {
	p := fileSet.Position(pos)

	return m.SourceRef{File: p.Filename, Line: p.Line}
}
