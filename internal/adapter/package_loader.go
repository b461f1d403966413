package adapter

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/docfold/internal/model"
)

const goFileExt = ".go"

// LoadArgs selects the packages to load.
type LoadArgs struct {
	// Roots are directories, optionally ending in "/..." for recursion.
	Roots []m.Path
	// Exclude holds doublestar globs matched against paths relative to each root.
	Exclude []string
	// Parallel bounds how many packages are parsed at once.
	Parallel int
}

// PackageLoader discovers and parses Go packages.
type PackageLoader interface {
	Load(ctx context.Context, args LoadArgs) ([]m.Package, error)
}

type packageLoader struct {
	fsAdapter SourceFSAdapter
	goAdapter GoFileAdapter
}

// NewPackageLoader creates a PackageLoader over the given adapters.
func NewPackageLoader(fsAdapter SourceFSAdapter, goAdapter GoFileAdapter) PackageLoader {
	return &packageLoader{fsAdapter: fsAdapter, goAdapter: goAdapter}
}

type packageDir struct {
	dir        string
	importPath string
	name       string
	files      []string
}

// Load returns the packages under args.Roots sorted by import path. Test
// files and directories the go tool ignores are skipped. Directories whose
// files all fail to parse are reported as errors.
func (l *packageLoader) Load(ctx context.Context, args LoadArgs) ([]m.Package, error) {
	exclude, err := NewExcludeMatcher(args.Exclude)
	if err != nil {
		return nil, err
	}

	dirs := map[string]*packageDir{}

	for _, root := range args.Roots {
		if err := l.collect(root, exclude, dirs); err != nil {
			return nil, err
		}
	}

	ordered := make([]*packageDir, 0, len(dirs))
	for _, d := range dirs {
		ordered = append(ordered, d)
	}

	slices.SortFunc(ordered, func(a, b *packageDir) int { return strings.Compare(a.importPath, b.importPath) })

	packages := make([]m.Package, len(ordered))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(args.Parallel, 1))

	for i, d := range ordered {
		i, d := i, d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			pkg, err := l.parsePackage(d)
			if err != nil {
				return err
			}

			packages[i] = pkg

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return packages, nil
}

func (l *packageLoader) collect(root m.Path, exclude *ExcludeMatcher, dirs map[string]*packageDir) error {
	rootPath, recursive, err := normalizeRootPath(string(root))
	if err != nil {
		return err
	}

	if _, err := l.fsAdapter.FileInfo(m.Path(rootPath)); err != nil {
		return fmt.Errorf("root path error: %w", err)
	}

	modRoot, modPath, err := l.fsAdapter.FindProjectRoot(m.Path(rootPath))
	if err != nil {
		modRoot, modPath = m.Path(rootPath), ""
	}

	return l.fsAdapter.Walk(m.Path(rootPath), recursive, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := l.fsAdapter.RelPath(m.Path(rootPath), m.Path(p))
		if err != nil {
			return err
		}

		if info.IsDir() {
			if p == rootPath {
				return nil
			}

			if skipDir(info.Name()) || exclude.Match(string(rel)) {
				return filepath.SkipDir
			}

			// nested modules are not part of this one
			if _, err := l.fsAdapter.FileInfo(m.Path(filepath.Join(p, "go.mod"))); err == nil {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(p) != goFileExt || strings.HasSuffix(p, "_test.go") || exclude.Match(string(rel)) {
			return nil
		}

		dir := filepath.Dir(p)

		d, ok := dirs[dir]
		if !ok {
			importPath, name, err := l.importPath(modRoot, modPath, dir)
			if err != nil {
				return err
			}

			d = &packageDir{dir: dir, importPath: importPath, name: name}
			dirs[dir] = d
		}

		if !slices.Contains(d.files, p) {
			d.files = append(d.files, p)
		}

		return nil
	})
}

// importPath returns the import path of dir and the module-relative name
// its reflection is displayed under.
func (l *packageLoader) importPath(modRoot m.Path, modPath, dir string) (string, string, error) {
	rel, err := l.fsAdapter.RelPath(modRoot, m.Path(dir))
	if err != nil {
		return "", "", err
	}

	if rel == "." || strings.HasPrefix(string(rel), "..") {
		rel = ""
	}

	name := string(rel)
	if name == "" {
		name = filepath.Base(dir)
	}

	if modPath == "" {
		return name, name, nil
	}

	return path.Join(modPath, string(rel)), name, nil
}

func (l *packageLoader) parsePackage(d *packageDir) (m.Package, error) {
	fset := token.NewFileSet()

	var (
		files   []*ast.File
		lastErr error
	)

	slices.Sort(d.files)

	for _, p := range d.files {
		src, err := l.fsAdapter.ReadFile(m.Path(p))
		if err != nil {
			return m.Package{}, fmt.Errorf("read %s: %w", p, err)
		}

		file, err := l.goAdapter.Parse(fset, p, src)
		if err != nil {
			lastErr = err
			continue
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return m.Package{}, fmt.Errorf("parse %s: %w", d.dir, lastErr)
	}

	return m.Package{
		ImportPath: d.importPath,
		Dir:        m.Path(d.dir),
		Decl:       l.goAdapter.ExtractPackage(fset, d.name, files),
	}, nil
}
