package tracer

import (
	"context"
	"fmt"
	"go/types"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"go-type-input/internal/input"
)

// DefaultDepth is how many call levels ScanApplication follows from the entry
// point when Options.Depth is not set.
const DefaultDepth = 1

// Options control how a project is loaded and scanned.
type Options struct {
	// Patterns passed to packages.Load. Defaults to "./...".
	Patterns []string
	// AllowErrors keeps packages that failed to type-check instead of failing
	// the load.
	AllowErrors bool
	// Depth limits how far ScanApplication follows calls. Negative means no
	// recursion beyond the entry point.
	Depth  int
	Logger *log.Logger
}

// Project is a loaded Go project. It resolves qualified type names, lists the
// types the project declares and introspects application entry points.
type Project struct {
	Dir string

	pkgs     []*packages.Package
	byPath   map[string]*packages.Package
	imported map[string]*types.Package
	depth    int
	logger   *log.Logger
}

// Load loads the packages of the project rooted at dir.
func Load(ctx context.Context, dir string, opts Options) (*Project, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tracer"})
	}
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	logger.Debug("loading packages", "dir", dir, "patterns", patterns)
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.LoadSyntax | packages.LoadTypes | packages.LoadFiles,
		Dir:     dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errCount int
	for _, p := range pkgs {
		for _, pkgErr := range p.Errors {
			errCount++
			logger.Warn("package error", "package", p.PkgPath, "error", pkgErr.Msg)
		}
	}
	if errCount > 0 && !opts.AllowErrors {
		return nil, fmt.Errorf("%w: %d errors in %s", ErrLoadFailed, errCount, dir)
	}

	opts.Logger = logger
	project := NewProject(pkgs, opts)
	project.Dir = dir
	logger.Debug("loaded project", "dir", dir, "packages", len(project.pkgs))
	return project, nil
}

// NewProject wraps packages that were already loaded with at least
// packages.LoadSyntax.
func NewProject(pkgs []*packages.Package, opts Options) *Project {
	depth := opts.Depth
	if depth == 0 {
		depth = DefaultDepth
	}
	if depth < 0 {
		depth = 0
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tracer"})
	}

	p := &Project{
		byPath:   make(map[string]*packages.Package),
		imported: make(map[string]*types.Package),
		depth:    depth,
		logger:   logger,
	}
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		if _, dup := p.byPath[pkg.PkgPath]; dup {
			continue
		}
		p.byPath[pkg.PkgPath] = pkg
		p.pkgs = append(p.pkgs, pkg)
	}
	sort.Slice(p.pkgs, func(i, j int) bool { return p.pkgs[i].PkgPath < p.pkgs[j].PkgPath })

	// Index imported packages so names from dependencies resolve too.
	var visit func(tp *types.Package)
	visit = func(tp *types.Package) {
		if _, seen := p.imported[tp.Path()]; seen {
			return
		}
		p.imported[tp.Path()] = tp
		for _, imp := range tp.Imports() {
			visit(imp)
		}
	}
	for _, pkg := range p.pkgs {
		visit(pkg.Types)
	}
	return p
}

// Packages returns the project's packages sorted by import path.
func (p *Project) Packages() []*packages.Package {
	return append([]*packages.Package(nil), p.pkgs...)
}

// splitQualifiedName splits "<import path>.<Name>" at the last dot.
func splitQualifiedName(name string) (pkgPath, ident string, err error) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name[:i], name[i+1:], nil
}

// LoadType implements input.TypeResolver on top of Lookup.
func (p *Project) LoadType(name string) (input.Handle, error) {
	ref, err := p.Lookup(name)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// Lookup resolves a qualified type name such as
// "example.com/shop/model.Order" or "time.Duration".
func (p *Project) Lookup(name string) (*TypeRef, error) {
	pkgPath, ident, err := splitQualifiedName(name)
	if err != nil {
		return nil, err
	}
	tp, ok := p.imported[pkgPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, pkgPath)
	}
	obj := tp.Scope().Lookup(ident)
	if obj == nil {
		return nil, fmt.Errorf("%w: %s in %s", ErrTypeNotFound, ident, pkgPath)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %T", ErrNotAType, name, obj)
	}
	return p.typeRef(tn), nil
}

func (p *Project) typeRef(tn *types.TypeName) *TypeRef {
	return &TypeRef{name: qualifiedName(tn), obj: tn, pkg: p.byPath[tn.Pkg().Path()]}
}

// AllNames lists every package-level, non-alias type declared in the
// project: packages in import path order, names sorted within a package.
func (p *Project) AllNames() []string {
	var names []string
	for _, pkg := range p.pkgs {
		scope := pkg.Types.Scope()
		for _, ident := range scope.Names() {
			tn, ok := scope.Lookup(ident).(*types.TypeName)
			if !ok || tn.IsAlias() {
				continue
			}
			names = append(names, qualifiedName(tn))
		}
	}
	return names
}
