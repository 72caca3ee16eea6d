// internal/tracer/tracer.go
package tracer

import (
	"fmt"
	"go/ast"
	"go/types"

	"go-type-input/internal/input"
)

// resultCollector implements the ast.Visitor interface. It traverses a function's
// AST and collects all referenced project functions, methods, and types in the
// order they appear.
type resultCollector struct {
	Info            *types.Info
	ProjectPackages map[string]bool // A set of package paths belonging to the user's project.
	CalledFuncs     []*types.Func   // Stores all functions/methods found.
	ReferencedTypes []*types.TypeName
}

// Visit is the core visitor method called for each node in the AST.
func (v *resultCollector) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		return nil
	}
	ident, ok := node.(*ast.Ident)
	if !ok {
		return v
	}
	obj := v.Info.ObjectOf(ident)
	if obj == nil || obj.Pkg() == nil {
		return v
	}
	if !v.ProjectPackages[obj.Pkg().Path()] {
		return v
	}
	switch obj := obj.(type) {
	case *types.Func:
		v.CalledFuncs = append(v.CalledFuncs, obj)
	case *types.TypeName:
		v.ReferencedTypes = append(v.ReferencedTypes, obj)
	}
	return v
}

// scan accumulates the source types found while walking an application.
type scan struct {
	project  *Project
	excluded map[string]bool
	seen     map[string]bool
	types    []input.SourceType
}

// add records tn unless it is outside the project or not a package-level
// type. Type parameters and types declared inside a function cannot be
// loaded by name, so they are never reported.
func (s *scan) add(tn *types.TypeName, context, member string) {
	if tn.Pkg() == nil || s.project.byPath[tn.Pkg().Path()] == nil {
		return
	}
	if tn.Parent() != tn.Pkg().Scope() {
		return
	}
	if _, ok := tn.Type().(*types.TypeParam); ok {
		return
	}
	name := qualifiedName(tn)
	if s.excluded[name] || s.seen[name] {
		return
	}
	s.seen[name] = true
	s.types = append(s.types, input.NewSourceTypeWithUsage(s.project.typeRef(tn), context, member))
}

// ScanApplication collects the project types an application entry point
// depends on. The entry is either a function or a named type, in which case
// every exported method of the type is an entry. Starting from the entries,
// called project functions are followed up to the project's depth; each
// visited function contributes the named types of its parameters and results
// and the types referenced in its body.
//
// excluded holds qualified type names, or function full names as printed by
// types.Func.FullName, to skip. Excluding a type also skips its methods.
func (p *Project) ScanApplication(app string, excluded []string) ([]input.SourceType, error) {
	entries, err := p.entryPoints(app)
	if err != nil {
		return nil, err
	}

	s := &scan{
		project:  p,
		excluded: make(map[string]bool, len(excluded)),
		seen:     make(map[string]bool),
	}
	for _, e := range excluded {
		s.excluded[e] = true
	}

	projectPackages := make(map[string]bool, len(p.byPath))
	for path := range p.byPath {
		projectPackages[path] = true
	}

	queue := make([]AnalysisTask, 0, len(entries))
	for _, fn := range entries {
		queue = append(queue, AnalysisTask{Fn: fn, Depth: 0})
	}
	processedFuncs := make(map[string]bool)

	for len(queue) > 0 {
		currentTask := queue[0]
		queue = queue[1:]
		fn := currentTask.Fn
		fnKey := fn.FullName()
		if processedFuncs[fnKey] || s.skipFunc(fn) {
			continue
		}
		processedFuncs[fnKey] = true
		p.logger.Debug("visiting function", "func", fnKey, "depth", currentTask.Depth)

		s.addSignature(fn)

		if fn.Pkg() == nil {
			continue
		}
		defPkg, ok := p.byPath[fn.Pkg().Path()]
		if !ok {
			continue
		}
		decl := findFuncDeclAt(defPkg, fn.Pos())
		if decl == nil || decl.Body == nil {
			continue
		}
		collector := &resultCollector{
			Info:            defPkg.TypesInfo,
			ProjectPackages: projectPackages,
		}
		ast.Walk(collector, decl.Body)

		for _, tn := range collector.ReferencedTypes {
			s.add(tn, "referenced in body of func "+fnKey, fnKey)
		}
		if currentTask.Depth >= p.depth {
			continue
		}
		for _, called := range collector.CalledFuncs {
			if !processedFuncs[called.FullName()] {
				queue = append(queue, AnalysisTask{Fn: called, Depth: currentTask.Depth + 1})
			}
		}
	}

	p.logger.Debug("scanned application", "application", app, "functions", len(processedFuncs), "types", len(s.types))
	return s.types, nil
}

// entryPoints resolves app to the functions the scan starts from.
func (p *Project) entryPoints(app string) ([]*types.Func, error) {
	pkgPath, ident, err := splitQualifiedName(app)
	if err != nil {
		return nil, err
	}
	pkg, ok := p.byPath[pkgPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s (package %s is not part of the project)", ErrApplicationNotFound, app, pkgPath)
	}

	switch obj := pkg.Types.Scope().Lookup(ident).(type) {
	case *types.Func:
		return []*types.Func{obj}, nil
	case *types.TypeName:
		var entries []*types.Func
		t := obj.Type()
		if !types.IsInterface(t) {
			t = types.NewPointer(t)
		}
		mset := types.NewMethodSet(t)
		for i := 0; i < mset.Len(); i++ {
			fn, ok := mset.At(i).Obj().(*types.Func)
			if ok && fn.Exported() {
				entries = append(entries, fn)
			}
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: %s has no exported methods", ErrApplicationNotFound, app)
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrApplicationNotFound, app)
	}
}

func (s *scan) skipFunc(fn *types.Func) bool {
	if s.excluded[fn.FullName()] {
		return true
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}
	recv := sig.Recv().Type()
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = ptr.Elem()
	}
	if named, ok := types.Unalias(recv).(*types.Named); ok && named.Obj().Pkg() != nil {
		return s.excluded[qualifiedName(named.Obj())]
	}
	return false
}

func (s *scan) addSignature(fn *types.Func) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return
	}
	fnKey := fn.FullName()
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		context := fmt.Sprintf("parameter %s of func %s", varLabel(params.At(i), i), fnKey)
		namedTypes(params.At(i).Type(), func(tn *types.TypeName) { s.add(tn, context, fnKey) })
	}
	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		context := fmt.Sprintf("result %s of func %s", varLabel(results.At(i), i), fnKey)
		namedTypes(results.At(i).Type(), func(tn *types.TypeName) { s.add(tn, context, fnKey) })
	}
}

func varLabel(v *types.Var, index int) string {
	if v.Name() == "" || v.Name() == "_" {
		return fmt.Sprint(index)
	}
	return v.Name()
}

// namedTypes calls visit for every named type t is built from.
func namedTypes(t types.Type, visit func(*types.TypeName)) {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		visit(t.Obj())
		args := t.TypeArgs()
		for i := 0; i < args.Len(); i++ {
			namedTypes(args.At(i), visit)
		}
	case *types.Pointer:
		namedTypes(t.Elem(), visit)
	case *types.Slice:
		namedTypes(t.Elem(), visit)
	case *types.Array:
		namedTypes(t.Elem(), visit)
	case *types.Chan:
		namedTypes(t.Elem(), visit)
	case *types.Map:
		namedTypes(t.Key(), visit)
		namedTypes(t.Elem(), visit)
	}
}
