// internal/tracer/types.go
package tracer

import (
	"errors"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/packages"
)

var (
	ErrLoadFailed          = errors.New("packages failed to load")
	ErrInvalidName         = errors.New("invalid qualified type name")
	ErrPackageNotFound     = errors.New("package not found")
	ErrTypeNotFound        = errors.New("type not found")
	ErrNotAType            = errors.New("declaration is not a type")
	ErrApplicationNotFound = errors.New("application entry point not found")
)

// AnalysisTarget represents a function or method to be analyzed.
type AnalysisTarget struct {
	Pkg *packages.Package
	Fn  *ast.FuncDecl
}

// AnalysisTask represents a task in the analysis work queue.
type AnalysisTask struct {
	Fn    *types.Func
	Depth int
}

// TypeRef is a type resolved from the loaded project or one of its imports.
type TypeRef struct {
	name string
	obj  *types.TypeName
	pkg  *packages.Package // nil when declared outside the project
}

// QualifiedName returns "<import path>.<Name>".
func (r *TypeRef) QualifiedName() string { return r.name }

// Object returns the type's declaration.
func (r *TypeRef) Object() *types.TypeName { return r.obj }

// Type returns the declared type.
func (r *TypeRef) Type() types.Type { return r.obj.Type() }

// InProject reports whether the type is declared in one of the loaded packages.
func (r *TypeRef) InProject() bool { return r.pkg != nil }

// Kind describes the underlying type: struct, interface, basic, map, slice,
// array, pointer, func, chan or other.
func (r *TypeRef) Kind() string {
	switch r.obj.Type().Underlying().(type) {
	case *types.Struct:
		return "struct"
	case *types.Interface:
		return "interface"
	case *types.Basic:
		return "basic"
	case *types.Map:
		return "map"
	case *types.Slice:
		return "slice"
	case *types.Array:
		return "array"
	case *types.Pointer:
		return "pointer"
	case *types.Signature:
		return "func"
	case *types.Chan:
		return "chan"
	default:
		return "other"
	}
}

func (r *TypeRef) String() string { return r.name }

// qualifiedName is the key used for every type the tracer reports.
func qualifiedName(obj types.Object) string {
	return obj.Pkg().Path() + "." + obj.Name()
}
