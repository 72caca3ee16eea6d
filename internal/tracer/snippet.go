// internal/tracer/snippet.go
package tracer

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// fileAt returns the syntax tree of pkg that contains pos.
func fileAt(pkg *packages.Package, pos token.Pos) *ast.File {
	for _, file := range pkg.Syntax {
		if file.Pos() <= pos && pos < file.End() {
			return file
		}
	}
	return nil
}

func findFuncDeclAt(pkg *packages.Package, pos token.Pos) *ast.FuncDecl {
	file := fileAt(pkg, pos)
	if file == nil {
		return nil
	}
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Pos() == pos {
			return fn
		}
	}
	return nil
}

// findTypeSpecAt returns the type spec named at pos together with the
// declaration to print for it: the enclosing type group, or the spec itself
// for a type declared inside a function.
func findTypeSpecAt(pkg *packages.Package, pos token.Pos) (*ast.TypeSpec, ast.Node) {
	file := fileAt(pkg, pos)
	if file == nil {
		return nil, nil
	}
	var spec *ast.TypeSpec
	ast.Inspect(file, func(n ast.Node) bool {
		if spec != nil {
			return false
		}
		if ts, ok := n.(*ast.TypeSpec); ok && ts.Name.Pos() == pos {
			spec = ts
			return false
		}
		return true
	})
	if spec == nil {
		return nil, nil
	}
	path, _ := astutil.PathEnclosingInterval(file, spec.Pos(), spec.End())
	for _, n := range path {
		if gd, ok := n.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
			return spec, gd
		}
	}
	return spec, spec
}

func formatNode(fset *token.FileSet, node ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func getFuncSourceSnippet(pkg *packages.Package, pos token.Pos) (string, error) {
	decl := findFuncDeclAt(pkg, pos)
	if decl == nil {
		return "", fmt.Errorf("no function declared at %s", pkg.Fset.Position(pos))
	}
	return formatNode(pkg.Fset, decl)
}

func getTypeSourceSnippet(pkg *packages.Package, pos token.Pos) (string, error) {
	_, decl := findTypeSpecAt(pkg, pos)
	if decl == nil {
		return "", fmt.Errorf("no type declared at %s", pkg.Fset.Position(pos))
	}
	return formatNode(pkg.Fset, decl)
}

// Snippet returns the formatted declaration of a project type.
func (r *TypeRef) Snippet() (string, error) {
	if r.pkg == nil {
		return "", fmt.Errorf("%s is not declared in the project", r.name)
	}
	return getTypeSourceSnippet(r.pkg, r.obj.Pos())
}

// FindTarget locates the target function declaration within the loaded packages.
func (p *Project) FindTarget(filePath, funcName string) (AnalysisTarget, error) {
	var target AnalysisTarget
	for _, pkg := range p.pkgs {
		for i, file := range pkg.GoFiles {
			if file != filePath || i >= len(pkg.Syntax) {
				continue
			}
			for _, decl := range pkg.Syntax[i].Decls {
				if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == funcName {
					target = AnalysisTarget{Pkg: pkg, Fn: fn}
					return target, nil
				}
			}
		}
	}
	return target, fmt.Errorf("function '%s' not found in file '%s'", funcName, filePath)
}

// GetFuncCode returns the source code of a specific function.
func GetFuncCode(target AnalysisTarget) (string, error) {
	return getFuncSourceSnippet(target.Pkg, target.Fn.Name.Pos())
}
