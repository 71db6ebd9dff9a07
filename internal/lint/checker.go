package lint

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/funvibe/sumtype/internal/config"
	"github.com/funvibe/sumtype/internal/diagnostics"
)

// LoadMode is what the Checker needs from go/packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedSyntax |
	packages.NeedImports |
	packages.NeedDeps

// Checker applies the sealed-interface rule to packages loaded with
// go/packages, without the analysis driver. A Checker caches member lists
// and is not safe for concurrent use.
type Checker struct {
	// DefaultSignifiesExhaustive accepts a default clause as full coverage.
	DefaultSignifiesExhaustive bool

	// Exclude reports whether the interface with the given qualified name
	// (import path, dot, type name) is skipped.
	Exclude func(qualified string) bool

	members map[*types.TypeName][]string
}

// NewChecker returns a Checker configured from cfg.
func NewChecker(cfg *config.Config) *Checker {
	return &Checker{
		DefaultSignifiesExhaustive: cfg.DefaultExhaustive(),
		Exclude:                    cfg.Excluded,
	}
}

// Load loads patterns relative to dir with LoadMode.
func Load(dir string, patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
		Env:  append(os.Environ(), "GOWORK=off"),
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	var errs []string
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", pkg.PkgPath, e.Msg))
		}
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors:\n  %s", strings.Join(errs, "\n  "))
	}
	return pkgs, nil
}

// Check returns one L001 diagnostic per non-exhaustive type switch in pkgs,
// ordered by file and position.
func (c *Checker) Check(pkgs []*packages.Package) []*diagnostics.DiagnosticError {
	var found []*diagnostics.DiagnosticError
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			found = append(found, c.CheckFile(pkg.Fset, pkg.TypesInfo, file)...)
		}
	}
	diagnostics.Sort(found)
	return found
}

// CheckFile checks one type-checked file.
func (c *Checker) CheckFile(fset *token.FileSet, info *types.Info, file *ast.File) []*diagnostics.DiagnosticError {
	var found []*diagnostics.DiagnosticError
	ast.Inspect(file, func(n ast.Node) bool {
		sw, ok := n.(*ast.TypeSwitchStmt)
		if !ok {
			return true
		}
		named, iface, ok := sealedInterface(switchSubject(info, sw))
		if !ok || (c.Exclude != nil && c.Exclude(qualifiedName(named))) {
			return true
		}
		missing := missingCases(info, sw, named, c.membersOf(named, iface), c.DefaultSignifiesExhaustive)
		if len(missing) > 0 {
			found = append(found, diagnostics.NewErrorAt(diagnostics.ErrL001, fset.Position(sw.Pos()),
				displayName(named), joinMissing(missing)))
		}
		return true
	})
	return found
}

func (c *Checker) membersOf(named *types.Named, iface *types.Interface) []string {
	if c.members == nil {
		c.members = make(map[*types.TypeName][]string)
	}
	if m, ok := c.members[named.Obj()]; ok {
		return m
	}
	m := memberNames(named, iface)
	c.members[named.Obj()] = m
	return m
}
