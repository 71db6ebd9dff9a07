// Package lint reports type switches over sealed interfaces that do not
// name every member type.
//
// An interface is sealed when it has at least one unexported method: only
// its own package can implement it, so the set of implementations is closed
// and a switch over it can be checked for completeness.
package lint

import (
	"go/ast"
	"go/types"
	"strings"
)

// sealedInterface returns the named interface t refers to when it is sealed.
func sealedInterface(t types.Type) (*types.Named, *types.Interface, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, nil, false
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok || named.Obj().Pkg() == nil {
		return nil, nil, false
	}
	for i := 0; i < iface.NumMethods(); i++ {
		if !iface.Method(i).Exported() {
			return named, iface, true
		}
	}
	return nil, nil, false
}

// memberNames lists, sorted by name, the named non-interface types of the
// interface's package whose value or pointer type implements it.
func memberNames(named *types.Named, iface *types.Interface) []string {
	scope := named.Obj().Pkg().Scope()
	var members []string
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() || tn == named.Obj() {
			continue
		}
		t := tn.Type()
		if _, isIface := t.Underlying().(*types.Interface); isIface {
			continue
		}
		if types.Implements(t, iface) || types.Implements(types.NewPointer(t), iface) {
			members = append(members, name)
		}
	}
	return members
}

func qualifiedName(named *types.Named) string {
	return named.Obj().Pkg().Path() + "." + named.Obj().Name()
}

// displayName is the name used in messages, e.g. samples.IPAddr.
func displayName(named *types.Named) string {
	return named.Obj().Pkg().Name() + "." + named.Obj().Name()
}

// switchSubject returns the static type of the value a type switch inspects.
func switchSubject(info *types.Info, sw *ast.TypeSwitchStmt) types.Type {
	var expr ast.Expr
	switch s := sw.Assign.(type) {
	case *ast.ExprStmt:
		expr = s.X
	case *ast.AssignStmt:
		if len(s.Rhs) == 1 {
			expr = s.Rhs[0]
		}
	}
	ta, ok := expr.(*ast.TypeAssertExpr)
	if !ok {
		return nil
	}
	return info.TypeOf(ta.X)
}

// missingCases returns the members a type switch over named does not name.
// It returns nil when the switch is exhaustive.
func missingCases(info *types.Info, sw *ast.TypeSwitchStmt, named *types.Named, members []string, defaultExhaustive bool) []string {
	covered := make(map[string]bool)
	for _, stmt := range sw.Body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}
		if clause.List == nil {
			if defaultExhaustive {
				return nil
			}
			continue
		}
		for _, expr := range clause.List {
			t := info.TypeOf(expr)
			if t == nil {
				continue
			}
			if types.Identical(t, named) {
				return nil
			}
			if ptr, ok := t.(*types.Pointer); ok {
				t = ptr.Elem()
			}
			n, ok := types.Unalias(t).(*types.Named)
			if !ok || n.Obj().Pkg() == nil || n.Obj().Pkg().Path() != named.Obj().Pkg().Path() {
				continue
			}
			covered[n.Obj().Name()] = true
		}
	}

	var missing []string
	for _, m := range members {
		if !covered[m] {
			missing = append(missing, m)
		}
	}
	return missing
}

func joinMissing(missing []string) string {
	return strings.Join(missing, ", ")
}
