package lint

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/funvibe/sumtype/internal/diagnostics"
)

const doc = `report type switches over sealed interfaces that miss member types

An interface is sealed when it declares an unexported method. Its members are
the named types of its package that implement it. A type switch over a sealed
interface must name every member, name the interface itself, or have a default
clause (when -default-signifies-exhaustive is set, which is the default).`

// Analyzer checks type switches over sealed interfaces.
var Analyzer = &analysis.Analyzer{
	Name:      "sumtype",
	Doc:       doc,
	Run:       run,
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{new(sealedFact)},
}

var defaultSignifiesExhaustive = true

func init() {
	Analyzer.Flags.BoolVar(&defaultSignifiesExhaustive, "default-signifies-exhaustive", true,
		"treat a type switch with a default clause as exhaustive")
}

// sealedFact records the members of a sealed interface for packages that
// import it.
type sealedFact struct {
	Members []string
}

func (*sealedFact) AFact() {}

func (f *sealedFact) String() string {
	return fmt.Sprintf("sealed%v", f.Members)
}

func run(pass *analysis.Pass) (interface{}, error) {
	scope := pass.Pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		if named, iface, ok := sealedInterface(tn.Type()); ok && named.Obj() == tn {
			pass.ExportObjectFact(tn, &sealedFact{Members: memberNames(named, iface)})
		}
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.TypeSwitchStmt)(nil)}, func(n ast.Node) {
		sw := n.(*ast.TypeSwitchStmt)
		named, iface, ok := sealedInterface(switchSubject(pass.TypesInfo, sw))
		if !ok {
			return
		}

		var members []string
		var fact sealedFact
		if pass.ImportObjectFact(named.Obj(), &fact) {
			members = fact.Members
		} else {
			members = memberNames(named, iface)
		}

		missing := missingCases(pass.TypesInfo, sw, named, members, defaultSignifiesExhaustive)
		if len(missing) == 0 {
			return
		}
		d := diagnostics.NewError(diagnostics.ErrL001, displayName(named), joinMissing(missing))
		pass.Reportf(sw.Pos(), "%s", d.Message)
	})
	return nil, nil
}
