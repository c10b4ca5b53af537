package interp

import (
	"log/slog"

	"github.com/Vercily/js-tracker/ast"
	"github.com/Vercily/js-tracker/value"
)

// collectHoistNames implements spec.md §4.4's name-collection rules,
// recursing into the statement shapes the spec lists (blocks, both branches
// of an if, every switch case, all three try-statement bodies, and the
// init/body of every loop kind), plus the body of a labelled statement.
// It is the single source of truth for
// "what names does this statement list hoist" — used both to build the
// Program/BlockStatement hoisting pre-pass (hoist, below) and to precompute
// a FunctionExpression/FunctionDeclaration's FunctionAgentData.hoistings
// list (functions.go) at function-creation time.
func collectHoistNames(stmts []ast.Statement) []string {
	var names []string
	for _, s := range stmts {
		names = append(names, collectHoistNamesStatement(s)...)
	}
	return names
}

func collectHoistNamesStatement(s ast.Statement) []string {
	switch n := s.(type) {
	case *ast.FunctionDeclaration:
		return []string{n.Id.Name}
	case *ast.VariableDeclaration:
		return varNames(n)
	case *ast.BlockStatement:
		return collectHoistNames(n.Body)
	case *ast.IfStatement:
		names := collectHoistNamesStatement(n.Consequent)
		if n.Alternate != nil {
			names = append(names, collectHoistNamesStatement(n.Alternate)...)
		}
		return names
	case *ast.SwitchStatement:
		var names []string
		for _, c := range n.Cases {
			names = append(names, collectHoistNames(c.Consequent)...)
		}
		return names
	case *ast.TryStatement:
		names := collectHoistNames(n.Block.Body)
		if n.Handler != nil {
			names = append(names, collectHoistNames(n.Handler.Body.Body)...)
		}
		if n.Finalizer != nil {
			names = append(names, collectHoistNames(n.Finalizer.Body)...)
		}
		return names
	case *ast.ForStatement:
		var names []string
		if vd, ok := n.Init.(*ast.VariableDeclaration); ok {
			names = varNames(vd)
		}
		return append(names, collectHoistNamesStatement(n.Body)...)
	case *ast.ForInStatement:
		var names []string
		if vd, ok := n.Left.(*ast.VariableDeclaration); ok {
			names = varNames(vd)
		}
		return append(names, collectHoistNamesStatement(n.Body)...)
	case *ast.WhileStatement:
		return collectHoistNamesStatement(n.Body)
	case *ast.DoWhileStatement:
		return collectHoistNamesStatement(n.Body)
	case *ast.LabeledStatement:
		return collectHoistNamesStatement(n.Body)
	default:
		return nil
	}
}

func varNames(n *ast.VariableDeclaration) []string {
	if n.Kind != "var" {
		return nil
	}
	names := make([]string, len(n.Declarations))
	for i, d := range n.Declarations {
		names[i] = d.Id.Name
	}
	return names
}

// hoist is the Program/BlockStatement hoisting pre-pass of spec.md §4.4: it
// defines every collected name as Undefined in the current frame before any
// statement in stmts runs. A FunctionDeclaration's name is rebound to its
// real function value when the statement loop (runStatementList) — or, for
// one nested directly under a non-block construct like a bare `if` branch,
// evalStatement itself — actually visits that declaration.
func (interp *Interpreter) hoist(stmts []ast.Statement) {
	names := collectHoistNames(stmts)
	for _, name := range names {
		interp.closure.Define(name, value.Undefined)
	}
	if len(names) > 0 {
		slog.Debug("[hoist] pre-bound names", "count", len(names))
	}
}
