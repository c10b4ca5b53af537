// Package gen provides a minimal source-text regenerator for expression
// nodes. Producing faithful, whitespace-preserving source text from an AST
// is an external collaborator's job per spec.md §6; this package supplies
// just enough of one (a best-effort, not necessarily round-trippable,
// rendering) so that interp can populate CallInfo.Code for tests and
// standalone use without requiring a caller to wire in a real code
// generator.
package gen

import (
	"fmt"
	"strings"

	"github.com/Vercily/js-tracker/ast"
)

// Expression renders a best-effort source string for an expression node.
func Expression(n ast.Expression) string {
	switch e := n.(type) {
	case *ast.Identifier:
		return e.Name
	case *ast.ThisExpression:
		return "this"
	case *ast.Literal:
		return literalText(e)
	case *ast.MemberExpression:
		if e.Computed {
			return fmt.Sprintf("%s[%s]", Expression(e.Object), Expression(e.Property))
		}
		return fmt.Sprintf("%s.%s", Expression(e.Object), Expression(e.Property))
	case *ast.CallExpression:
		return fmt.Sprintf("%s(%s)", Expression(e.Callee), joinArgs(e.Arguments))
	case *ast.NewExpression:
		return fmt.Sprintf("new %s(%s)", Expression(e.Callee), joinArgs(e.Arguments))
	case *ast.AssignmentExpression:
		return fmt.Sprintf("%s %s %s", Expression(e.Left), e.Operator, Expression(e.Right))
	case *ast.BinaryExpression:
		return fmt.Sprintf("%s %s %s", Expression(e.Left), e.Operator, Expression(e.Right))
	case *ast.LogicalExpression:
		return fmt.Sprintf("%s %s %s", Expression(e.Left), e.Operator, Expression(e.Right))
	case *ast.UnaryExpression:
		return fmt.Sprintf("%s%s", e.Operator, Expression(e.Argument))
	case *ast.UpdateExpression:
		if e.Prefix {
			return fmt.Sprintf("%s%s", e.Operator, Expression(e.Argument))
		}
		return fmt.Sprintf("%s%s", Expression(e.Argument), e.Operator)
	case *ast.ConditionalExpression:
		return fmt.Sprintf("%s ? %s : %s", Expression(e.Test), Expression(e.Consequent), Expression(e.Alternate))
	case *ast.SequenceExpression:
		parts := make([]string, len(e.Expressions))
		for i, x := range e.Expressions {
			parts[i] = Expression(x)
		}
		return strings.Join(parts, ", ")
	case *ast.ArrayExpression:
		parts := make([]string, len(e.Elements))
		for i, x := range e.Elements {
			if x == nil {
				continue
			}
			parts[i] = Expression(x)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.FunctionExpression:
		name := ""
		if e.Id != nil {
			name = e.Id.Name
		}
		return fmt.Sprintf("function %s() { ... }", name)
	default:
		return fmt.Sprintf("<%s>", n.Type())
	}
}

func literalText(l *ast.Literal) string {
	if l.Regex != nil {
		return fmt.Sprintf("/%s/%s", l.Regex.Pattern, l.Regex.Flags)
	}
	switch v := l.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func joinArgs(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Expression(a)
	}
	return strings.Join(parts, ", ")
}
