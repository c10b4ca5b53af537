package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vercily/js-tracker/ast"
)

func id(name string) *ast.Identifier { return ast.NewIdentifier(name) }
func lit(v interface{}) *ast.Literal { return ast.NewLiteral(v) }

func TestExpressionRendersIdentifiersThisAndLiterals(t *testing.T) {
	assert.Equal(t, "x", Expression(id("x")))
	assert.Equal(t, "this", Expression(ast.NewThisExpression()))
	assert.Equal(t, "1", Expression(lit(1.0)))
	assert.Equal(t, `"hi"`, Expression(lit("hi")))
	assert.Equal(t, "null", Expression(lit(nil)))
}

func TestExpressionRendersMemberExpressionDottedOrBracketedByComputed(t *testing.T) {
	dotted := ast.NewMemberExpression(id("el"), id("style"), false)
	assert.Equal(t, "el.style", Expression(dotted))

	computed := ast.NewMemberExpression(id("el"), lit("style"), true)
	assert.Equal(t, `el["style"]`, Expression(computed))
}

func TestExpressionRendersCallAndNewExpressionsWithJoinedArguments(t *testing.T) {
	call := ast.NewCallExpression(id("f"), []ast.Expression{lit(1.0), lit(2.0)})
	assert.Equal(t, "f(1, 2)", Expression(call))

	newExpr := ast.NewNewExpression(id("Widget"), []ast.Expression{lit("x")})
	assert.Equal(t, `new Widget("x")`, Expression(newExpr))
}

func TestExpressionRendersAssignmentBinaryAndLogicalExpressions(t *testing.T) {
	assign := ast.NewAssignmentExpression("=", id("x"), lit(1.0))
	assert.Equal(t, "x = 1", Expression(assign))

	bin := ast.NewBinaryExpression("+", id("a"), id("b"))
	assert.Equal(t, "a + b", Expression(bin))

	logical := ast.NewLogicalExpression("&&", id("a"), id("b"))
	assert.Equal(t, "a && b", Expression(logical))
}

func TestExpressionRendersUnaryAndUpdateExpressionsRespectingPrefix(t *testing.T) {
	unary := ast.NewUnaryExpression("!", id("a"))
	assert.Equal(t, "!a", Expression(unary))

	prefix := ast.NewUpdateExpression("++", id("i"), true)
	assert.Equal(t, "++i", Expression(prefix))

	postfix := ast.NewUpdateExpression("++", id("i"), false)
	assert.Equal(t, "i++", Expression(postfix))
}

func TestExpressionRendersConditionalSequenceAndArrayExpressions(t *testing.T) {
	cond := ast.NewConditionalExpression(id("a"), lit(1.0), lit(2.0))
	assert.Equal(t, "a ? 1 : 2", Expression(cond))

	seq := ast.NewSequenceExpression([]ast.Expression{lit(1.0), lit(2.0)})
	assert.Equal(t, "1, 2", Expression(seq))

	arr := ast.NewArrayExpression([]ast.Expression{lit(1.0), lit(2.0)})
	assert.Equal(t, "[1, 2]", Expression(arr))
}

func TestExpressionRendersFunctionExpressionsByNameWhenPresent(t *testing.T) {
	anon := ast.NewFunctionExpression(nil, nil, ast.NewBlockStatement(nil))
	assert.Equal(t, "function () { ... }", Expression(anon))

	named := ast.NewFunctionExpression(id("f"), nil, ast.NewBlockStatement(nil))
	assert.Equal(t, "function f() { ... }", Expression(named))
}

func TestExpressionFallsBackToTheTypeTagForUnhandledNodes(t *testing.T) {
	// ObjectExpression has no case in Expression's switch.
	obj := ast.NewObjectExpression(nil)
	assert.Equal(t, "<ObjectExpression>", Expression(obj))
}
