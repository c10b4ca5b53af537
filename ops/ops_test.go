package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vercily/js-tracker/ast"
	"github.com/Vercily/js-tracker/value"
)

func TestDefaultBinaryPlusConcatenatesWhenEitherOperandIsAString(t *testing.T) {
	tbl := Default()
	result, err := tbl.Binary["+"](1.0, "x")
	require.NoError(t, err)
	assert.Equal(t, "1x", result)

	result, err = tbl.Binary["+"](1.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, result)
}

func TestDefaultBinaryArithmeticOperators(t *testing.T) {
	tbl := Default()
	cases := []struct {
		op   string
		l, r float64
		want float64
	}{
		{"-", 5, 3, 2},
		{"*", 4, 3, 12},
		{"/", 10, 4, 2.5},
		{"%", 10, 3, 1},
	}
	for _, c := range cases {
		result, err := tbl.Binary[c.op](c.l, c.r)
		require.NoError(t, err)
		assert.Equal(t, c.want, result, "operator %q", c.op)
	}
}

func TestDefaultBinaryComparisonOperators(t *testing.T) {
	tbl := Default()
	lt, _ := tbl.Binary["<"](1.0, 2.0)
	assert.Equal(t, true, lt)
	gte, _ := tbl.Binary[">="](2.0, 2.0)
	assert.Equal(t, true, gte)
}

func TestDefaultBinaryStrictVersusLooseEquality(t *testing.T) {
	tbl := Default()
	strict, _ := tbl.Binary["==="](1.0, "1")
	assert.Equal(t, false, strict)

	loose, _ := tbl.Binary["=="](1.0, "1")
	assert.Equal(t, true, loose)

	nullUndef, _ := tbl.Binary["=="](value.Null, value.Undefined)
	assert.Equal(t, true, nullUndef)

	notEq, _ := tbl.Binary["!=="](1.0, 1.0)
	assert.Equal(t, false, notEq)
}

func TestDefaultBinaryInOperatorChecksOwnKeysOnTheObject(t *testing.T) {
	tbl := Default()
	obj := value.NewPlainObject()
	obj.Set("x", 1.0)

	has, err := tbl.Binary["in"]("x", obj)
	require.NoError(t, err)
	assert.Equal(t, true, has)

	missing, err := tbl.Binary["in"]("y", obj)
	require.NoError(t, err)
	assert.Equal(t, false, missing)

	_, err = tbl.Binary["in"]("x", 1.0)
	assert.Error(t, err)
}

func TestDefaultBinaryInstanceofRequiresACallableRightHandSide(t *testing.T) {
	tbl := Default()
	obj := value.NewPlainObject()
	result, err := tbl.Binary["instanceof"](obj, obj)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestDefaultUnaryOperators(t *testing.T) {
	tbl := Default()
	not, _ := tbl.Unary["!"](false)
	assert.Equal(t, true, not)

	neg, _ := tbl.Unary["-"](5.0)
	assert.Equal(t, -5.0, neg)

	typeOf, _ := tbl.Unary["typeof"]("s")
	assert.Equal(t, "string", typeOf)

	voided, _ := tbl.Unary["void"](1.0)
	assert.True(t, value.IsUndefined(voided))
}

func TestDefaultUpdateOperators(t *testing.T) {
	tbl := Default()
	inc, _ := tbl.Update["++"](1.0)
	assert.Equal(t, 2.0, inc)
	dec, _ := tbl.Update["--"](1.0)
	assert.Equal(t, 0.0, dec)
}

// literalEval resolves a hand-built ast.Literal back to its Go value,
// recording every node it was asked to evaluate so a test can assert which
// operand a short-circuiting operator actually touched.
func literalEval(seen *[]ast.Expression) Evaluator {
	return func(e ast.Expression) (value.Value, error) {
		*seen = append(*seen, e)
		return e.(*ast.Literal).Value, nil
	}
}

func TestDefaultLogicalAndShortCircuitsWithoutEvaluatingTheRightOperandWhenLeftIsFalsy(t *testing.T) {
	tbl := Default()
	var seen []ast.Expression
	right := ast.NewLiteral(true)
	result, err := tbl.Logical["&&"](ast.NewLiteral(false), right, literalEval(&seen))
	require.NoError(t, err)
	assert.Equal(t, false, result)
	assert.NotContains(t, seen, ast.Expression(right))
}

func TestDefaultLogicalOrShortCircuitsWithoutEvaluatingTheRightOperandWhenLeftIsTruthy(t *testing.T) {
	tbl := Default()
	var seen []ast.Expression
	right := ast.NewLiteral(false)
	result, err := tbl.Logical["||"](ast.NewLiteral(true), right, literalEval(&seen))
	require.NoError(t, err)
	assert.Equal(t, true, result)
	assert.NotContains(t, seen, ast.Expression(right))
}
