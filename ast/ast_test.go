package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetTheExpectedESTreeTypeString(t *testing.T) {
	assert.Equal(t, "Program", NewProgram(nil).Type())
	assert.Equal(t, "BlockStatement", NewBlockStatement(nil).Type())
	assert.Equal(t, "ExpressionStatement", NewExpressionStatement(nil).Type())
	assert.Equal(t, "ReturnStatement", NewReturnStatement(nil).Type())
	assert.Equal(t, "IfStatement", NewIfStatement(nil, nil, nil).Type())
	assert.Equal(t, "SwitchStatement", NewSwitchStatement(nil, nil).Type())
	assert.Equal(t, "TryStatement", NewTryStatement(nil, nil, nil).Type())
	assert.Equal(t, "ForStatement", NewForStatement(nil, nil, nil, nil).Type())
	assert.Equal(t, "ForInStatement", NewForInStatement(nil, nil, nil).Type())
	assert.Equal(t, "VariableDeclaration", NewVariableDeclaration("var", nil).Type())
	assert.Equal(t, "FunctionDeclaration", NewFunctionDeclaration(nil, nil, nil).Type())
	assert.Equal(t, "Identifier", NewIdentifier("x").Type())
	assert.Equal(t, "Literal", NewLiteral(1.0).Type())
	assert.Equal(t, "ArrayExpression", NewArrayExpression(nil).Type())
	assert.Equal(t, "ObjectExpression", NewObjectExpression(nil).Type())
	assert.Equal(t, "FunctionExpression", NewFunctionExpression(nil, nil, nil).Type())
	assert.Equal(t, "CallExpression", NewCallExpression(nil, nil).Type())
	assert.Equal(t, "NewExpression", NewNewExpression(nil, nil).Type())
	assert.Equal(t, "MemberExpression", NewMemberExpression(nil, nil, false).Type())
}

func TestNewLiteralAndNewRegexLiteralAreMutuallyExclusive(t *testing.T) {
	lit := NewLiteral("hi")
	assert.Equal(t, "hi", lit.Value)
	assert.Nil(t, lit.Regex)

	re := NewRegexLiteral("a+", "g")
	assert.Nil(t, re.Value)
	require := assert.New(t)
	require.NotNil(re.Regex)
	require.Equal("a+", re.Regex.Pattern)
	require.Equal("g", re.Regex.Flags)
}

func TestIdentifierNameReadsPlainIdentifierKey(t *testing.T) {
	name, ok := IdentifierName(NewIdentifier("color"))
	assert.True(t, ok)
	assert.Equal(t, "color", name)
}

func TestIdentifierNameReadsStringLiteralKey(t *testing.T) {
	name, ok := IdentifierName(NewLiteral("color"))
	assert.True(t, ok)
	assert.Equal(t, "color", name)
}

func TestIdentifierNameFormatsNumericLiteralKeyWithoutTrailingZero(t *testing.T) {
	name, ok := IdentifierName(NewLiteral(2.0))
	assert.True(t, ok)
	assert.Equal(t, "2", name)
}

func TestIdentifierNameRejectsUnsupportedKeyNode(t *testing.T) {
	_, ok := IdentifierName(NewThisExpression())
	assert.False(t, ok)
}

func TestArrayExpressionElementsMayBeNilForElisions(t *testing.T) {
	arr := NewArrayExpression([]Expression{NewLiteral(1.0), nil, NewLiteral(3.0)})
	assert.Len(t, arr.Elements, 3)
	assert.Nil(t, arr.Elements[1])
}

func TestSwitchCaseTestNilMeansDefault(t *testing.T) {
	c := NewSwitchCase(nil, nil)
	assert.Nil(t, c.Test)
}
