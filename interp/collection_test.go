package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vercily/js-tracker/ast"
	"github.com/Vercily/js-tracker/checker"
	"github.com/Vercily/js-tracker/host"
	"github.com/Vercily/js-tracker/value"
)

// styleColorAssignment builds `this.el.style.color = "red"`, the spec.md
// §8 concrete scenario for the checker hook/Collection pipeline.
func styleColorAssignment() *ast.AssignmentExpression {
	elMember := ast.NewMemberExpression(ast.NewThisExpression(), id("el"), false)
	styleMember := ast.NewMemberExpression(elMember, id("style"), false)
	colorMember := ast.NewMemberExpression(styleMember, id("color"), false)
	return ast.NewAssignmentExpression("=", colorMember, lit("red"))
}

func TestCheckerFlaggedStyleAssignmentAttributesToOwningElement(t *testing.T) {
	global := host.NewRefGlobal()
	el := host.NewRefElement()
	global.Set("el", el)

	chk := checker.CheckerFunc(func(site checker.CallSite) (checker.Status, bool) {
		if value.ToString(site.Callee) == "color" {
			return checker.Status{Type: "style-mutation"}, true
		}
		return checker.Status{}, false
	})

	i := New(WithContext(global), WithChecker(chk))
	runProgram(t, i, exprStmt(styleColorAssignment()))

	entries := i.Collection().Entries()
	require.Len(t, entries, 1)
	assert.Same(t, el, entries[0].Element)
	assert.Equal(t, "style-mutation", entries[0].Type)

	styleVal, ok := el.Get("style")
	require.True(t, ok)
	color, ok := styleVal.(*host.RefStyle).Get("color")
	require.True(t, ok)
	assert.Equal(t, "red", color)
}

func TestCheckerFlaggedCallOnJQueryWrapperExpandsToAllWrappedElements(t *testing.T) {
	// recordCheckedCall's jQuery expansion (collection.go's targetElements):
	// a checker verdict whose caller is a host.JQueryLike records one
	// Collection entry per wrapped element, not one entry for the wrapper.
	global := host.NewRefGlobal()
	a, b := host.NewRefElement(), host.NewRefElement()
	jq := host.NewRefJQuery(a, b)
	global.SetJQuery(value.NewPlainObject())

	chk := checker.CheckerFunc(func(site checker.CallSite) (checker.Status, bool) {
		if value.ToString(site.Callee) == "hide" {
			return checker.Status{Type: "visibility"}, true
		}
		return checker.Status{}, false
	})
	i := New(WithContext(global), WithChecker(chk))

	cleanup := i.checkCallSite(jq, "hide", &CallInfo{Code: "this.all.hide()"})
	cleanup()

	entries := i.Collection().Entries()
	require.Len(t, entries, 2)
	assert.Same(t, a, entries[0].Element)
	assert.Same(t, b, entries[1].Element)
	assert.Equal(t, "visibility", entries[0].Type)
	assert.Equal(t, "visibility", entries[1].Type)
}

func TestJQueryLikeTargetWithoutHostOptInRecordsTheWrapperItself(t *testing.T) {
	// A value satisfying host.JQueryLike must NOT expand via Elements() when
	// the host never exposed a jQuery constructor — the wrapper is just
	// another object to a jQuery-less host, so it normalizes to a
	// single-element sequence.
	global := host.NewRefGlobal()
	a, b := host.NewRefElement(), host.NewRefElement()
	jq := host.NewRefJQuery(a, b)

	chk := checker.CheckerFunc(func(checker.CallSite) (checker.Status, bool) {
		return checker.Status{Type: "visibility"}, true
	})
	i := New(WithContext(global), WithChecker(chk))

	cleanup := i.checkCallSite(jq, "hide", &CallInfo{Code: "this.all.hide()"})
	cleanup()

	entries := i.Collection().Entries()
	require.Len(t, entries, 1)
	assert.Same(t, jq, entries[0].Element)
}

func TestCheckFlagRestoredAfterThrowingCheckedCall(t *testing.T) {
	global := host.NewRefGlobal()
	el := host.NewRefElement()
	global.Set("el", el)

	chk := checker.CheckerFunc(func(checker.CallSite) (checker.Status, bool) {
		return checker.Status{Type: "any"}, true
	})
	i := New(WithContext(global), WithChecker(chk))

	assignExplode := ast.NewAssignmentExpression("=",
		ast.NewMemberExpression(ast.NewMemberExpression(ast.NewThisExpression(), id("el"), false), id("explode"), false),
		ast.NewFunctionExpression(nil, nil, block(ast.NewThrowStatement(lit(1.0)))),
	)
	callExplode := ast.NewCallExpression(
		ast.NewMemberExpression(ast.NewMemberExpression(ast.NewThisExpression(), id("el"), false), id("explode"), false),
		nil,
	)
	tryStmt := ast.NewTryStatement(
		block(exprStmt(assignExplode), exprStmt(callExplode)),
		ast.NewCatchClause(id("e"), block()),
		nil,
	)
	runProgram(t, i, tryStmt)

	// Both the property assignment and the method call are member
	// references, so each went through checkCallSite once.
	assert.False(t, i.checkFlag)
	assert.Len(t, i.Collection().Entries(), 2)
}

func TestCheckerReentrancyGuardSuppressesNestedCallSites(t *testing.T) {
	// spec.md §9's checker-reentrancy note: a checked call that itself makes
	// another member call must not record a second Collection entry for the
	// nested one, since checkFlag is already set for the outer call.
	global := host.NewRefGlobal()
	el := host.NewRefElement()
	global.Set("el", el)

	chk := checker.CheckerFunc(func(checker.CallSite) (checker.Status, bool) {
		return checker.Status{Type: "any"}, true
	})
	i := New(WithContext(global), WithChecker(chk))

	outerCleanup := i.checkCallSite(el, "outer", &CallInfo{Code: "outer()"})
	innerCleanup := i.checkCallSite(el, "inner", &CallInfo{Code: "inner()"})
	innerCleanup()
	outerCleanup()

	entries := i.Collection().Entries()
	require.Len(t, entries, 1)
	assert.False(t, i.checkFlag)
}
