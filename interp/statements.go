package interp

import (
	"github.com/Vercily/js-tracker/ast"
	"github.com/Vercily/js-tracker/value"
)

// evalProgram is spec.md §4.3's Program evaluator: run the hoisting
// pre-pass over the whole body, then evaluate the statements.
func (interp *Interpreter) evalProgram(p *ast.Program) value.Value {
	interp.hoist(p.Body)
	return interp.runStatementList(p.Body)
}

// runStatementList is the statement loop of spec.md §4.3: FunctionDeclaration
// statements directly in stmts are executed first (binding their name to a
// real function value, so a forward reference like `foo(); function foo(){}`
// resolves), then the remaining statements run in source order, stopping as
// soon as FlowState has anything pending. It backs Program, BlockStatement,
// and — since spec.md §4.5 describes a matched switch's case tail as "one
// statement sequence" — a SwitchStatement's matched case tail too.
func (interp *Interpreter) runStatementList(stmts []ast.Statement) value.Value {
	for _, s := range stmts {
		if fd, ok := s.(*ast.FunctionDeclaration); ok {
			interp.evalFunctionDeclaration(fd)
		}
	}
	var result value.Value = value.Undefined
	for _, s := range stmts {
		if _, ok := s.(*ast.FunctionDeclaration); ok {
			continue
		}
		result = interp.evalStatement(s, evalOptions{})
		if interp.flow.Any() {
			return result
		}
	}
	return result
}

// evalStatement is the statement-kind half of the dispatcher's type switch
// (spec.md §4.1). opts carries down the label of an enclosing LabeledStatement,
// which only the loop kinds (4.6) actually consult.
func (interp *Interpreter) evalStatement(s ast.Statement, opts evalOptions) value.Value {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		return interp.evalExpression(n.Expression)
	case *ast.EmptyStatement:
		return value.Undefined
	case *ast.BlockStatement:
		return interp.runStatementList(n.Body)
	case *ast.VariableDeclaration:
		return interp.evalVariableDeclaration(n)
	case *ast.FunctionDeclaration:
		return interp.evalFunctionDeclaration(n)
	case *ast.ReturnStatement:
		return interp.evalReturnStatement(n)
	case *ast.BreakStatement:
		return interp.evalBreakStatement(n)
	case *ast.ContinueStatement:
		return interp.evalContinueStatement(n)
	case *ast.LabeledStatement:
		return interp.evalLabeledStatement(n)
	case *ast.IfStatement:
		return interp.evalIfStatement(n)
	case *ast.SwitchStatement:
		return interp.evalSwitchStatement(n)
	case *ast.ThrowStatement:
		return interp.evalThrowStatement(n)
	case *ast.TryStatement:
		return interp.evalTryStatement(n)
	case *ast.WhileStatement:
		return interp.evalWhileStatement(n, opts.label)
	case *ast.DoWhileStatement:
		return interp.evalDoWhileStatement(n, opts.label)
	case *ast.ForStatement:
		return interp.evalForStatement(n, opts.label)
	case *ast.ForInStatement:
		return interp.evalForInStatement(n, opts.label)
	default:
		fail("js-tracker: unhandled statement kind %q", s.Type())
		return nil
	}
}

// evalVariableDeclaration is spec.md §4.8's VariableDeclaration evaluator:
// a hoisted (kind "var", no initializer) declarator is skipped — the name
// already exists as Undefined from the hoisting pre-pass — everything else
// evaluates its initializer and binds in source order.
func (interp *Interpreter) evalVariableDeclaration(n *ast.VariableDeclaration) value.Value {
	var result value.Value = value.Undefined
	for _, d := range n.Declarations {
		if n.Kind == "var" && d.Init == nil {
			continue
		}
		v := interp.evalExpression(d.Init)
		interp.closure.Define(d.Id.Name, v)
		result = v
	}
	return result
}

// evalReturnStatement evaluates the argument before setting RETURN (spec.md
// §4.5), because the argument may itself be a call whose own return resets
// the flag before this one gets set.
func (interp *Interpreter) evalReturnStatement(n *ast.ReturnStatement) value.Value {
	var v value.Value = value.Undefined
	if n.Argument != nil {
		v = interp.evalExpression(n.Argument)
	}
	interp.returnValue = v
	interp.flow.setReturn()
	return v
}

func (interp *Interpreter) evalBreakStatement(n *ast.BreakStatement) value.Value {
	label := ""
	if n.Label != nil {
		label = n.Label.Name
	}
	interp.flow.setBreak(label)
	return value.Undefined
}

func (interp *Interpreter) evalContinueStatement(n *ast.ContinueStatement) value.Value {
	label := ""
	if n.Label != nil {
		label = n.Label.Name
	}
	interp.flow.setContinue(label)
	return value.Undefined
}

// evalLabeledStatement evaluates the body through the dispatcher with the
// label attached in options; the dispatcher's post-hook (spec.md §4.1)
// consumes a break targeted at exactly this label once evaluate returns.
func (interp *Interpreter) evalLabeledStatement(n *ast.LabeledStatement) value.Value {
	return interp.evaluate(n.Body, evalOptions{label: n.Label.Name})
}

func (interp *Interpreter) evalIfStatement(n *ast.IfStatement) value.Value {
	if value.ToBoolean(interp.evalExpression(n.Test)) {
		return interp.evaluate(n.Consequent, evalOptions{})
	}
	if n.Alternate != nil {
		return interp.evaluate(n.Alternate, evalOptions{})
	}
	return value.Undefined
}

// evalSwitchStatement is spec.md §4.5's SwitchStatement evaluator. Per the
// spec text, the match scan itself treats a default case as satisfying the
// match test the moment it's reached in source order — a default earlier in
// the case list than a would-be matching case wins, matching this repo's
// literal reading of §4.5 rather than real engines' "try non-default cases
// first, fall back to default" rule.
func (interp *Interpreter) evalSwitchStatement(n *ast.SwitchStatement) value.Value {
	disc := interp.evalExpression(n.Discriminant)
	matched := -1
	for i, c := range n.Cases {
		if c.Test == nil || value.StrictEquals(disc, interp.evalExpression(c.Test)) {
			matched = i
			break
		}
	}
	if matched == -1 {
		return value.Undefined
	}
	var tail []ast.Statement
	for _, c := range n.Cases[matched:] {
		tail = append(tail, c.Consequent...)
	}
	result := interp.runStatementList(tail)
	interp.flow.clearBreak()
	return result
}

func (interp *Interpreter) evalThrowStatement(n *ast.ThrowStatement) value.Value {
	throwValue(interp.evalExpression(n.Argument))
	return value.Undefined
}

// evalTryStatement is spec.md §4.7's TryStatement protocol. Each phase
// (block/handler/finalizer) runs against a momentarily cleared FlowState so
// a signal already pending from an enclosing loop can't short-circuit the
// phase before it even starts (runStatementList stops the instant
// FlowState.Any() is true) — the phase's own completion, if any, replaces
// whatever was pending; otherwise the prior signal is restored once the
// phase finishes normally.
func (interp *Interpreter) evalTryStatement(n *ast.TryStatement) value.Value {
	var hasValue bool
	var retVal value.Value
	var hasErr bool
	var caught value.Value

	runPhase := func(body []ast.Statement) {
		savedState, savedLabel := interp.flow.state, interp.flow.label
		interp.flow.state, interp.flow.label = 0, ""
		interp.runStatementList(body)
		if interp.flow.IsReturn() {
			interp.flow.clearReturn()
			hasValue = true
			retVal = interp.returnValue
		}
		if !interp.flow.Any() {
			interp.flow.state, interp.flow.label = savedState, savedLabel
		}
	}

	recoverInto := func(run func()) {
		defer func() {
			if r := recover(); r != nil {
				if exc, ok := r.(*Exception); ok {
					hasErr = true
					caught = exc.Value
					return
				}
				panic(r)
			}
		}()
		run()
	}

	recoverInto(func() { runPhase(n.Block.Body) })

	if hasErr && n.Handler != nil {
		hasErr = false
		interp.closure.Push()
		recoverInto(func() {
			defer interp.closure.Pop()
			if n.Handler.Param != nil {
				interp.closure.Define(n.Handler.Param.Name, caught)
			}
			runPhase(n.Handler.Body.Body)
		})
	}

	if n.Finalizer != nil {
		hasValueBefore, retValBefore := hasValue, retVal
		hasValue = false
		recoverInto(func() { runPhase(n.Finalizer.Body) })
		if !hasValue && !hasErr {
			hasValue, retVal = hasValueBefore, retValBefore
		}
	}

	if hasValue {
		interp.returnValue = retVal
		interp.flow.setReturn()
		return retVal
	}
	if hasErr {
		throwValue(caught)
	}
	return value.Undefined
}

// loopShouldBreak is the shared loop exit-check of spec.md §4.6.
func (interp *Interpreter) loopShouldBreak(label string) bool {
	if interp.flow.IsReturn() {
		return true
	}
	if interp.flow.IsBreak() {
		if interp.flow.Label() == "" || interp.flow.Label() == label {
			interp.flow.clearBreak()
		}
		return true
	}
	if interp.flow.IsContinue() {
		if interp.flow.Label() == "" || interp.flow.Label() == label {
			interp.flow.clearContinue()
			return false
		}
		return true
	}
	return false
}

func (interp *Interpreter) evalWhileStatement(n *ast.WhileStatement, label string) value.Value {
	var result value.Value = value.Undefined
	for value.ToBoolean(interp.evalExpression(n.Test)) {
		result = interp.evaluate(n.Body, evalOptions{})
		if interp.loopShouldBreak(label) {
			break
		}
	}
	return result
}

// evalDoWhileStatement evaluates the body once, consults loopShouldBreak,
// and otherwise continues with the same test-then-body loop WhileStatement
// runs (spec.md §4.6's "delegate to the WhileStatement protocol"), just
// inlined so the do-block's own result survives a test that's false on
// the first check.
func (interp *Interpreter) evalDoWhileStatement(n *ast.DoWhileStatement, label string) value.Value {
	result := interp.evaluate(n.Body, evalOptions{})
	if interp.loopShouldBreak(label) {
		return result
	}
	for value.ToBoolean(interp.evalExpression(n.Test)) {
		result = interp.evaluate(n.Body, evalOptions{})
		if interp.loopShouldBreak(label) {
			break
		}
	}
	return result
}

func (interp *Interpreter) evalForStatement(n *ast.ForStatement, label string) value.Value {
	if n.Init != nil {
		switch init := n.Init.(type) {
		case *ast.VariableDeclaration:
			interp.evalVariableDeclaration(init)
		case ast.Expression:
			interp.evalExpression(init)
		}
	}
	var result value.Value = value.Undefined
	for n.Test == nil || value.ToBoolean(interp.evalExpression(n.Test)) {
		result = interp.evaluate(n.Body, evalOptions{})
		if interp.loopShouldBreak(label) {
			break
		}
		if n.Update != nil {
			interp.evalExpression(n.Update)
		}
	}
	return result
}

// evalForInStatement is spec.md §4.6's ForInStatement evaluator: the
// iterator variable name comes from either a single `var` declarator or a
// bare identifier at Left, and the key order walked is whatever the host
// object's OwnKeys exposes (spec.md §9: no canonical for-in order defined).
func (interp *Interpreter) evalForInStatement(n *ast.ForInStatement, label string) value.Value {
	rhs := interp.evalExpression(n.Right)
	var varName string
	switch left := n.Left.(type) {
	case *ast.VariableDeclaration:
		varName = left.Declarations[0].Id.Name
	case *ast.Identifier:
		varName = left.Name
	default:
		fail("js-tracker: unsupported for-in left-hand side %q", n.Left.Type())
	}
	obj, ok := rhs.(value.Object)
	if !ok {
		return value.Undefined
	}
	var result value.Value = value.Undefined
	for _, key := range obj.OwnKeys() {
		interp.closure.Update(varName, key)
		result = interp.evaluate(n.Body, evalOptions{})
		if interp.loopShouldBreak(label) {
			break
		}
	}
	return result
}
