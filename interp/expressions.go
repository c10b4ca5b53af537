package interp

import (
	"github.com/Vercily/js-tracker/ast"
	"github.com/Vercily/js-tracker/gen"
	"github.com/Vercily/js-tracker/value"
)

// evalExpression is the expression-kind half of the dispatcher's type
// switch (spec.md §4.1, §4.2, §4.8–§4.10).
func (interp *Interpreter) evalExpression(n ast.Expression) value.Value {
	switch e := n.(type) {
	case *ast.Literal:
		return interp.evalLiteral(e)
	case *ast.Identifier:
		return interp.evalIdentifier(e)
	case *ast.ThisExpression:
		return interp.evalThisExpression()
	case *ast.ArrayExpression:
		return interp.evalArrayExpression(e)
	case *ast.ObjectExpression:
		return interp.evalObjectExpression(e)
	case *ast.FunctionExpression:
		return interp.evalFunctionExpression(e)
	case *ast.UnaryExpression:
		return interp.evalUnaryExpression(e)
	case *ast.UpdateExpression:
		return interp.evalUpdateExpression(e)
	case *ast.BinaryExpression:
		return interp.evalBinaryExpression(e)
	case *ast.AssignmentExpression:
		return interp.evalAssignmentExpression(e)
	case *ast.LogicalExpression:
		return interp.evalLogicalExpression(e)
	case *ast.MemberExpression:
		return interp.evalMemberExpression(e)
	case *ast.ConditionalExpression:
		return interp.evalConditionalExpression(e)
	case *ast.CallExpression:
		return interp.evalCallExpression(e)
	case *ast.NewExpression:
		return interp.evalNewExpression(e)
	case *ast.SequenceExpression:
		return interp.evalSequenceExpression(e)
	default:
		fail("js-tracker: unhandled expression kind %q", n.Type())
		return nil
	}
}

// evalLiteral is spec.md §4.2's Literal evaluator: a regex descriptor
// constructs a fresh value.RegExp; a nil Value means the JS `null` literal
// (ast.Literal.Value is nil/bool/float64/string, mutually exclusive with
// Regex); anything else is returned as-is.
func (interp *Interpreter) evalLiteral(n *ast.Literal) value.Value {
	if n.Regex != nil {
		re, err := value.NewRegExp(n.Regex.Pattern, n.Regex.Flags)
		if err != nil {
			throwValue(err.Error())
		}
		return re
	}
	if n.Value == nil {
		return value.Null
	}
	return n.Value
}

// evalIdentifier is spec.md §4.2's Identifier evaluator: `null`/`undefined`
// are encoded as identifiers by some ESTree producers rather than keywords,
// so they're special-cased before falling back to a closure-stack lookup.
func (interp *Interpreter) evalIdentifier(n *ast.Identifier) value.Value {
	switch n.Name {
	case "null":
		return value.Null
	case "undefined":
		return value.Undefined
	}
	if v, ok := interp.closure.Get(n.Name); ok {
		return v
	}
	fail("js-tracker: %s is not defined", n.Name)
	return nil
}

func (interp *Interpreter) evalThisExpression() value.Value {
	if v, ok := interp.closure.Get("this"); ok {
		return v
	}
	return value.Undefined
}

func (interp *Interpreter) evalArrayExpression(n *ast.ArrayExpression) value.Value {
	elements := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		if el == nil {
			continue // an elision: ArrayExpression's holes (SPEC_FULL.md §6)
		}
		elements[i] = interp.evalExpression(el)
	}
	return value.NewArray(elements)
}

// evalObjectExpression builds a plain object, or — if any property carries
// a "get"/"set" Kind — an accessorObject backing those as real getter/setter
// callables (SPEC_FULL.md §6's extension of spec.md §4.2's object-literal
// handling, using the ESTree Property.Kind field the distilled spec left
// unused).
func (interp *Interpreter) evalObjectExpression(n *ast.ObjectExpression) value.Value {
	needsAccessors := false
	for _, p := range n.Properties {
		if p.Kind == "get" || p.Kind == "set" {
			needsAccessors = true
			break
		}
	}
	if !needsAccessors {
		obj := value.NewPlainObject()
		for _, p := range n.Properties {
			key := interp.propertyKey(p.Key, p.Computed)
			obj.Set(key, interp.evalExpression(p.Value))
		}
		return obj
	}

	obj := newAccessorObject()
	for _, p := range n.Properties {
		key := interp.propertyKey(p.Key, p.Computed)
		switch p.Kind {
		case "get":
			if fn, ok := interp.evalExpression(p.Value).(value.Callable); ok {
				obj.defineGetter(key, fn)
			}
		case "set":
			if fn, ok := interp.evalExpression(p.Value).(value.Callable); ok {
				obj.defineSetter(key, fn)
			}
		default:
			obj.plain.Set(key, interp.evalExpression(p.Value))
		}
	}
	return obj
}

func (interp *Interpreter) evalUnaryExpression(n *ast.UnaryExpression) value.Value {
	if n.Operator == "delete" {
		return interp.deleteReference(interp.getRefExp(n.Argument))
	}
	return interp.applyUnary(n.Operator, interp.evalExpression(n.Argument))
}

// evalUpdateExpression is spec.md §4.8's UpdateExpression evaluator: read
// the operand's current value, apply the update operator, assign the
// result back through the same reference, and return the new value for a
// prefix operator or the original value for a postfix one.
func (interp *Interpreter) evalUpdateExpression(n *ast.UpdateExpression) value.Value {
	ref := interp.getRefExp(n.Argument)
	current := interp.readReference(ref)
	updated := interp.applyUpdate(n.Operator, current)
	interp.assignReference(ref, updated)
	if n.Prefix {
		return updated
	}
	return current
}

func (interp *Interpreter) evalBinaryExpression(n *ast.BinaryExpression) value.Value {
	left := interp.evalExpression(n.Left)
	right := interp.evalExpression(n.Right)
	return interp.applyBinary(n.Operator, left, right)
}

// evalAssignmentExpression is spec.md §4.8's AssignmentExpression evaluator.
// A compound operator (`+=`, ...) is rewritten into the corresponding binary
// op applied to the reference's current value and the right-hand side; a
// plain `=` short-circuits straight to the right-hand value. A member
// reference's assignment is a checker-hook call site too (the `style.color
// = 'red'` scenario of spec.md §8 is exactly this path, not a CallExpression).
func (interp *Interpreter) evalAssignmentExpression(n *ast.AssignmentExpression) value.Value {
	ref := interp.getRefExp(n.Left)

	var newValue value.Value
	if n.Operator == "=" {
		newValue = interp.evalExpression(n.Right)
	} else {
		op := n.Operator[:len(n.Operator)-1] // strip the trailing "="
		current := interp.readReference(ref)
		right := interp.evalExpression(n.Right)
		newValue = interp.applyBinary(op, current, right)
	}

	if ref.Kind == refMember {
		info := &CallInfo{Code: gen.Expression(n)}
		cleanup := interp.checkCallSite(ref.Caller, ref.Key, info)
		defer cleanup()
	}
	return interp.assignReference(ref, newValue)
}

func (interp *Interpreter) evalLogicalExpression(n *ast.LogicalExpression) value.Value {
	fn, ok := interp.operators.Logical[n.Operator]
	if !ok {
		fail("js-tracker: unknown logical operator %q", n.Operator)
	}
	result, err := fn(n.Left, n.Right, func(e ast.Expression) (value.Value, error) {
		return interp.evalExpression(e), nil
	})
	if err != nil {
		throwValue(err.Error())
	}
	return result
}

func (interp *Interpreter) evalMemberExpression(n *ast.MemberExpression) value.Value {
	caller := interp.evalExpression(n.Object)
	key := interp.propertyKey(n.Property, n.Computed)
	return interp.evalMemberRead(caller, key)
}

func (interp *Interpreter) evalConditionalExpression(n *ast.ConditionalExpression) value.Value {
	if value.ToBoolean(interp.evalExpression(n.Test)) {
		return interp.evalExpression(n.Consequent)
	}
	return interp.evalExpression(n.Alternate)
}

// evalCallExpression is spec.md §4.10's CallExpression evaluator: build a
// reference to the callee, resolve it to a callable + receiver, and — for a
// member reference only, i.e. a method call, not a bare function call —
// consult the checker hook around the invocation (spec.md §4.11). A callee
// that is neither a member nor an identifier (an immediately invoked
// function expression, say) is evaluated directly and called with no
// receiver.
func (interp *Interpreter) evalCallExpression(n *ast.CallExpression) value.Value {
	var ref Reference
	var fn, receiver value.Value
	switch n.Callee.(type) {
	case *ast.MemberExpression, *ast.Identifier:
		ref = interp.getRefExp(n.Callee)
		fn, receiver = interp.resolveCallTarget(ref)
	default:
		ref = Reference{Kind: refIdentifier}
		fn, receiver = interp.evalExpression(n.Callee), value.Undefined
	}
	args := interp.evalArguments(n.Arguments)

	callable, ok := fn.(value.Callable)
	if !ok {
		fail("js-tracker: %s is not a function", gen.Expression(n.Callee))
	}

	if ref.Kind == refMember {
		info := &CallInfo{Code: gen.Expression(n)}
		cleanup := interp.checkCallSite(ref.Caller, ref.Key, info)
		defer cleanup()
	}

	result, err := callable.Call(receiver, args)
	if err != nil {
		rethrow(err)
	}
	return result
}

func (interp *Interpreter) evalNewExpression(n *ast.NewExpression) value.Value {
	calleeVal := interp.evalExpression(n.Callee)
	callable, ok := calleeVal.(value.Callable)
	if !ok {
		fail("js-tracker: %s is not a constructor", gen.Expression(n.Callee))
	}
	args := interp.evalArguments(n.Arguments)
	result, err := callable.Construct(args)
	if err != nil {
		rethrow(err)
	}
	return result
}

func (interp *Interpreter) evalSequenceExpression(n *ast.SequenceExpression) value.Value {
	var result value.Value = value.Undefined
	for _, e := range n.Expressions {
		result = interp.evalExpression(e)
	}
	return result
}

func (interp *Interpreter) evalArguments(args []ast.Expression) []value.Value {
	out := make([]value.Value, len(args))
	for i, a := range args {
		out[i] = interp.evalExpression(a)
	}
	return out
}

// rethrow re-raises an error returned from a Callable's Call/Construct
// (itself produced by UserFunction.invoke recovering a panic) as the same
// kind of panic it originally was, so TryStatement's type assertion on
// *Exception keeps working across the Call-as-error/panic boundary.
func rethrow(err error) {
	if exc, ok := err.(*Exception); ok {
		panic(exc)
	}
	fail("js-tracker: %s", err.Error())
}
