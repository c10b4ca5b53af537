package interp

import (
	"log/slog"

	"github.com/Vercily/js-tracker/ast"
	"github.com/Vercily/js-tracker/value"
)

// UserFunction is the host-language callable a FunctionExpression or
// FunctionDeclaration evaluates to (spec.md §3's FunctionAgentData, §4.10).
// It is immutable once built: body, params, hoistings, and the captured
// closureStack snapshot never change after construction, only the live
// Interpreter's environment is swapped in and out around a call.
type UserFunction struct {
	interp       *Interpreter
	name         string
	params       []string
	body         *ast.BlockStatement
	hoistings    []string
	closureStack *ClosureStack
	scriptURL    string

	// props backs arbitrary properties a script attaches to the function
	// value itself (functions are objects too, e.g. memoization caches
	// hung off `fn.cache = {}`) — unused until first Set.
	props *value.PlainObject
}

// newUserFunction builds a FunctionAgentData-shaped callable. closureStack
// is the already-decided capture (plain clone for a FunctionDeclaration or
// an anonymous/unnamed FunctionExpression, self-binding clone for a named
// FunctionExpression — see evalFunctionExpression).
func (interp *Interpreter) newUserFunction(name string, params []*ast.Identifier, body *ast.BlockStatement, closureStack *ClosureStack) *UserFunction {
	paramNames := make([]string, len(params))
	for i, p := range params {
		paramNames[i] = p.Name
	}
	return &UserFunction{
		interp:       interp,
		name:         name,
		params:       paramNames,
		body:         body,
		hoistings:    collectHoistNames(body.Body),
		closureStack: closureStack,
		scriptURL:    interp.scriptURL,
	}
}

// evalFunctionDeclaration binds n.Id's name to a freshly built UserFunction
// in the current frame (spec.md §4.4's "a statement of type
// FunctionDeclaration is evaluated immediately, binding name ← function
// value"). Declarations don't get the named-function-expression self-
// binding overlay: the name is already reachable through the enclosing
// frame the declaration hoisted it into.
func (interp *Interpreter) evalFunctionDeclaration(n *ast.FunctionDeclaration) value.Value {
	fn := interp.newUserFunction(n.Id.Name, n.Params, n.Body, interp.closure.Clone())
	interp.closure.Define(n.Id.Name, fn)
	slog.Debug("[evalFunctionDeclaration] registered", "name", n.Id.Name)
	return value.Undefined
}

// evalFunctionExpression builds a UserFunction from a FunctionExpression
// node (spec.md §4.10). A named function expression gets an extra, caller-
// invisible frame on its own captured snapshot binding its own name to
// itself, so the body can recurse by name even though the enclosing scope
// never sees that binding (spec.md §3, §9).
func (interp *Interpreter) evalFunctionExpression(n *ast.FunctionExpression) value.Value {
	name := ""
	if n.Id != nil {
		name = n.Id.Name
	}
	fn := interp.newUserFunction(name, n.Params, n.Body, interp.closure.Clone())
	if n.Id != nil {
		fn.closureStack = interp.closure.WithSelfBinding(n.Id.Name, fn)
	}
	return fn
}

func (f *UserFunction) ensureProps() *value.PlainObject {
	if f.props == nil {
		f.props = value.NewPlainObject()
	}
	return f.props
}

func (f *UserFunction) Get(key string) (value.Value, bool) {
	switch key {
	case "length":
		return float64(len(f.params)), true
	case "name":
		return f.name, true
	}
	if f.props != nil {
		return f.props.Get(key)
	}
	return nil, false
}

func (f *UserFunction) Set(key string, v value.Value) error {
	return f.ensureProps().Set(key, v)
}

func (f *UserFunction) Delete(key string) bool {
	if f.props == nil {
		return false
	}
	return f.props.Delete(key)
}

func (f *UserFunction) Has(key string) bool {
	if key == "length" || key == "name" {
		return true
	}
	if f.props == nil {
		return false
	}
	return f.props.Has(key)
}

func (f *UserFunction) OwnKeys() []string {
	if f.props == nil {
		return nil
	}
	return f.props.OwnKeys()
}

// Arity mirrors the observable `.length` property a real JS function
// carries: the declared parameter count (spec.md §4.10).
func (f *UserFunction) Arity() int { return len(f.params) }

// Call runs the invocation protocol of spec.md §4.10 with this as the
// receiver.
func (f *UserFunction) Call(this value.Value, args []value.Value) (value.Value, error) {
	result, _, err := f.invoke(this, args)
	return result, err
}

// Construct runs the same invocation protocol against a freshly allocated
// plain object receiver, returning that object unless the body itself
// returned an object (spec.md §4.10's NewExpression collaborator, §6).
func (f *UserFunction) Construct(args []value.Value) (value.Value, error) {
	obj := value.NewPlainObject()
	obj.SetConstructor(f)
	result, returned, err := f.invoke(obj, args)
	if err != nil {
		return nil, err
	}
	if resObj, ok := result.(value.Object); ok && returned {
		return resObj, nil
	}
	return obj, nil
}

// invoke is spec.md §4.10's numbered invocation protocol:
//  1. capture {scriptUrl, closureStack} as envGlobal
//  2. install the function's captured environment as the live one
//  3. push a fresh frame
//  4. install hoistings into that frame
//  5. bind this/arguments
//  6. bind formal parameters
//  7. evaluate the body, restoring envGlobal on every exit path (including
//     a propagating exception) — the scoped-resource discipline spec.md §5
//     and §7 both require
//  8. clear RETURN and return the body's produced value, plus whether it
//     came from a return statement
func (f *UserFunction) invoke(this value.Value, args []value.Value) (result value.Value, returned bool, err error) {
	interp := f.interp

	savedScriptURL := interp.scriptURL
	savedClosure := interp.closure

	interp.scriptURL = f.scriptURL
	// The live stack for this call is an independent copy of the captured
	// snapshot's frame list — pushing/popping it must never mutate
	// f.closureStack itself, or a second, concurrent-in-spirit call to the
	// same function would see frames left over from the first.
	interp.closure = f.closureStack.Clone()

	defer func() {
		interp.scriptURL = savedScriptURL
		interp.closure = savedClosure
		interp.flow.clearReturn()
		if r := recover(); r != nil {
			if exc, ok := r.(*Exception); ok {
				err = exc
				return
			}
			panic(r)
		}
	}()

	interp.closure.Push()
	for _, name := range f.hoistings {
		interp.closure.Define(name, value.Undefined)
	}

	receiver := this
	if value.IsUndefined(receiver) || value.IsNull(receiver) {
		receiver = interp.context
	}
	interp.closure.Define("this", receiver)
	interp.closure.Define("arguments", value.NewArray(append([]value.Value(nil), args...)))

	for i, name := range f.params {
		if i < len(args) {
			interp.closure.Define(name, args[i])
		} else {
			interp.closure.Define(name, value.Undefined)
		}
	}

	result = interp.runStatementList(f.body.Body)
	if interp.flow.IsReturn() {
		result = interp.returnValue
		returned = true
	}
	return result, returned, nil
}
