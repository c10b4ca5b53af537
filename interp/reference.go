package interp

import (
	"github.com/Vercily/js-tracker/ast"
	"github.com/Vercily/js-tracker/value"
)

// refKind tags which of the two reference shapes spec.md §3/§9 describes a
// Reference is: an identifier reference (caller undefined) or a member
// reference (caller = the evaluated object). Design notes §9 suggests
// modeling this as a tagged union — Identifier(name) | Member(caller, key)
// — which is exactly what this enum-plus-fields pair is, rendered in Go.
type refKind int

const (
	refIdentifier refKind = iota
	refMember
)

// Reference is the uniform addressable-location shape assignment, delete,
// update, and call-target resolution all build and consume (spec.md §3).
type Reference struct {
	Kind   refKind
	Name   string      // refIdentifier
	Caller value.Value // refMember: the evaluated object
	Key    string      // refMember: the property key
}

// getRefExp builds a Reference from an lvalue-shaped expression node
// (spec.md §4.8). A MemberExpression becomes a member reference; anything
// else must be an Identifier (destructuring targets are out of scope per
// spec.md §1's Non-goals).
func (interp *Interpreter) getRefExp(node ast.Expression) Reference {
	if member, ok := node.(*ast.MemberExpression); ok {
		caller := interp.evalExpression(member.Object)
		key := interp.propertyKey(member.Property, member.Computed)
		return Reference{Kind: refMember, Caller: caller, Key: key}
	}
	id, ok := node.(*ast.Identifier)
	if !ok {
		fail("js-tracker: unsupported reference target %q", node.Type())
	}
	return Reference{Kind: refIdentifier, Name: id.Name}
}

// propertyKey implements spec.md §4.8's propertyKey rule: the evaluated key
// for a computed member, or the static name/value for a dotted one.
func (interp *Interpreter) propertyKey(key ast.Expression, computed bool) string {
	if computed {
		return value.ToString(interp.evalExpression(key))
	}
	name, ok := ast.IdentifierName(key)
	if !ok {
		fail("js-tracker: member property %q has no static name", key.Type())
	}
	return name
}

// readReference resolves a Reference to its current value — used by
// UpdateExpression and by AssignmentExpression's `<op>=` rewrite, both of
// which need "the value currently there" before computing a new one.
func (interp *Interpreter) readReference(ref Reference) value.Value {
	switch ref.Kind {
	case refIdentifier:
		if v, ok := interp.closure.Get(ref.Name); ok {
			return v
		}
		return value.Undefined
	default:
		return interp.evalMemberRead(ref.Caller, ref.Key)
	}
}

// assignReference is the `=` operator spec.md §6 says the interpreter
// itself installs: identifier references update the closure stack, member
// references assign onto the evaluated object.
func (interp *Interpreter) assignReference(ref Reference, v value.Value) value.Value {
	switch ref.Kind {
	case refIdentifier:
		interp.closure.Update(ref.Name, v)
	default:
		obj := interp.asObject(ref.Caller)
		if err := obj.Set(ref.Key, v); err != nil {
			throwValue(err.Error())
		}
	}
	return v
}

// deleteReference is the `delete` operator of spec.md §4.9: for an
// identifier reference it deletes the process-wide host binding
// (`context[callee]`); for a member reference it deletes on the evaluated
// object.
func (interp *Interpreter) deleteReference(ref Reference) bool {
	switch ref.Kind {
	case refIdentifier:
		if interp.context == nil {
			return false
		}
		return interp.context.Delete(ref.Name)
	default:
		obj := interp.asObject(ref.Caller)
		return obj.Delete(ref.Key)
	}
}

// evalMemberRead is parseMemberExp's plain-member-read branch (spec.md
// §4.9): read caller[key], then — if the result is an object with no
// recorded parent yet and it looks like a CSSStyleDeclaration or
// DOMTokenList — record caller as its parent, so a later mutating call
// through it can be attributed back to the owning element (spec.md §4.9,
// §4.11).
func (interp *Interpreter) evalMemberRead(caller value.Value, key string) value.Value {
	obj := interp.asObject(caller)
	v, ok := obj.Get(key)
	if !ok {
		return value.Undefined
	}
	if result, isObj := v.(value.Object); isObj {
		if _, hasParent := interp.parentOf(result); !hasParent {
			if isStyleOrTokenList(result) {
				interp.setParent(result, caller)
			}
		}
	}
	return v
}

// resolveCallTarget is parseMemberExp's method-call branch (spec.md §4.9):
// for an identifier reference the effective callable is looked up by name
// on the closure stack and the receiver is Undefined (the invocation
// protocol falls that back to the interpreter's context); for a member
// reference the callable is caller[key] and the receiver is caller itself.
func (interp *Interpreter) resolveCallTarget(ref Reference) (fn value.Value, receiver value.Value) {
	switch ref.Kind {
	case refIdentifier:
		v, ok := interp.closure.Get(ref.Name)
		if !ok {
			fail("js-tracker: %s is not defined", ref.Name)
		}
		return v, value.Undefined
	default:
		obj := interp.asObject(ref.Caller)
		v, ok := obj.Get(ref.Key)
		if !ok {
			v = value.Undefined
		}
		return v, ref.Caller
	}
}

func (interp *Interpreter) asObject(v value.Value) value.Object {
	obj, ok := v.(value.Object)
	if !ok {
		if value.IsUndefined(v) || value.IsNull(v) {
			fail("js-tracker: cannot read properties of %s", value.ToString(v))
		}
		fail("js-tracker: value of type %s is not an object", value.TypeOf(v))
	}
	return obj
}
