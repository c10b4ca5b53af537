package interp

import "github.com/Vercily/js-tracker/value"

// applyBinary and its siblings below are the glue between the evaluator
// (which signals failure by panicking an *Exception, spec.md §4.7) and
// ops.Tables (whose pure functions signal failure by returning a Go error,
// spec.md §6) — an operator error becomes a thrown JS value instead of a
// Go-level panic escaping to a non-TryStatement caller; an operator missing
// from its table is a StructuralError.

func (interp *Interpreter) applyBinary(op string, l, r value.Value) value.Value {
	fn, ok := interp.operators.Binary[op]
	if !ok {
		fail("js-tracker: unknown binary operator %q", op)
	}
	result, err := fn(l, r)
	if err != nil {
		throwValue(err.Error())
	}
	return result
}

func (interp *Interpreter) applyUnary(op string, v value.Value) value.Value {
	fn, ok := interp.operators.Unary[op]
	if !ok {
		fail("js-tracker: unknown unary operator %q", op)
	}
	result, err := fn(v)
	if err != nil {
		throwValue(err.Error())
	}
	return result
}

func (interp *Interpreter) applyUpdate(op string, v value.Value) value.Value {
	fn, ok := interp.operators.Update[op]
	if !ok {
		fail("js-tracker: unknown update operator %q", op)
	}
	result, err := fn(v)
	if err != nil {
		throwValue(err.Error())
	}
	return result
}
