// Package ops defines the shape of the four pluggable operator tables the
// interpreter dispatches through (spec.md §6) and supplies a default,
// ES5-era implementation of each. Binary/unary/update operators are pure
// functions of already-evaluated values; logical operators instead receive
// the two unevaluated subexpressions plus an Evaluator callback, because
// `&&`/`||` must short-circuit (spec.md §4.8) and only the interpreter can
// actually evaluate a subexpression.
//
// `=` assignment and `delete` are not part of these tables — spec.md §6
// says both are "installed by the interpreter" because they need access to
// the closure stack / reference layer that a pure operator function
// wouldn't have.
package ops

import (
	"fmt"
	"math"

	"github.com/Vercily/js-tracker/ast"
	"github.com/Vercily/js-tracker/value"
)

// Evaluator evaluates an expression node to a value, recursing back into
// the interpreter that owns the operator table.
type Evaluator func(ast.Expression) (value.Value, error)

type (
	BinaryFunc  func(left, right value.Value) (value.Value, error)
	UnaryFunc   func(arg value.Value) (value.Value, error)
	UpdateFunc  func(v value.Value) (value.Value, error)
	LogicalFunc func(left, right ast.Expression, eval Evaluator) (value.Value, error)
)

// Tables is the full set of operator tables the interpreter consults.
type Tables struct {
	Binary  map[string]BinaryFunc
	Unary   map[string]UnaryFunc
	Update  map[string]UpdateFunc
	Logical map[string]LogicalFunc
}

// Default builds the standard ES5 arithmetic/comparison/logical operator
// tables. Callers with a different host numeric model can substitute their
// own Tables via interp.WithOperators.
func Default() *Tables {
	return &Tables{
		Binary:  defaultBinary(),
		Unary:   defaultUnary(),
		Update:  defaultUpdate(),
		Logical: defaultLogical(),
	}
}

func defaultBinary() map[string]BinaryFunc {
	num := func(f func(a, b float64) float64) BinaryFunc {
		return func(l, r value.Value) (value.Value, error) {
			return f(value.ToNumber(l), value.ToNumber(r)), nil
		}
	}
	cmp := func(f func(a, b float64) bool) BinaryFunc {
		return func(l, r value.Value) (value.Value, error) {
			return f(value.ToNumber(l), value.ToNumber(r)), nil
		}
	}
	return map[string]BinaryFunc{
		"+": func(l, r value.Value) (value.Value, error) {
			_, lIsStr := l.(string)
			_, rIsStr := r.(string)
			if lIsStr || rIsStr {
				return value.ToString(l) + value.ToString(r), nil
			}
			return value.ToNumber(l) + value.ToNumber(r), nil
		},
		"-": num(func(a, b float64) float64 { return a - b }),
		"*": num(func(a, b float64) float64 { return a * b }),
		"/": num(func(a, b float64) float64 { return a / b }),
		"%": num(math.Mod),
		"<": cmp(func(a, b float64) bool { return a < b }),
		">": cmp(func(a, b float64) bool { return a > b }),
		"<=": cmp(func(a, b float64) bool { return a <= b }),
		">=": cmp(func(a, b float64) bool { return a >= b }),
		"==": func(l, r value.Value) (value.Value, error) { return looseEquals(l, r), nil },
		"!=": func(l, r value.Value) (value.Value, error) { return !looseEquals(l, r), nil },
		"===": func(l, r value.Value) (value.Value, error) { return value.StrictEquals(l, r), nil },
		"!==": func(l, r value.Value) (value.Value, error) { return !value.StrictEquals(l, r), nil },
		"instanceof": func(l, r value.Value) (value.Value, error) {
			if _, ok := r.(value.Callable); !ok {
				return nil, fmt.Errorf("right-hand side of 'instanceof' is not callable")
			}
			// The left side matches only when it remembers r as the
			// constructor that produced it. No prototype chain here: this
			// default table tracks direct construction only, so objects
			// with no recorded constructor (literals, host objects) never
			// match.
			c, ok := l.(value.Constructed)
			if !ok {
				return false, nil
			}
			ctor, ok := c.Constructor()
			return ok && ctor == r, nil
		},
		"in": func(l, r value.Value) (value.Value, error) {
			obj, ok := r.(value.Object)
			if !ok {
				return nil, fmt.Errorf("cannot use 'in' operator on a non-object")
			}
			return obj.Has(value.ToString(l)), nil
		},
	}
}

func looseEquals(l, r value.Value) bool {
	if value.StrictEquals(l, r) {
		return true
	}
	if value.IsUndefined(l) && value.IsNull(r) {
		return true
	}
	if value.IsNull(l) && value.IsUndefined(r) {
		return true
	}
	_, lIsObj := l.(value.Object)
	_, rIsObj := r.(value.Object)
	if lIsObj || rIsObj {
		return false
	}
	return value.ToNumber(l) == value.ToNumber(r)
}

func defaultUnary() map[string]UnaryFunc {
	return map[string]UnaryFunc{
		"!": func(v value.Value) (value.Value, error) { return !value.ToBoolean(v), nil },
		"-": func(v value.Value) (value.Value, error) { return -value.ToNumber(v), nil },
		"+": func(v value.Value) (value.Value, error) { return value.ToNumber(v), nil },
		"~": func(v value.Value) (value.Value, error) { return float64(^int64(value.ToNumber(v))), nil },
		"typeof": func(v value.Value) (value.Value, error) { return value.TypeOf(v), nil },
		"void": func(v value.Value) (value.Value, error) { return value.Undefined, nil },
	}
}

func defaultUpdate() map[string]UpdateFunc {
	return map[string]UpdateFunc{
		"++": func(v value.Value) (value.Value, error) { return value.ToNumber(v) + 1, nil },
		"--": func(v value.Value) (value.Value, error) { return value.ToNumber(v) - 1, nil },
	}
}

func defaultLogical() map[string]LogicalFunc {
	return map[string]LogicalFunc{
		"&&": func(l, r ast.Expression, eval Evaluator) (value.Value, error) {
			left, err := eval(l)
			if err != nil {
				return nil, err
			}
			if !value.ToBoolean(left) {
				return left, nil
			}
			return eval(r)
		},
		"||": func(l, r ast.Expression, eval Evaluator) (value.Value, error) {
			left, err := eval(l)
			if err != nil {
				return nil, err
			}
			if value.ToBoolean(left) {
				return left, nil
			}
			return eval(r)
		},
	}
}
