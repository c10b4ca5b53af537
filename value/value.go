// Package value defines the runtime value model js-tracker's interpreter
// evaluates expressions into. It generalizes go/simplejs's single tagged
// JSValue struct into an empty interface over a small closed set of
// primitive Go types plus an Object interface, so that host-supplied
// objects (a browser-like CSSStyleDeclaration, DOMTokenList, Attr, ...) can
// participate as first-class values without the interpreter needing to know
// their concrete Go type.
package value

import (
	"fmt"
	"math"
	"strconv"
)

// Value is any of: Undefined, Null, bool, float64, string, or an Object.
type Value = interface{}

type undefinedType struct{}

func (undefinedType) String() string { return "undefined" }

type nullType struct{}

func (nullType) String() string { return "null" }

// Undefined and Null are the two JS "no value" singletons. Script-visible
// values use them rather than Go's nil; a Go nil that does turn up (an array
// hole, for one) is treated as Undefined by IsUndefined, ToString and TypeOf.
var (
	Undefined = undefinedType{}
	Null      = nullType{}
)

// IsUndefined reports whether v is the Undefined singleton (or Go's nil,
// produced by a few construction paths that didn't round through an object
// initializer).
func IsUndefined(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(undefinedType)
	return ok
}

// IsNull reports whether v is the Null singleton.
func IsNull(v Value) bool {
	_, ok := v.(nullType)
	return ok
}

// Object is the contract every non-primitive Value satisfies: a named-
// property bag. Host objects (CSSStyleDeclaration, DOMTokenList, Attr, a
// jQuery-like wrapper) implement this directly; plain script objects and
// arrays use the PlainObject/Array implementations in this package.
type Object interface {
	Get(key string) (Value, bool)
	Set(key string, v Value) error
	Delete(key string) bool
	Has(key string) bool
	// OwnKeys returns this object's own enumerable keys in the order the
	// host chooses to expose them; for-in walks exactly this order and
	// defines no canonical ordering of its own (spec.md §4.6, §9).
	OwnKeys() []string
}

// Callable is an Object that can also be invoked, i.e. a function value.
// UserFunction (interp package) is the interpreter's own implementation;
// a host may also hand the interpreter native Callables (e.g. jQuery
// methods) which participate identically in CallExpression/NewExpression.
type Callable interface {
	Object
	// Call invokes the function with the given receiver and arguments.
	Call(this Value, args []Value) (Value, error)
	// Construct runs the function as a `new` target, producing the
	// constructed value (the interpreter does not impose a particular
	// prototype-chain discipline on the result; a Callable is free to
	// return a fresh Object however it likes).
	Construct(args []Value) (Value, error)
	// Arity reports the function's declared parameter count, mirroring
	// the observable `.length` property real JS functions carry.
	Arity() int
}

// Constructed is implemented by objects that remember which Callable
// produced them via Construct. The default instanceof operator compares the
// recorded constructor against its right-hand side by identity.
type Constructed interface {
	Object
	Constructor() (Value, bool)
}

// ToBoolean implements JS's ToBoolean abstract operation for the value
// types this interpreter knows about.
func ToBoolean(v Value) bool {
	switch t := v.(type) {
	case undefinedType, nullType, nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		// Objects (including functions and arrays) are always truthy.
		return true
	}
}

// ToNumber implements a pragmatic subset of JS's ToNumber: the cases this
// interpreter's operator tables and control-flow tests actually need.
func ToNumber(v Value) float64 {
	switch t := v.(type) {
	case undefinedType, nil:
		return math.NaN()
	case nullType:
		return 0
	case bool:
		if t {
			return 1
		}
		return 0
	case float64:
		return t
	case string:
		if t == "" {
			return 0
		}
		n, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return n
	default:
		return math.NaN()
	}
}

// ToString implements JS's ToString for the value types this interpreter
// knows about; used for string concatenation, property-key coercion, and
// Inspect-style debugging.
func ToString(v Value) string {
	switch t := v.(type) {
	case undefinedType, nil:
		return "undefined"
	case nullType:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(t)
	case string:
		return t
	case Callable:
		return "function () { [native code] }"
	case Object:
		return "[object Object]"
	default:
		return fmt.Sprintf("%v", t)
	}
}

func formatNumber(n float64) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	if math.IsInf(n, 1) {
		return "Infinity"
	}
	if math.IsInf(n, -1) {
		return "-Infinity"
	}
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// TypeOf implements JS's `typeof` operator.
func TypeOf(v Value) string {
	switch v.(type) {
	case undefinedType, nil:
		return "undefined"
	case nullType:
		return "object"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case Callable:
		return "function"
	case Object:
		return "object"
	default:
		return "undefined"
	}
}

// StrictEquals implements JS's `===`.
func StrictEquals(a, b Value) bool {
	if IsUndefined(a) && IsUndefined(b) {
		return true
	}
	if IsNull(a) && IsNull(b) {
		return true
	}
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case Object:
		bv, ok := b.(Object)
		return ok && av == bv
	}
	return false
}
