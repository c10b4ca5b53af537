// Package checker defines the external call-site classifier the
// interpreter consults on every member-call whose reference has a non-nil
// caller (spec.md §4.11). The concrete decision procedure — what counts as
// an "interesting" DOM mutation — is deliberately out of scope for this
// repo (spec.md §1); this package only carries the shape of the contract
// plus a couple of reference implementations used by this repo's own
// tests.
package checker

import "github.com/Vercily/js-tracker/value"

// CallSite is what the interpreter hands the checker for every method-call
// reference with a known caller.
type CallSite struct {
	// Context is the host global the program is running against.
	Context value.Value
	// Caller is the evaluated receiver object the call was made on.
	Caller value.Value
	// Callee is the method name (or, for a computed member call, the
	// evaluated property value) being invoked.
	Callee value.Value
}

// Status is what a positive checker verdict carries. Target is optional —
// when unset, the interpreter derives the Collection's attributed element
// from Caller per spec.md §4.11's target-resolution rule.
type Status struct {
	Type   string
	Target value.Value
	HasTarget bool
}

// Checker classifies a CallSite. A falsy (zero Status, false) result means
// "not interesting" and the interpreter records nothing.
type Checker interface {
	Dispatch(site CallSite) (Status, bool)
}

// CheckerFunc adapts a plain function to the Checker interface, the same
// single-method-interface-from-a-func idiom net/http.HandlerFunc uses.
type CheckerFunc func(site CallSite) (Status, bool)

func (f CheckerFunc) Dispatch(site CallSite) (Status, bool) { return f(site) }

// None is a Checker that never flags anything; useful for running a
// program purely for its return value, with no Collection side effects.
var None Checker = CheckerFunc(func(CallSite) (Status, bool) { return Status{}, false })
