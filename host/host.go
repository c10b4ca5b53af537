// Package host declares the minimal contracts a browser-like global must
// satisfy for js-tracker to recognize DOM-mutation call sites. The
// interpreter never requires a concrete DOM implementation — it only does
// type assertions against these interfaces — so any host (a real DOM
// binding, a test double, nothing at all) can plug in.
package host

import "github.com/Vercily/js-tracker/value"

// StyleDeclaration marks a value.Object as a CSSStyleDeclaration-like
// object — the thing `element.style` evaluates to. The checker hook
// attributes a mutating call through one of these back to its owning
// element via the interpreter's parent side-table (spec.md §4.9).
type StyleDeclaration interface {
	value.Object
}

// TokenList marks a value.Object as a DOMTokenList-like object — the thing
// `element.classList` evaluates to.
type TokenList interface {
	value.Object
}

// AttrNode marks a value.Object as an Attr-like object and exposes the
// element that owns it, used by the checker hook when a call's caller is an
// attribute node rather than an element directly (spec.md §4.11).
type AttrNode interface {
	value.Object
	OwnerElement() value.Value
}

// JQueryLike marks a value that wraps a set of elements, the way a jQuery
// result set does. Elements returns the wrapped elements in order (named
// Elements, not Get, so it doesn't collide with value.Object's own
// string-keyed Get).
type JQueryLike interface {
	value.Object
	Elements() []value.Value
}

// Context is the host global object a program runs against: `this` at the
// top level, and the target of an unqualified `delete name` (spec.md
// §4.9). A Context is also a value.Object so host-exposed globals
// (`window.foo`) resolve the same way any other property access would.
type Context interface {
	value.Object
	// JQuery returns the host's jQuery constructor value, or (nil, false)
	// if the host doesn't provide one — jQuery detection is optional per
	// spec.md §1.
	JQuery() (value.Value, bool)
}
