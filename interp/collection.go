package interp

import (
	"log/slog"

	"github.com/Vercily/js-tracker/checker"
	"github.com/Vercily/js-tracker/host"
	"github.com/Vercily/js-tracker/value"
)

// CallInfo is the call-site metadata attached to an assignment or call
// Reference, so a checker-flagged operation's Collection entry can report
// where it came from (spec.md §3's Reference.info, §6's source-regenerator
// collaborator).
type CallInfo struct {
	Code string
}

// CollectionEntry is one recorded "interesting" operation: a host element,
// what kind of operation the checker identified, and the call-site info
// that triggered it (spec.md §3).
type CollectionEntry struct {
	Element value.Value
	Type    string
	Info    *CallInfo
}

// Collection is the interpreter's append-only output artifact store
// (spec.md §2 component 4). Entries are never rewritten once appended.
type Collection struct {
	entries []CollectionEntry
}

func (c *Collection) append(element value.Value, typ string, info *CallInfo) {
	c.entries = append(c.entries, CollectionEntry{Element: element, Type: typ, Info: info})
}

// Entries returns the recorded operations in append order.
func (c *Collection) Entries() []CollectionEntry {
	out := make([]CollectionEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// checkCallSite is the checker hook of spec.md §4.11. It's only ever
// invoked for a member Reference, whose caller is non-nil (a method call or
// a member assignment, not a bare function call or identifier assignment) —
// guarded by the caller at CallExpression and AssignmentExpression
// evaluation time.
//
// It returns a cleanup func that must run (via defer, mirroring the
// teacher's finally-equivalent discipline for ReturnPanic/JSException
// propagation) once the call returns, whether normally or via panic, so
// checkFlag is cleared on every exit path (spec.md §5, §7).
func (interp *Interpreter) checkCallSite(caller, callee value.Value, info *CallInfo) func() {
	if interp.checker == nil || interp.checkFlag {
		return func() {}
	}
	status, ok := interp.checker.Dispatch(checker.CallSite{
		Context: interp.context,
		Caller:  caller,
		Callee:  callee,
	})
	if !ok {
		return func() {}
	}
	interp.checkFlag = true
	interp.recordCheckedCall(status, caller, info)
	return func() { interp.checkFlag = false }
}

func (interp *Interpreter) recordCheckedCall(status checker.Status, caller value.Value, info *CallInfo) {
	target := caller
	if status.HasTarget {
		target = status.Target
	} else if obj, ok := caller.(value.Object); ok {
		if parent, ok := interp.parentOf(obj); ok {
			if isStyleOrTokenList(obj) {
				target = parent
			}
		}
		if attr, ok := obj.(host.AttrNode); ok {
			target = attr.OwnerElement()
		}
	}

	elements := interp.targetElements(target)
	for _, el := range elements {
		interp.collection.append(el, status.Type, info)
	}
	slog.Debug("checker flagged call", "type", status.Type, "elements", len(elements))
}

func isStyleOrTokenList(obj value.Object) bool {
	switch obj.(type) {
	case host.StyleDeclaration, host.TokenList:
		return true
	}
	return false
}

// targetElements normalizes a checker verdict's target into the one-or-many
// elements a Collection entry should be recorded against: a jQuery-like
// wrapper expands via Elements(), anything else becomes a single-element
// sequence (spec.md §4.11).
func (interp *Interpreter) targetElements(target value.Value) []value.Value {
	if jq, ok := interp.asJQuery(target); ok {
		return jq.Elements()
	}
	return []value.Value{target}
}

// asJQuery reports whether v is a jQuery-wrapped set the Collection should
// expand. Detection mirrors spec.md §4.11's instance check against
// context.jQuery: the value must satisfy host.JQueryLike AND the host must
// actually expose a jQuery constructor — a host without one has no
// jQuery-wrapped sets, so the value falls back to single-element
// normalization no matter what interfaces it happens to implement.
func (interp *Interpreter) asJQuery(v value.Value) (host.JQueryLike, bool) {
	jq, ok := v.(host.JQueryLike)
	if !ok {
		return nil, false
	}
	if interp.context == nil {
		return nil, false
	}
	if _, hasJQuery := interp.context.JQuery(); !hasJQuery {
		return nil, false
	}
	return jq, true
}

// parentOf looks up the owning element a CSSStyleDeclaration/DOMTokenList
// was read off of. Member access (spec.md §4.9) records this association;
// it's kept in a side table rather than mutating the host object itself,
// per spec.md §9's alternative for hosts whose objects can't carry an
// extra field.
func (interp *Interpreter) parentOf(obj value.Object) (value.Value, bool) {
	v, ok := interp.parents[obj]
	return v, ok
}

func (interp *Interpreter) setParent(obj value.Object, parent value.Value) {
	if interp.parents == nil {
		interp.parents = make(map[value.Object]value.Value)
	}
	if _, exists := interp.parents[obj]; exists {
		return
	}
	interp.parents[obj] = parent
}
