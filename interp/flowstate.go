package interp

// signal is a bit in FlowState's state bitset.
type signal uint8

const (
	sigBreak signal = 1 << iota
	sigContinue
	sigReturn
)

// FlowState is the interpreter's single control-flow signal register
// (spec.md §3). Statements and loops communicate break/continue/return
// through it instead of unwinding the Go call stack with panics — the
// teacher (go/simplejs) uses a ReturnPanic/recover for `return` and a bare
// ErrBreak sentinel error for `break`, but that has no room for a label and
// no way to let an outer loop see a break/continue it doesn't own, which
// labelled break/continue and switch fallthrough both need (spec.md §9).
type FlowState struct {
	state signal
	label string // "" whenever state has no bit set
}

func (f *FlowState) has(s signal) bool { return f.state&s != 0 }

func (f *FlowState) set(s signal) { f.state |= s }

func (f *FlowState) clear(s signal) {
	f.state &^= s
	if f.state == 0 {
		f.label = ""
	}
}

// Any reports whether any of BREAK/CONTINUE/RETURN is currently set —
// statement sequences stop running as soon as this is true (spec.md §4.3).
func (f *FlowState) Any() bool { return f.state != 0 }

func (f *FlowState) IsReturn() bool   { return f.has(sigReturn) }
func (f *FlowState) IsBreak() bool    { return f.has(sigBreak) }
func (f *FlowState) IsContinue() bool { return f.has(sigContinue) }

// Label returns the pending break/continue's label, or "" if unlabeled.
func (f *FlowState) Label() string { return f.label }

func (f *FlowState) setBreak(label string) {
	f.set(sigBreak)
	f.label = label
}

func (f *FlowState) setContinue(label string) {
	f.set(sigContinue)
	f.label = label
}

func (f *FlowState) setReturn() { f.set(sigReturn) }

func (f *FlowState) clearReturn() { f.clear(sigReturn) }

// clearBreak drops a pending break and, if it carried a label, the label
// too — the LabeledStatement fall-through rule (spec.md §4.1) and switch's
// post-exit rule (spec.md §4.5) both go through this.
func (f *FlowState) clearBreak() { f.clear(sigBreak) }

func (f *FlowState) clearContinue() { f.clear(sigContinue) }
