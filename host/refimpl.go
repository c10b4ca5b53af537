package host

import (
	"errors"

	"github.com/Vercily/js-tracker/value"
)

// The types in this file are a minimal, plain-map-backed reference host —
// not a real DOM binding — used by interp's tests to exercise spec.md
// §4.9's parent-attribution rule and §4.11's checker-hook/Collection
// pipeline against genuine StyleDeclaration/TokenList/AttrNode/Context
// values, rather than bare test doubles defined per-test.

var errNotConstructor = errors.New("host: not a constructor")

// nativeFunc adapts a plain Go function into a value.Callable, the way a
// real DOM method (classList.add, element.setAttribute, ...) shows up to
// script code — lets the reference host expose a couple of genuine method
// calls instead of only property writes.
type nativeFunc struct {
	arity int
	fn    func(this value.Value, args []value.Value) (value.Value, error)
}

func (f *nativeFunc) Get(string) (value.Value, bool)  { return nil, false }
func (f *nativeFunc) Set(string, value.Value) error   { return nil }
func (f *nativeFunc) Delete(string) bool              { return false }
func (f *nativeFunc) Has(string) bool                 { return false }
func (f *nativeFunc) OwnKeys() []string               { return nil }
func (f *nativeFunc) Arity() int                      { return f.arity }
func (f *nativeFunc) Call(this value.Value, args []value.Value) (value.Value, error) {
	return f.fn(this, args)
}
func (f *nativeFunc) Construct([]value.Value) (value.Value, error) {
	return nil, errNotConstructor
}

// RefStyle is a CSSStyleDeclaration stand-in: `element.style.color = 'red'`
// reads and writes land here as plain string properties.
type RefStyle struct {
	props map[string]value.Value
}

func NewRefStyle() *RefStyle { return &RefStyle{props: make(map[string]value.Value)} }

func (s *RefStyle) Get(key string) (value.Value, bool) { v, ok := s.props[key]; return v, ok }
func (s *RefStyle) Set(key string, v value.Value) error { s.props[key] = v; return nil }
func (s *RefStyle) Delete(key string) bool {
	if _, ok := s.props[key]; !ok {
		return false
	}
	delete(s.props, key)
	return true
}
func (s *RefStyle) Has(key string) bool { _, ok := s.props[key]; return ok }
func (s *RefStyle) OwnKeys() []string {
	keys := make([]string, 0, len(s.props))
	for k := range s.props {
		keys = append(keys, k)
	}
	return keys
}

var _ StyleDeclaration = (*RefStyle)(nil)

// RefTokenList is a DOMTokenList stand-in backing `element.classList`, with
// real add/remove/contains methods so a checker hook can be exercised on an
// actual method call through it, not just a property write.
type RefTokenList struct {
	tokens []string
}

func NewRefTokenList(tokens ...string) *RefTokenList { return &RefTokenList{tokens: tokens} }

func (t *RefTokenList) indexOf(tok string) int {
	for i, existing := range t.tokens {
		if existing == tok {
			return i
		}
	}
	return -1
}

func (t *RefTokenList) Get(key string) (value.Value, bool) {
	switch key {
	case "length":
		return float64(len(t.tokens)), true
	case "add":
		return &nativeFunc{arity: 1, fn: func(_ value.Value, args []value.Value) (value.Value, error) {
			for _, a := range args {
				tok := value.ToString(a)
				if t.indexOf(tok) == -1 {
					t.tokens = append(t.tokens, tok)
				}
			}
			return value.Undefined, nil
		}}, true
	case "remove":
		return &nativeFunc{arity: 1, fn: func(_ value.Value, args []value.Value) (value.Value, error) {
			for _, a := range args {
				if i := t.indexOf(value.ToString(a)); i != -1 {
					t.tokens = append(t.tokens[:i], t.tokens[i+1:]...)
				}
			}
			return value.Undefined, nil
		}}, true
	case "contains":
		return &nativeFunc{arity: 1, fn: func(_ value.Value, args []value.Value) (value.Value, error) {
			if len(args) == 0 {
				return false, nil
			}
			return t.indexOf(value.ToString(args[0])) != -1, nil
		}}, true
	}
	if idx, ok := tokenIndex(key); ok && idx < len(t.tokens) {
		return t.tokens[idx], true
	}
	return nil, false
}

func tokenIndex(key string) (int, bool) {
	n := 0
	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, len(key) > 0
}

func (t *RefTokenList) Set(string, value.Value) error { return nil }
func (t *RefTokenList) Delete(string) bool            { return false }
func (t *RefTokenList) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}
func (t *RefTokenList) OwnKeys() []string {
	keys := make([]string, len(t.tokens))
	for i := range t.tokens {
		keys[i] = itoa(i)
	}
	return keys
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

var _ TokenList = (*RefTokenList)(nil)

// RefAttr is an Attr stand-in exposing the element that owns it, used by
// the checker hook when a call's caller is an attribute node rather than
// the element directly (spec.md §4.11).
type RefAttr struct {
	name  string
	value value.Value
	owner value.Value
}

func (a *RefAttr) Get(key string) (value.Value, bool) {
	switch key {
	case "name":
		return a.name, true
	case "value":
		return a.value, true
	}
	return nil, false
}
func (a *RefAttr) Set(key string, v value.Value) error {
	if key == "value" {
		a.value = v
	}
	return nil
}
func (a *RefAttr) Delete(string) bool  { return false }
func (a *RefAttr) Has(key string) bool { _, ok := a.Get(key); return ok }
func (a *RefAttr) OwnKeys() []string   { return []string{"name", "value"} }
func (a *RefAttr) OwnerElement() value.Value { return a.owner }

var _ AttrNode = (*RefAttr)(nil)

// RefElement is a minimal HTMLElement stand-in: a plain-property bag with a
// `style` and `classList` of its own, plus setAttribute/getAttributeNode
// backed by RefAttr.
type RefElement struct {
	props      map[string]value.Value
	style      *RefStyle
	classList  *RefTokenList
	attributes map[string]*RefAttr
}

func NewRefElement() *RefElement {
	return &RefElement{
		props:      make(map[string]value.Value),
		style:      NewRefStyle(),
		classList:  NewRefTokenList(),
		attributes: make(map[string]*RefAttr),
	}
}

func (e *RefElement) Style() *RefStyle         { return e.style }
func (e *RefElement) ClassList() *RefTokenList { return e.classList }

func (e *RefElement) Get(key string) (value.Value, bool) {
	switch key {
	case "style":
		return e.style, true
	case "classList":
		return e.classList, true
	case "setAttribute":
		return &nativeFunc{arity: 2, fn: func(_ value.Value, args []value.Value) (value.Value, error) {
			if len(args) < 2 {
				return value.Undefined, nil
			}
			name := value.ToString(args[0])
			e.attributes[name] = &RefAttr{name: name, value: args[1], owner: e}
			return value.Undefined, nil
		}}, true
	case "getAttributeNode":
		return &nativeFunc{arity: 1, fn: func(_ value.Value, args []value.Value) (value.Value, error) {
			if len(args) < 1 {
				return value.Null, nil
			}
			attr, ok := e.attributes[value.ToString(args[0])]
			if !ok {
				return value.Null, nil
			}
			return attr, nil
		}}, true
	}
	v, ok := e.props[key]
	return v, ok
}

func (e *RefElement) Set(key string, v value.Value) error { e.props[key] = v; return nil }
func (e *RefElement) Delete(key string) bool {
	if _, ok := e.props[key]; !ok {
		return false
	}
	delete(e.props, key)
	return true
}
func (e *RefElement) Has(key string) bool {
	switch key {
	case "style", "classList", "setAttribute", "getAttributeNode":
		return true
	}
	_, ok := e.props[key]
	return ok
}
func (e *RefElement) OwnKeys() []string {
	keys := make([]string, 0, len(e.props)+2)
	keys = append(keys, "style", "classList")
	for k := range e.props {
		keys = append(keys, k)
	}
	return keys
}

// RefJQuery is a minimal jQuery-result-set stand-in: a thin wrapper around
// an ordered element list, detected by the interpreter via host.JQueryLike.
type RefJQuery struct {
	elements []value.Value
}

func NewRefJQuery(elements ...value.Value) *RefJQuery { return &RefJQuery{elements: elements} }

func (j *RefJQuery) Elements() []value.Value { return j.elements }

func (j *RefJQuery) Get(key string) (value.Value, bool) {
	if key == "length" {
		return float64(len(j.elements)), true
	}
	if idx, ok := tokenIndex(key); ok && idx < len(j.elements) {
		return j.elements[idx], true
	}
	return nil, false
}
func (j *RefJQuery) Set(string, value.Value) error { return nil }
func (j *RefJQuery) Delete(string) bool            { return false }
func (j *RefJQuery) Has(key string) bool {
	_, ok := j.Get(key)
	return ok
}
func (j *RefJQuery) OwnKeys() []string {
	keys := make([]string, len(j.elements))
	for i := range j.elements {
		keys[i] = itoa(i)
	}
	return keys
}

var _ JQueryLike = (*RefJQuery)(nil)

// RefGlobal is a minimal host.Context stand-in: a plain-property global
// object a test program runs against, with an optional jQuery constructor.
type RefGlobal struct {
	props  map[string]value.Value
	jquery value.Value
	hasJQ  bool
}

func NewRefGlobal() *RefGlobal { return &RefGlobal{props: make(map[string]value.Value)} }

func (g *RefGlobal) Get(key string) (value.Value, bool) { v, ok := g.props[key]; return v, ok }
func (g *RefGlobal) Set(key string, v value.Value) error { g.props[key] = v; return nil }
func (g *RefGlobal) Delete(key string) bool {
	if _, ok := g.props[key]; !ok {
		return false
	}
	delete(g.props, key)
	return true
}
func (g *RefGlobal) Has(key string) bool { _, ok := g.props[key]; return ok }
func (g *RefGlobal) OwnKeys() []string {
	keys := make([]string, 0, len(g.props))
	for k := range g.props {
		keys = append(keys, k)
	}
	return keys
}

// JQuery satisfies host.Context; SetJQuery installs the host's jQuery
// constructor value so the interpreter's jQuery-result-set detection
// (spec.md §4.11) can opt in.
func (g *RefGlobal) JQuery() (value.Value, bool) { return g.jquery, g.hasJQ }
func (g *RefGlobal) SetJQuery(v value.Value)     { g.jquery, g.hasJQ = v, true }

var _ Context = (*RefGlobal)(nil)
