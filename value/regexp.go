package value

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// RegExp wraps a compiled regular expression literal. Go's standard
// `regexp` package only implements RE2, which cannot express the
// backreferences and lookaround JS regex literals are allowed to carry;
// regexp2 (pulled in for this purpose from nooga-paserati's go.mod) is a
// backtracking engine that supports both. NewRegExp compiles in regexp2's
// default syntax mode, not its ECMAScript-compatibility mode.
type RegExp struct {
	Source  string
	Flags   string
	compile *regexp2.Regexp
}

// NewRegExp compiles a /pattern/flags literal into a RegExp object.
func NewRegExp(pattern, flags string) (*RegExp, error) {
	opts := regexp2.None
	if strings.Contains(flags, "i") {
		opts |= regexp2.IgnoreCase
	}
	if strings.Contains(flags, "s") {
		opts |= regexp2.Singleline
	}
	if strings.Contains(flags, "m") {
		opts |= regexp2.Multiline
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &RegExp{Source: pattern, Flags: flags, compile: re}, nil
}

// Test reports whether the regexp matches anywhere in s, mirroring
// RegExp.prototype.test.
func (r *RegExp) Test(s string) bool {
	m, err := r.compile.FindStringMatch(s)
	return err == nil && m != nil
}

func (r *RegExp) Get(key string) (Value, bool) {
	switch key {
	case "source":
		return r.Source, true
	case "flags":
		return r.Flags, true
	case "global":
		return strings.Contains(r.Flags, "g"), true
	case "ignoreCase":
		return strings.Contains(r.Flags, "i"), true
	case "multiline":
		return strings.Contains(r.Flags, "m"), true
	}
	return nil, false
}

func (r *RegExp) Set(key string, v Value) error { return nil }
func (r *RegExp) Delete(key string) bool        { return false }
func (r *RegExp) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}
func (r *RegExp) OwnKeys() []string { return []string{"source", "flags", "global", "ignoreCase", "multiline"} }
