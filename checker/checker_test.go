package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckerFuncAdaptsAPlainFunctionIntoTheCheckerInterface(t *testing.T) {
	var called CallSite
	fn := CheckerFunc(func(site CallSite) (Status, bool) {
		called = site
		return Status{Type: "flagged"}, true
	})

	var c Checker = fn
	site := CallSite{Caller: "el", Callee: "hide"}
	status, ok := c.Dispatch(site)

	assert.True(t, ok)
	assert.Equal(t, "flagged", status.Type)
	assert.Equal(t, site, called)
}

func TestNoneNeverFlagsAnything(t *testing.T) {
	status, ok := None.Dispatch(CallSite{Caller: "anything", Callee: "whatever"})
	assert.False(t, ok)
	assert.Equal(t, Status{}, status)
}

func TestStatusHasTargetDistinguishesASetTargetFromAnUnsetOne(t *testing.T) {
	withTarget := Status{Type: "x", Target: "el", HasTarget: true}
	assert.True(t, withTarget.HasTarget)

	withoutTarget := Status{Type: "x"}
	assert.False(t, withoutTarget.HasTarget)
	assert.Nil(t, withoutTarget.Target)
}
