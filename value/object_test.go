package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainObjectOwnKeysPreservesInsertionOrder(t *testing.T) {
	o := NewPlainObject()
	o.Set("b", 1.0)
	o.Set("a", 2.0)
	o.Set("c", 3.0)
	assert.Equal(t, []string{"b", "a", "c"}, o.OwnKeys())
}

func TestPlainObjectSetOnExistingKeyDoesNotReorderOwnKeys(t *testing.T) {
	o := NewPlainObject()
	o.Set("a", 1.0)
	o.Set("b", 2.0)
	o.Set("a", 99.0)
	assert.Equal(t, []string{"a", "b"}, o.OwnKeys())
	v, ok := o.Get("a")
	require.True(t, ok)
	assert.Equal(t, 99.0, v)
}

func TestPlainObjectConstructorTagRoundTrips(t *testing.T) {
	o := NewPlainObject()
	_, ok := o.Constructor()
	assert.False(t, ok, "a fresh object has no recorded constructor")

	fn := NewPlainObject() // identity is all Constructor compares; any Value works as the tag
	o.SetConstructor(fn)
	got, ok := o.Constructor()
	require.True(t, ok)
	assert.Same(t, fn, got)
}

func TestPlainObjectDeleteRemovesFromBothTheMapAndKeyOrder(t *testing.T) {
	o := NewPlainObject()
	o.Set("a", 1.0)
	o.Set("b", 2.0)
	assert.True(t, o.Delete("a"))
	assert.False(t, o.Has("a"))
	assert.Equal(t, []string{"b"}, o.OwnKeys())
	assert.False(t, o.Delete("a"))
}

func TestArrayLengthReflectsElementCountAndIsWritable(t *testing.T) {
	a := NewArray([]Value{1.0, 2.0, 3.0})
	length, ok := a.Get("length")
	require.True(t, ok)
	assert.Equal(t, 3.0, length)

	require.NoError(t, a.Set("length", 1.0))
	assert.Len(t, a.Elements, 1)

	require.NoError(t, a.Set("length", 3.0))
	assert.Len(t, a.Elements, 3)
	assert.Nil(t, a.Elements[1])
}

func TestArrayIndexSetGrowsElementsAndFillsHolesWithNil(t *testing.T) {
	a := NewArray(nil)
	require.NoError(t, a.Set("2", "x"))
	require.Len(t, a.Elements, 3)
	assert.Nil(t, a.Elements[0])
	assert.Nil(t, a.Elements[1])
	assert.Equal(t, "x", a.Elements[2])
}

func TestArrayElisionReadsBackAsUndefined(t *testing.T) {
	a := NewArray([]Value{1.0, nil, 3.0})
	v, ok := a.Get("1")
	require.True(t, ok)
	assert.True(t, IsUndefined(v))
}

func TestArrayNonIndexKeysFallBackToTheOverflowObject(t *testing.T) {
	a := NewArray([]Value{1.0})
	require.NoError(t, a.Set("label", "tag"))
	v, ok := a.Get("label")
	require.True(t, ok)
	assert.Equal(t, "tag", v)
	assert.Contains(t, a.OwnKeys(), "0")
	assert.Contains(t, a.OwnKeys(), "label")
}

func TestArrayDeleteOnAnIndexLeavesAHoleRatherThanShrinking(t *testing.T) {
	a := NewArray([]Value{1.0, 2.0, 3.0})
	assert.True(t, a.Delete("1"))
	require.Len(t, a.Elements, 3)
	assert.Nil(t, a.Elements[1])
}
