package command

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	cmd := &fakeCommand{name: "plot"}
	reg.Register(cmd)

	got, ok := reg.Get("plot")
	require.True(t, ok)
	assert.Same(t, cmd, got.(*fakeCommand))
	assert.True(t, reg.Has("plot"))
	assert.False(t, reg.Has("rotate"))
}

func TestRegisterReplacesLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	first := &fakeCommand{name: "x"}
	second := &fakeCommand{name: "x"}
	reg.Register(first)
	reg.Register(second)

	got, ok := reg.Get("x")
	require.True(t, ok)
	assert.Same(t, second, got.(*fakeCommand), "later registration replaces the prior entry")

	names := reg.Names()
	assert.Len(t, names, 1, "each name appears exactly once")
}

func TestNames(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&fakeCommand{name: "b"})
	reg.Register(&fakeCommand{name: "a"})
	reg.Register(&fakeCommand{name: "c"})

	names := reg.Names()
	// iteration order is unspecified; sort before comparing
	sort.Strings(names)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestClear(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&fakeCommand{name: "a"})
	reg.Clear()
	assert.Empty(t, reg.Names())
	assert.False(t, reg.Has("a"))
}

func TestSuggest(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"create_element", "delete_element", "set_property", "get_property", "transform"} {
		reg.Register(&fakeCommand{name: name})
	}

	assert.Equal(t, "create_element", reg.Suggest("createelement"))
	assert.Equal(t, "transform", reg.Suggest("transfrm"))
	assert.Equal(t, "", reg.Suggest("completely_unrelated_zzz"))
}

func TestSuggestEmptyRegistry(t *testing.T) {
	assert.Equal(t, "", NewRegistry().Suggest("anything"))
}
