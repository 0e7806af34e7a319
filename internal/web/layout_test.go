package web

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutResolve_Defaults(t *testing.T) {
	l := NewLayout("Sport Agency")

	resolved, err := l.Resolve(nil)
	require.NoError(t, err)

	assert.Equal(t, template.HTML("Sport Agency"), resolved[BlockTitle])
	assert.Empty(t, resolved[BlockHead])
	assert.Empty(t, resolved[BlockContent])
	assert.Empty(t, resolved[BlockScripts])
	assert.Len(t, resolved, 4)
}

func TestLayoutResolve_OverrideWins(t *testing.T) {
	l := NewLayout("Sport Agency")

	resolved, err := l.Resolve(Blocks{
		BlockTitle:   "Athletes - Sport Agency",
		BlockContent: "<p>roster</p>",
	})
	require.NoError(t, err)

	// Overridden blocks carry the override, untouched blocks the default.
	assert.Equal(t, template.HTML("Athletes - Sport Agency"), resolved[BlockTitle])
	assert.Equal(t, template.HTML("<p>roster</p>"), resolved[BlockContent])
	assert.Empty(t, resolved[BlockHead])
	assert.Empty(t, resolved[BlockScripts])
}

func TestLayoutResolve_AllSubsets(t *testing.T) {
	l := NewLayout("Sport Agency")
	names := []string{BlockTitle, BlockHead, BlockContent, BlockScripts}

	// Every subset of declared blocks resolves to exactly one body per name.
	for mask := 0; mask < 1<<len(names); mask++ {
		overrides := Blocks{}
		for i, name := range names {
			if mask&(1<<i) != 0 {
				overrides[name] = template.HTML("override:" + name)
			}
		}
		resolved, err := l.Resolve(overrides)
		require.NoError(t, err)
		require.Len(t, resolved, len(names))
		for i, name := range names {
			if mask&(1<<i) != 0 {
				assert.Equal(t, template.HTML("override:"+name), resolved[name])
			} else {
				assert.NotContains(t, string(resolved[name]), "override:")
			}
		}
	}
}

func TestLayoutResolve_UndeclaredBlock(t *testing.T) {
	l := NewLayout("Sport Agency")

	_, err := l.Resolve(Blocks{"sidebar": "<aside/>"})
	require.Error(t, err)

	var boErr BlockOverrideError
	require.ErrorAs(t, err, &boErr)
	assert.Equal(t, "sidebar", boErr.Block)
}

func TestLayoutDeclared(t *testing.T) {
	l := NewLayout("Sport Agency")
	assert.True(t, l.Declared(BlockContent))
	assert.False(t, l.Declared("sidebar"))
}
