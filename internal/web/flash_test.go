package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashViews_Empty(t *testing.T) {
	assert.Nil(t, FlashViews(nil))
	assert.Nil(t, FlashViews([]Flash{}))
}

func TestFlashViews_ErrorMapsToDanger(t *testing.T) {
	views := FlashViews([]Flash{{Category: "error", Text: "bad input"}})
	require.Len(t, views, 1)

	assert.Equal(t, "danger", views[0].StyleToken)
	assert.Equal(t, "bad input", views[0].Text)
	assert.True(t, views[0].Dismissible)
}

func TestFlashViews_IdentityMapping(t *testing.T) {
	for _, category := range []string{"success", "info", "warning", "weird-custom"} {
		views := FlashViews([]Flash{{Category: category, Text: "saved"}})
		require.Len(t, views, 1)
		assert.Equal(t, category, views[0].StyleToken)
	}
}

func TestFlashViews_OrderPreserved(t *testing.T) {
	views := FlashViews([]Flash{
		{Category: "success", Text: "first"},
		{Category: "error", Text: "second"},
		{Category: "info", Text: "third"},
	})
	require.Len(t, views, 3)

	assert.Equal(t, "first", views[0].Text)
	assert.Equal(t, "second", views[1].Text)
	assert.Equal(t, "danger", views[1].StyleToken)
	assert.Equal(t, "third", views[2].Text)
}
