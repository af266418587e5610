package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsByType(t *testing.T) {
	assert.Len(t, ItemsByType(TypeFont), 2)
	assert.Len(t, ItemsByType(TypePicture), 2)
	assert.Len(t, ItemsByType(TypeBackground), 1)
	assert.Len(t, ItemsByType(TypeBorder), 1)
	assert.Empty(t, ItemsByType("sticker"))
}

func TestFindItem(t *testing.T) {
	item := FindItem("2")
	require.NotNil(t, item)
	assert.Equal(t, "Font 2", item.Name)
	assert.Equal(t, int64(1000), item.Price)

	assert.Nil(t, FindItem("999"))
}

func TestIsValidType(t *testing.T) {
	for _, typ := range []string{TypeFont, TypePicture, TypeBackground, TypeBorder} {
		assert.True(t, IsValidType(typ))
	}
	assert.False(t, IsValidType("sticker"))
	assert.False(t, IsValidType(""))
}

func TestAllItemsIsACopy(t *testing.T) {
	items := AllItems()
	require.Len(t, items, 6)

	items[0].Price = 1
	assert.Equal(t, int64(500), FindItem("1").Price)
}
