package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomSectionItem_MarshalFlat(t *testing.T) {
	item := CustomSectionItem{ID: 3, Body: ImageItem{ImageURL: "https://cdn/x.png", Caption: "x"}}

	raw, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"type":"image","imageUrl":"https://cdn/x.png","caption":"x"}`, string(raw))
}

func TestCustomSectionItem_UnmarshalDispatchesOnType(t *testing.T) {
	var item CustomSectionItem
	err := json.Unmarshal([]byte(`{"id":5,"type":"card","title":"T","description":"D","content":"ignored"}`), &item)
	require.NoError(t, err)

	assert.Equal(t, int64(5), item.ID)
	assert.Equal(t, CardItem{Title: "T", Description: "D"}, item.Body)
}

func TestCustomSectionItem_Errors(t *testing.T) {
	var item CustomSectionItem
	err := json.Unmarshal([]byte(`{"id":1,"type":"video"}`), &item)
	assert.ErrorIs(t, err, ErrUnknownItemType)

	_, err = json.Marshal(CustomSectionItem{ID: 1})
	assert.ErrorIs(t, err, ErrEmptyItemBody)
}

func TestDecodeItemBody(t *testing.T) {
	body, err := DecodeItemBody([]byte(`{"type":"text","content":"hello"}`))
	require.NoError(t, err)
	assert.Equal(t, TextItem{Content: "hello"}, body)
	assert.Equal(t, ItemText, body.ItemType())
}

func TestCustomSection_Validate(t *testing.T) {
	s := CustomSection{ID: "custom_1", Items: []CustomSectionItem{{ID: 1, Body: TextItem{}}}}
	assert.NoError(t, s.Validate())

	s.Items = append(s.Items, CustomSectionItem{ID: 2})
	assert.ErrorIs(t, s.Validate(), ErrEmptyItemBody)
}
