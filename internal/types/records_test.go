package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanedRecord_MarshalKeepsAllSevenKeys(t *testing.T) {
	data, err := json.Marshal(&CleanedRecord{Title: Str("A")})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded, len(CleanedFields))
	for _, field := range CleanedFields {
		assert.Contains(t, decoded, field)
	}
	assert.Nil(t, decoded["price"])
	assert.Equal(t, "A", decoded["title"])
}

func TestPresent_StringFields(t *testing.T) {
	rec := &CleanedRecord{Title: Str("  "), URL: Str("http://example.com")}

	assert.False(t, rec.Present("title"), "whitespace only is not present")
	assert.True(t, rec.Present("url"))
	assert.False(t, rec.Present("content"))
}

func TestPresent_PriceIsPresentWhenNonNil(t *testing.T) {
	rec := &CleanedRecord{Price: Float(0)}
	assert.True(t, rec.Present("price"), "zero price still counts as present")

	rec.Price = nil
	assert.False(t, rec.Present("price"))
}

func TestPresent_UnknownField(t *testing.T) {
	rec := &CleanedRecord{}
	assert.False(t, rec.Present("nope"))
}
