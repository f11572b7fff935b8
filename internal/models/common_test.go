// internal/models/common_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberAcceptsNumbersAndNumericStrings(t *testing.T) {
	var n Number
	require.NoError(t, json.Unmarshal([]byte(`10.5`), &n))
	assert.Equal(t, 10.5, n.Float64())
	assert.True(t, n.IsFinite())

	require.NoError(t, json.Unmarshal([]byte(`" 19.99 "`), &n))
	assert.Equal(t, 19.99, n.Float64())
}

func TestNumberNonNumericBecomesNaN(t *testing.T) {
	var n Number
	require.NoError(t, json.Unmarshal([]byte(`"cheap"`), &n))
	assert.False(t, n.IsFinite())

	require.NoError(t, json.Unmarshal([]byte(`true`), &n))
	assert.False(t, n.IsFinite())
}

func TestNumberNullLeavesPointerNil(t *testing.T) {
	var holder struct {
		Price *Number `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":null}`), &holder))
	assert.Nil(t, holder.Price)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &holder))
	assert.Nil(t, holder.Price)
}

func TestOptionalDistinguishesAbsentAndNull(t *testing.T) {
	var holder struct {
		SKU Optional[string] `json:"sku"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &holder))
	assert.False(t, holder.SKU.Present)

	require.NoError(t, json.Unmarshal([]byte(`{"sku":null}`), &holder))
	assert.True(t, holder.SKU.Present)
	assert.True(t, holder.SKU.Null)

	require.NoError(t, json.Unmarshal([]byte(`{"sku":"NYR-1"}`), &holder))
	assert.True(t, holder.SKU.Present)
	assert.False(t, holder.SKU.Null)
	assert.Equal(t, "NYR-1", holder.SKU.Value)
}
