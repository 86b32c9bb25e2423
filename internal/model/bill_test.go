package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	assert.Equal(t, 2.5, Coerce(2.5))
	assert.Equal(t, 3.0, Coerce(3))
	assert.Equal(t, 4.0, Coerce("4"))
	assert.Equal(t, 1.5, Coerce(json.Number("1.5")))
	assert.Equal(t, 0.0, Coerce("abc"))
	assert.Equal(t, 0.0, Coerce(nil))
	assert.Equal(t, 0.0, Coerce(true))
}

func TestBillItemInputAcceptsMixedTypes(t *testing.T) {
	var in BillItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"description":"Consult","quantity":"2","price":75}`), &in))
	assert.Equal(t, 2.0, Coerce(in.Quantity))
	assert.Equal(t, 75.0, Coerce(in.Price))
}

func TestDateAcceptsBareAndTimestampForms(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15"`), &d))
	assert.Equal(t, 15, d.Day())

	var ts Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15T09:30:00Z"`), &ts))
	assert.Equal(t, 15, ts.Day())

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(out))

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2026"`), &bad))
}

func TestBillItemsRoundTripsThroughColumn(t *testing.T) {
	items := BillItems{{Description: "Consult", Quantity: 1, Price: 100}}

	v, err := items.Value()
	require.NoError(t, err)

	var scanned BillItems
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, items, scanned)
}
