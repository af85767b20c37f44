package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
)

type line struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"gt=0"`
}

type order struct {
	Items   []line `json:"items" validate:"required,min=1,dive"`
	Address string `json:"shippingAddress" validate:"required"`
}

func TestStruct(t *testing.T) {
	rv := NewRequestValidator()

	require.NoError(t, rv.Struct(&order{Items: []line{{ProductID: 1, Quantity: 1}}, Address: "X"}))

	err := rv.Struct(&order{Items: []line{{ProductID: 1, Quantity: 0}}, Address: "X"})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items[0].quantity", ve.Field)
	assert.Equal(t, "must be greater than 0", ve.Message)

	err = rv.Struct(&order{Items: []line{{ProductID: 1, Quantity: 1}}})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "shippingAddress", ve.Field)
	assert.Equal(t, "is required", ve.Message)
}

func TestDecode(t *testing.T) {
	rv := NewRequestValidator()

	var o order
	require.NoError(t, rv.Decode(strings.NewReader(`{"items":[{"productId":2,"quantity":2}],"shippingAddress":"X"}`), &o))
	assert.Equal(t, 2, o.Items[0].Quantity)

	err := rv.Decode(strings.NewReader(`{"items":`), &o)
	assert.Equal(t, 422, apperr.StatusCode(err))

	err = rv.Decode(strings.NewReader(`{"items":[],"shippingAddress":"X"}`), &order{})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items", ve.Field)
}
