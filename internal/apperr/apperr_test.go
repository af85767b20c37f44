package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", NotFound("product", 9), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("update: %w", NotFound("order", 3)), http.StatusNotFound},
		{"payment", &PaymentError{Method: "Cash", Message: "nope"}, http.StatusPaymentRequired},
		{"validation", Invalid("shippingAddress", "is required"), http.StatusUnprocessableEntity},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "product with id 7 not found", NotFound("product", 7).Error())
	assert.Equal(t, "quantity: must be greater than 0", Invalid("quantity", "must be greater than 0").Error())
	assert.True(t, IsNotFound(fmt.Errorf("x: %w", NotFound("receipt", 1))))
	assert.False(t, IsNotFound(errors.New("x")))
}
