package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutRequest_Validate(t *testing.T) {
	item := json.RawMessage(`{"product_id":1}`)

	tests := []struct {
		name    string
		req     CheckoutRequest
		wantErr bool
	}{
		{name: "valid", req: CheckoutRequest{UserID: "u1", Items: []json.RawMessage{item}}},
		{name: "missing user", req: CheckoutRequest{Items: []json.RawMessage{item}}, wantErr: true},
		{name: "nil items", req: CheckoutRequest{UserID: "u1"}, wantErr: true},
		{name: "empty items", req: CheckoutRequest{UserID: "u1", Items: []json.RawMessage{}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Equal(t, ErrMissingFields, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckoutRequest_ItemsJSON(t *testing.T) {
	var req CheckoutRequest
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":"u1","items":[{"product_id":1,"extra":{"a":true}},{"product_id":2}]}`), &req))

	items, err := req.ItemsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"product_id":1,"extra":{"a":true}},{"product_id":2}]`, string(items))
}

func TestCheckoutResponse_OmitsNewUserID(t *testing.T) {
	data, err := json.Marshal(CheckoutResponse{Success: true, OrderID: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"order_id":7}`, string(data))

	data, err = json.Marshal(CheckoutResponse{Success: true, OrderID: 7, NewUserID: "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"order_id":7,"new_user_id":"abc"}`, string(data))
}
