package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/schergr/interiordesign/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_DistinguishesAbsentNullAndValue(t *testing.T) {
	var req dto.UpdateContractRequest
	require.NoError(t, json.Unmarshal([]byte(`{"client_id": null, "status_id": 2, "amount": "99.5"}`), &req))

	assert.True(t, req.ClientID.Set)
	assert.False(t, req.ClientID.Valid)
	assert.Nil(t, req.ClientID.Ptr())

	assert.True(t, req.StatusID.Valid)
	assert.Equal(t, int64(2), *req.StatusID.Ptr())

	assert.True(t, req.Amount.Valid)
	assert.Equal(t, "99.50", req.Amount.Value.StringFixed(2))

	assert.False(t, req.EmployeeID.Set)
	assert.False(t, req.StartDate.Set)
}

func TestNullable_AcceptsNumericAmount(t *testing.T) {
	var req dto.UpdateInvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 100}`), &req))

	assert.Equal(t, "100.00", req.Amount.Value.StringFixed(2))
}

func TestNullable_RejectsWrongType(t *testing.T) {
	var req dto.UpdateContractRequest
	assert.Error(t, json.Unmarshal([]byte(`{"client_id": "four"}`), &req))
}

func TestNullable_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A dto.Nullable[int64]  `json:"a"`
		B dto.Nullable[string] `json:"b"`
	}{A: dto.NullableValue(int64(3)), B: dto.NullableNull[string]()})

	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(out))
}
