package client

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	var a Amount

	err := json.Unmarshal([]byte(`["0.5","BTC"]`), &a)
	assert.NoError(t, err)
	assert.Equal(t, "0.5", a.Value.String())
	assert.Equal(t, "BTC", a.Currency)

	assert.Error(t, json.Unmarshal([]byte(`["zero","BTC"]`), &a))
	assert.Error(t, json.Unmarshal([]byte(`"0.5 BTC"`), &a))
}

func TestAmountMarshalJSON(t *testing.T) {
	a := Amount{Value: requireDecimal(t, "1998"), Currency: "USDT"}

	data, err := json.Marshal(a)
	assert.NoError(t, err)
	assert.JSONEq(t, `["1998","USDT"]`, string(data))
}

func TestDepositUnmarshalJSON(t *testing.T) {
	payload := `{
		"id": "D1",
		"state": "unconfirmed",
		"currency": "BTC",
		"amount": ["0.5", "BTC"],
		"created_at": "2025-03-01T12:00:00Z",
		"deposit_data": {"address": "bc1qdeposit"}
	}`

	var d Deposit
	assert.NoError(t, json.Unmarshal([]byte(payload), &d))

	assert.Equal(t, "D1", d.ID)
	assert.Equal(t, DepositUnconfirmed, d.State)
	assert.Equal(t, "0.5", d.Amount.Value.String())
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), d.CreatedAt)
	assert.Equal(t, "bc1qdeposit", d.DepositData.Address)
}
