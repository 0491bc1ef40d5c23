package cashcard_test

import (
	"encoding/json"
	"testing"

	"github.com/cashcard-io/backend/internal/controllers/cashcard"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id uint64) *uint64 {
	return &id
}

// TestCashCardMarshal verifies that the amount is encoded as a bare JSON
// number with its scale kept, so 1.00 stays 1.00 and does not become 1
// or "1.00".
func TestCashCardMarshal(t *testing.T) {
	tests := []struct {
		name string
		card cashcard.CashCard
		want string
	}{
		{
			"two decimal places",
			cashcard.CashCard{ID: ptr(99), Amount: decimal.RequireFromString("123.45")},
			`{"id":99,"amount":123.45}`,
		},
		{
			"trailing zeros are kept",
			cashcard.CashCard{ID: ptr(1), Amount: decimal.RequireFromString("1.00")},
			`{"id":1,"amount":1.00}`,
		},
		{
			"no decimal places",
			cashcard.CashCard{ID: ptr(2), Amount: decimal.RequireFromString("150")},
			`{"id":2,"amount":150}`,
		},
		{
			"id is not set",
			cashcard.CashCard{Amount: decimal.RequireFromString("10.50")},
			`{"id":null,"amount":10.50}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.card)
			require.Nil(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestCashCardUnmarshal(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		id     *uint64
		amount string
	}{
		{"id and amount", `{"id": 12, "amount": 123.45}`, ptr(12), "123.45"},
		{"amount only", `{"amount": 0.01}`, nil, "0.01"},
		{"quoted amount is accepted", `{"amount": "99.00"}`, nil, "99.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var card cashcard.CashCard
			require.Nil(t, json.Unmarshal([]byte(tt.body), &card))

			assert.Equal(t, tt.id, card.ID)
			assert.True(t, card.Amount.Equal(decimal.RequireFromString(tt.amount)), "Amount is wrong: %s", card.Amount)
		})
	}
}

func TestCashCardUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"empty object", `{}`, "the amount must be set to a decimal number"},
		{"amount is null", `{"amount": null}`, "the amount must be set to a decimal number"},
		{"amount is a word", `{"amount": "a lot"}`, "the amount is not parseable as a decimal number"},
		{"amount is an object", `{"amount": {}}`, "the amount is not parseable as a decimal number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var card cashcard.CashCard
			err := json.Unmarshal([]byte(tt.body), &card)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

// TestCashCardUnmarshalTypeError verifies that type errors for fields other
// than the amount surface unchanged, they already tell the client what to fix.
func TestCashCardUnmarshalTypeError(t *testing.T) {
	var card cashcard.CashCard
	err := json.Unmarshal([]byte(`{"id": "ninety-nine", "amount": 1.00}`), &card)

	var typeError *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeError)
}

// TestCashCardRoundTrip verifies that decoding and re-encoding a cash card
// reproduces the input exactly, including the scale of the amount.
func TestCashCardRoundTrip(t *testing.T) {
	body := `{"id":99,"amount":1.00}`

	var card cashcard.CashCard
	require.Nil(t, json.Unmarshal([]byte(body), &card))

	data, err := json.Marshal(card)
	require.Nil(t, err)

	assert.Equal(t, body, string(data))
}
