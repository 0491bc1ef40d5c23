package cashcard

import (
	"encoding/json"
	"errors"

	"github.com/cashcard-io/backend/internal/models"
	"github.com/shopspring/decimal"
)

var (
	errIDSetOnCreate = errors.New("the id must not be set when creating a cash card, it is assigned by the backend")
	errAmountMissing = errors.New("the amount must be set to a decimal number")
	errAmountInvalid = errors.New("the amount is not parseable as a decimal number")
)

// CashCard is the wire representation of a cash card.
//
// The id is a pointer so that a create request that does not set it can be
// told apart from one setting it to a value.
type CashCard struct {
	ID     *uint64         `json:"id" example:"99"`
	Amount decimal.Decimal `json:"amount" example:"123.45" swaggertype:"number"`
}

// newCashCard maps a stored cash card to its wire representation.
func newCashCard(card models.CashCard) CashCard {
	id := card.ID
	return CashCard{
		ID:     &id,
		Amount: card.Amount,
	}
}

// MarshalJSON encodes the amount as a bare JSON number with the scale it was
// supplied with, so 1.00 stays 1.00 and does not become 1 or "1.00". The
// default decimal encoding would quote it and trim trailing zeros.
func (ca CashCard) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     *uint64     `json:"id"`
		Amount json.Number `json:"amount"`
	}{
		ID:     ca.ID,
		Amount: json.Number(amountString(ca.Amount)),
	})
}

// amountString renders an amount with all decimal places it carries.
// Decimal's String trims trailing zeros.
func amountString(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < 0 {
		return amount.StringFixed(-exp)
	}

	return amount.String()
}

// UnmarshalJSON decodes a request body, enforcing that the amount is present
// and a decimal number.
func (ca *CashCard) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID     *uint64         `json:"id"`
		Amount json.RawMessage `json:"amount"`
	}

	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	if len(wire.Amount) == 0 || string(wire.Amount) == "null" {
		return errAmountMissing
	}

	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(wire.Amount); err != nil {
		return errAmountInvalid
	}

	ca.ID = wire.ID
	ca.Amount = amount

	return nil
}
