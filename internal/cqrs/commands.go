package cqrs

import "github.com/shopspring/decimal"

type RegisterClientCommand struct {
	TaxID     string `validate:"required"`
	Name      string `validate:"required"`
	BirthDate string `validate:"required"`
	Address   string `validate:"required"`
}

type OpenAccountCommand struct {
	TaxID string `validate:"required"`
}

// CreateTransactionCommand moves money in or out of one of the client's
// accounts. AccountNumber 0 selects the client's first account.
type CreateTransactionCommand struct {
	TaxID         string `validate:"required"`
	AccountNumber int    `validate:"gte=0"`
	Type          string `validate:"required,oneof=deposit withdrawal"`
	Amount        decimal.Decimal
}
