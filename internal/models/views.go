package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientView is the read projection of a registered individual.
type ClientView struct {
	TaxID          string `json:"taxId"`
	Name           string `json:"name"`
	BirthDate      string `json:"birthDate"`
	Address        string `json:"address"`
	AccountNumbers []int  `json:"accountNumbers"`
}

// AccountView is the read projection of an account. The withdrawal rule
// fields are only populated for checking accounts.
type AccountView struct {
	Number          int              `json:"number"`
	Branch          string           `json:"branch"`
	Holder          string           `json:"holder"`
	Balance         decimal.Decimal  `json:"balance"`
	WithdrawalLimit *decimal.Decimal `json:"withdrawalLimit,omitempty"`
	MaxWithdrawals  *int             `json:"maxWithdrawals,omitempty"`
	WithdrawalsMade int              `json:"withdrawalsMade"`
	Summary         string           `json:"summary"`
}

type EntryView struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Balance    decimal.Decimal `json:"balance"`
	RecordedAt time.Time       `json:"recordedTimestamp"`
}

type StatementView struct {
	Account AccountView     `json:"account"`
	Entries []EntryView     `json:"entries"`
	Balance decimal.Decimal `json:"balance"`
}

// TransactionView is returned for a transaction that was applied.
type TransactionView struct {
	ID            string          `json:"id"`
	AccountNumber int             `json:"accountNumber"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdTimestamp"`
}
