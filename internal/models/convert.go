package models

import (
	"fmt"

	"github.com/eaglebank/bankingsim/internal/bank"
)

func NewClientView(c *bank.Individual) *ClientView {
	accounts := c.Accounts()
	numbers := make([]int, len(accounts))
	for i, a := range accounts {
		numbers[i] = a.Number()
	}
	return &ClientView{
		TaxID:          c.TaxID(),
		Name:           c.Name(),
		BirthDate:      c.BirthDate(),
		Address:        c.Address(),
		AccountNumbers: numbers,
	}
}

func NewAccountView(a bank.Account) AccountView {
	v := AccountView{
		Number:          a.Number(),
		Branch:          a.Branch(),
		Holder:          a.Owner().DisplayName(),
		Balance:         a.Balance(),
		WithdrawalsMade: a.History().Count(bank.KindWithdrawal),
		Summary:         fmt.Sprint(a),
	}
	if c, ok := a.(*bank.CheckingAccount); ok {
		limit := c.WithdrawalLimit()
		maxWithdrawals := c.MaxWithdrawals()
		v.WithdrawalLimit = &limit
		v.MaxWithdrawals = &maxWithdrawals
	}
	return v
}

func NewEntryView(e bank.Entry) EntryView {
	return EntryView{
		ID:         e.ID.String(),
		Type:       string(e.Kind),
		Amount:     e.Amount,
		Balance:    e.Balance,
		RecordedAt: e.RecordedAt,
	}
}

// NewStatementView snapshots entries before the balance; a transaction landing
// in between shows in the balance only.
func NewStatementView(a bank.Account) *StatementView {
	entries := a.History().Entries()
	views := make([]EntryView, len(entries))
	for i, e := range entries {
		views[i] = NewEntryView(e)
	}
	account := NewAccountView(a)
	return &StatementView{
		Account: account,
		Entries: views,
		Balance: account.Balance,
	}
}
