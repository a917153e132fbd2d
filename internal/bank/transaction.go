package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a requested balance change. Deposit and Withdrawal are the
// only implementations.
type Transaction interface {
	Kind() Kind
	Amount() decimal.Decimal

	// Apply validates and applies the transaction to the account and records
	// it, with the resulting balance, in the account history. A failed
	// transaction records nothing.
	Apply(account Account) (Entry, error)
}

// Now is the clock used to timestamp history entries.
var Now = func() time.Time { return time.Now().UTC() }

type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (d Deposit) Kind() Kind              { return KindDeposit }
func (d Deposit) Amount() decimal.Decimal { return d.amount }

func (d Deposit) Apply(account Account) (Entry, error) {
	var entry Entry
	err := account.Exclusive(func() error {
		if err := account.Deposit(d.amount); err != nil {
			return err
		}
		entry = account.History().Record(KindDeposit, d.amount, account.Balance(), Now())
		return nil
	})
	return entry, err
}

type Withdrawal struct {
	amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (w Withdrawal) Kind() Kind              { return KindWithdrawal }
func (w Withdrawal) Amount() decimal.Decimal { return w.amount }

func (w Withdrawal) Apply(account Account) (Entry, error) {
	var entry Entry
	err := account.Exclusive(func() error {
		if err := account.Withdraw(w.amount); err != nil {
			return err
		}
		entry = account.History().Record(KindWithdrawal, w.amount, account.Balance(), Now())
		return nil
	})
	return entry, err
}

// NewTransaction builds a transaction from its wire name ("deposit" or
// "withdrawal", case-insensitive).
func NewTransaction(kind string, amount decimal.Decimal) (Transaction, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "deposit":
		return NewDeposit(amount), nil
	case "withdrawal":
		return NewWithdrawal(amount), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
