package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const DefaultMaxWithdrawals = 3

// DefaultWithdrawalLimit is the largest single withdrawal a checking account allows.
var DefaultWithdrawalLimit = decimal.NewFromInt(500)

// CheckingAccount is an account with a per-withdrawal limit and a maximum
// number of withdrawals. The count covers the whole history, not a period.
type CheckingAccount struct {
	*BasicAccount

	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
}

// CheckingOption configures a CheckingAccount.
type CheckingOption func(*CheckingAccount)

func WithWithdrawalLimit(limit decimal.Decimal) CheckingOption {
	return func(c *CheckingAccount) { c.withdrawalLimit = limit }
}

func WithMaxWithdrawals(n int) CheckingOption {
	return func(c *CheckingAccount) { c.maxWithdrawals = n }
}

// OpenCheckingAccount returns a zero-balance checking account bound to owner and
// number, with a 500 limit and 3 withdrawals unless overridden.
func OpenCheckingAccount(owner Owner, number int, opts ...CheckingOption) *CheckingAccount {
	c := &CheckingAccount{
		BasicAccount:    OpenAccount(owner, number),
		withdrawalLimit: DefaultWithdrawalLimit,
		maxWithdrawals:  DefaultMaxWithdrawals,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CheckingAccount) WithdrawalLimit() decimal.Decimal { return c.withdrawalLimit }
func (c *CheckingAccount) MaxWithdrawals() int              { return c.maxWithdrawals }

// Withdraw checks the limit, then the withdrawal count, then the base rules.
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(c.withdrawalLimit) {
		return ErrWithdrawalLimitExceeded
	}
	if c.history.Count(KindWithdrawal) >= c.maxWithdrawals {
		return ErrWithdrawalCountExceeded
	}
	return c.BasicAccount.Withdraw(amount)
}

func (c *CheckingAccount) String() string {
	return fmt.Sprintf("Branch:\t\t%s\nC/C:\t\t%d\nHolder:\t\t%s", c.Branch(), c.number, c.owner.DisplayName())
}
