// Package bank holds the account and transaction state machine: balances,
// withdrawal rules, per-account history and the client that applies
// transactions. It has no I/O; callers decide how to report failures.
package bank

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// BranchCode is the branch every account belongs to.
const BranchCode = "0001"

// Owner is the client side of an account, used for display only.
type Owner interface {
	DisplayName() string
}

// Account is implemented by *BasicAccount and *CheckingAccount.
type Account interface {
	Number() int
	Branch() string
	Balance() decimal.Decimal
	Owner() Owner
	History() *History

	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error

	// Exclusive runs fn while holding the account's transaction lock, so a
	// check-mutate-record sequence is not interleaved with another one.
	Exclusive(fn func() error) error
}

// BasicAccount applies the base rules: positive amounts and no overdraft.
type BasicAccount struct {
	number  int
	owner   Owner
	history *History

	txMu    sync.Mutex
	mu      sync.RWMutex
	balance decimal.Decimal
}

// OpenAccount returns a zero-balance account bound to owner and number.
func OpenAccount(owner Owner, number int) *BasicAccount {
	return &BasicAccount{
		number:  number,
		owner:   owner,
		history: NewHistory(),
		balance: decimal.Zero,
	}
}

func (a *BasicAccount) Number() int       { return a.number }
func (a *BasicAccount) Branch() string    { return BranchCode }
func (a *BasicAccount) Owner() Owner      { return a.owner }
func (a *BasicAccount) History() *History { return a.history }

func (a *BasicAccount) Balance() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balance
}

func (a *BasicAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return nil
}

func (a *BasicAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *BasicAccount) Exclusive(fn func() error) error {
	a.txMu.Lock()
	defer a.txMu.Unlock()
	return fn()
}

func (a *BasicAccount) String() string {
	return fmt.Sprintf("Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s", a.Branch(), a.number, a.owner.DisplayName())
}
