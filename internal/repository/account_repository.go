package repository

import (
	"errors"
	"sync"

	"github.com/eaglebank/bankingsim/internal/bank"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the in-memory registry of every account in the bank.
// Account numbers are assigned as count(existing accounts) + 1.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []bank.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// NextNumber returns the number the next created account will receive.
func (r *AccountRepository) NextNumber() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts) + 1
}

// Create builds an account with the next number and stores it. Number
// assignment and insertion happen under one lock.
func (r *AccountRepository) Create(open func(number int) bank.Account) bank.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := open(len(r.accounts) + 1)
	r.accounts = append(r.accounts, account)
	return account
}

func (r *AccountRepository) GetByNumber(number int) (bank.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if number < 1 || number > len(r.accounts) {
		return nil, ErrAccountNotFound
	}
	return r.accounts[number-1], nil
}

// List returns accounts in creation order.
func (r *AccountRepository) List() []bank.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]bank.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// FindForClient returns the client's account with the given number, or the
// client's first account when number is 0. Accounts owned by someone else are
// reported as not found.
func (r *AccountRepository) FindForClient(client *bank.Client, number int) (bank.Account, error) {
	if number == 0 {
		return client.PrimaryAccount()
	}
	account, err := r.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	for _, owned := range client.Accounts() {
		if owned == account {
			return account, nil
		}
	}
	return nil, ErrAccountNotFound
}
