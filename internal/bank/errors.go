package bank

import "errors"

// Every rejected operation leaves balance and history untouched.
var (
	// ErrInvalidAmount is returned for a deposit or withdrawal of zero or less.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalLimitExceeded is returned when a single withdrawal exceeds the
	// per-withdrawal limit of a checking account.
	ErrWithdrawalLimitExceeded = errors.New("withdrawal limit exceeded")

	// ErrWithdrawalCountExceeded is returned when a checking account has already
	// made its maximum number of withdrawals.
	ErrWithdrawalCountExceeded = errors.New("maximum number of withdrawals reached")

	ErrNoAccount   = errors.New("client has no account")
	ErrUnknownKind = errors.New("unknown transaction type")
)
