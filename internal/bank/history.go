package bank

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies a transaction variant.
type Kind string

const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

// Entry is one completed transaction in an account history. Balance is the
// account balance right after the transaction.
type Entry struct {
	ID         uuid.UUID
	Kind       Kind
	Amount     decimal.Decimal
	Balance    decimal.Decimal
	RecordedAt time.Time
}

// History is the append-only record of an account's completed transactions.
// Entries are kept in append order; counts per kind are maintained on append so
// limit checks do not rescan the list.
type History struct {
	mu      sync.RWMutex
	entries []Entry
	counts  map[Kind]int
}

func NewHistory() *History {
	return &History{counts: make(map[Kind]int)}
}

// Record appends an entry and returns it.
func (h *History) Record(kind Kind, amount, balance decimal.Decimal, at time.Time) Entry {
	e := Entry{ID: uuid.New(), Kind: kind, Amount: amount, Balance: balance, RecordedAt: at}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
	h.counts[kind]++
	return e
}

// Entries returns a copy of the entries in append order.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Count returns the number of entries of the given kind.
func (h *History) Count(kind Kind) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.counts[kind]
}
