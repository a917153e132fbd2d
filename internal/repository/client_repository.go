package repository

import (
	"errors"
	"sync"

	"github.com/eaglebank/bankingsim/internal/bank"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientExists   = errors.New("client with this tax id already exists")
)

// ClientRepository is the in-memory registry of natural-person clients, keyed
// by tax id. It lives for the lifetime of the process.
type ClientRepository struct {
	mu      sync.RWMutex
	byTaxID map[string]*bank.Individual
	order   []*bank.Individual
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{byTaxID: make(map[string]*bank.Individual)}
}

// Add registers a client. At most one client per tax id is accepted.
func (r *ClientRepository) Add(client *bank.Individual) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTaxID[client.TaxID()]; ok {
		return ErrClientExists
	}
	r.byTaxID[client.TaxID()] = client
	r.order = append(r.order, client)
	return nil
}

func (r *ClientRepository) FindByTaxID(taxID string) (*bank.Individual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.byTaxID[taxID]
	if !ok {
		return nil, ErrClientNotFound
	}
	return client, nil
}

// List returns clients in registration order.
func (r *ClientRepository) List() []*bank.Individual {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*bank.Individual, len(r.order))
	copy(out, r.order)
	return out
}
