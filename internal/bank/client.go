package bank

import "sync"

// Client owns a postal address and the accounts opened for it, in creation
// order. Transactions reach an account only through Perform.
type Client struct {
	address string

	mu       sync.RWMutex
	accounts []Account
}

func NewClient(address string) *Client {
	return &Client{address: address}
}

func (c *Client) Address() string { return c.address }

// DisplayName is the address for a client with no personal details.
func (c *Client) DisplayName() string { return c.address }

// Perform applies tx to account on behalf of the client and returns the
// recorded history entry.
func (c *Client) Perform(account Account, tx Transaction) (Entry, error) {
	return tx.Apply(account)
}

// AddAccount appends account to the client's accounts. Duplicates are not checked.
func (c *Client) AddAccount(account Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, account)
}

func (c *Client) Accounts() []Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// PrimaryAccount returns the first account opened for the client.
func (c *Client) PrimaryAccount() (Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.accounts) == 0 {
		return nil, ErrNoAccount
	}
	return c.accounts[0], nil
}

// Individual is a natural-person client identified by a national tax id.
type Individual struct {
	*Client

	name      string
	taxID     string
	birthDate string
}

func NewIndividual(name, taxID, birthDate, address string) *Individual {
	return &Individual{
		Client:    NewClient(address),
		name:      name,
		taxID:     taxID,
		birthDate: birthDate,
	}
}

func (p *Individual) Name() string        { return p.name }
func (p *Individual) TaxID() string       { return p.taxID }
func (p *Individual) BirthDate() string   { return p.birthDate }
func (p *Individual) DisplayName() string { return p.name }
