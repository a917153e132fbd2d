package cqrs

// ---------- Client queries ----------

// GetClientQuery fetches a single client by tax id.
type GetClientQuery struct {
	TaxID string
}

// ---------- Account queries ----------

// ListAccountsQuery fetches every account in the bank, in creation order.
type ListAccountsQuery struct{}

// StatementQuery fetches the history and balance of one of the client's
// accounts. AccountNumber 0 selects the client's first account.
type StatementQuery struct {
	TaxID         string
	AccountNumber int
}
