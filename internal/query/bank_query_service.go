package query

import (
	"fmt"

	"github.com/eaglebank/bankingsim/internal/cqrs"
	"github.com/eaglebank/bankingsim/internal/models"
	"github.com/eaglebank/bankingsim/internal/repository"
)

type BankQueryService struct {
	clients  *repository.ClientRepository
	accounts *repository.AccountRepository
}

func NewBankQueryService(clients *repository.ClientRepository, accounts *repository.AccountRepository) *BankQueryService {
	return &BankQueryService{clients: clients, accounts: accounts}
}

func (s *BankQueryService) GetClient(q cqrs.GetClientQuery) (*models.ClientView, error) {
	client, err := s.clients.FindByTaxID(q.TaxID)
	if err != nil {
		return nil, err
	}
	return models.NewClientView(client), nil
}

// Statement lists the entries of one of the client's accounts followed by its
// current balance.
func (s *BankQueryService) Statement(q cqrs.StatementQuery) (*models.StatementView, error) {
	client, err := s.clients.FindByTaxID(q.TaxID)
	if err != nil {
		return nil, fmt.Errorf("statement: %w", err)
	}
	account, err := s.accounts.FindForClient(client.Client, q.AccountNumber)
	if err != nil {
		return nil, fmt.Errorf("statement: %w", err)
	}
	return models.NewStatementView(account), nil
}

func (s *BankQueryService) ListAccounts(q cqrs.ListAccountsQuery) ([]models.AccountView, error) {
	accounts := s.accounts.List()
	views := make([]models.AccountView, len(accounts))
	for i, a := range accounts {
		views[i] = models.NewAccountView(a)
	}
	return views, nil
}
