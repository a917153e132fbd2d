package command

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/eaglebank/bankingsim/internal/bank"
	"github.com/eaglebank/bankingsim/internal/cqrs"
	"github.com/eaglebank/bankingsim/internal/models"
	"github.com/eaglebank/bankingsim/internal/repository"
	"github.com/eaglebank/bankingsim/internal/validation"
	"github.com/shopspring/decimal"
)

var ErrInvalidCommand = errors.New("invalid command")

// ValidationError carries the field errors of a rejected command.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return ErrInvalidCommand.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidCommand }

// AccountRules are applied to every checking account opened by the service.
type AccountRules struct {
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

func DefaultAccountRules() AccountRules {
	return AccountRules{
		WithdrawalLimit: bank.DefaultWithdrawalLimit,
		MaxWithdrawals:  bank.DefaultMaxWithdrawals,
	}
}

// BankCommandService registers clients, opens accounts and applies transactions.
type BankCommandService struct {
	clients  *repository.ClientRepository
	accounts *repository.AccountRepository
	rules    AccountRules
}

func NewBankCommandService(
	clients *repository.ClientRepository,
	accounts *repository.AccountRepository,
	rules AccountRules,
) *BankCommandService {
	return &BankCommandService{
		clients:  clients,
		accounts: accounts,
		rules:    rules,
	}
}

func (s *BankCommandService) RegisterClient(cmd cqrs.RegisterClientCommand) (*models.ClientView, error) {
	if fields := validation.Struct(cmd); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	client := bank.NewIndividual(cmd.Name, cmd.TaxID, cmd.BirthDate, cmd.Address)
	if err := s.clients.Add(client); err != nil {
		return nil, fmt.Errorf("register client %s: %w", cmd.TaxID, err)
	}
	log.Printf("Registered client %s", cmd.TaxID)
	return models.NewClientView(client), nil
}

// OpenAccount opens a checking account for the client and registers it with
// both the client and the bank.
func (s *BankCommandService) OpenAccount(cmd cqrs.OpenAccountCommand) (*models.AccountView, error) {
	if fields := validation.Struct(cmd); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	client, err := s.clients.FindByTaxID(cmd.TaxID)
	if err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}
	account := s.accounts.Create(func(number int) bank.Account {
		return bank.OpenCheckingAccount(client, number,
			bank.WithWithdrawalLimit(s.rules.WithdrawalLimit),
			bank.WithMaxWithdrawals(s.rules.MaxWithdrawals),
		)
	})
	client.AddAccount(account)
	log.Printf("Opened account %d for client %s", account.Number(), cmd.TaxID)
	view := models.NewAccountView(account)
	return &view, nil
}

func (s *BankCommandService) CreateTransaction(cmd cqrs.CreateTransactionCommand) (*models.TransactionView, error) {
	if fields := validation.Struct(cmd); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	client, err := s.clients.FindByTaxID(cmd.TaxID)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	account, err := s.accounts.FindForClient(client.Client, cmd.AccountNumber)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	tx, err := bank.NewTransaction(cmd.Type, cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	entry, err := client.Perform(account, tx)
	if err != nil {
		log.Printf("Rejected %s of %s on account %d: %v", cmd.Type, cmd.Amount, account.Number(), err)
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	log.Printf("Applied %s of %s on account %d", cmd.Type, cmd.Amount, account.Number())
	return &models.TransactionView{
		ID:            entry.ID.String(),
		AccountNumber: account.Number(),
		Type:          string(entry.Kind),
		Amount:        entry.Amount,
		Balance:       entry.Balance,
		CreatedAt:     entry.RecordedAt,
	}, nil
}
