// Package cli is the interactive text menu over the command and query
// services. It reads one answer per line.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eaglebank/bankingsim/internal/bank"
	"github.com/eaglebank/bankingsim/internal/command"
	"github.com/eaglebank/bankingsim/internal/cqrs"
	"github.com/eaglebank/bankingsim/internal/models"
	"github.com/eaglebank/bankingsim/internal/repository"
	"github.com/shopspring/decimal"
)

const menuText = `
####### WELCOME ######

CHOOSE AN OPERATION

1 - WITHDRAW

2 - DEPOSIT

3 - STATEMENT

4 - REGISTER CLIENT

5 - NEW ACCOUNT

6 - LIST ACCOUNTS

0 - EXIT
`

type Commander interface {
	RegisterClient(cqrs.RegisterClientCommand) (*models.ClientView, error)
	OpenAccount(cqrs.OpenAccountCommand) (*models.AccountView, error)
	CreateTransaction(cqrs.CreateTransactionCommand) (*models.TransactionView, error)
}

type Querier interface {
	GetClient(cqrs.GetClientQuery) (*models.ClientView, error)
	Statement(cqrs.StatementQuery) (*models.StatementView, error)
	ListAccounts(cqrs.ListAccountsQuery) ([]models.AccountView, error)
}

type Menu struct {
	commands Commander
	queries  Querier
	in       *bufio.Scanner
	out      io.Writer
}

func NewMenu(commands Commander, queries Querier, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		commands: commands,
		queries:  queries,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run shows the menu until the user picks 0 or input ends.
func (m *Menu) Run() error {
	for {
		option, ok := m.prompt(menuText)
		if !ok {
			return m.in.Err()
		}
		switch option {
		case "1":
			m.transact("withdrawal", "Enter the withdrawal amount:", "Withdrawal completed!")
		case "2":
			m.transact("deposit", "Enter the deposit amount:", "Deposit completed!")
		case "3":
			m.statement()
		case "4":
			m.register()
		case "5":
			m.newAccount()
		case "6":
			m.listAccounts()
		case "0":
			return nil
		default:
			m.println("Invalid option, please select again.")
		}
	}
}

func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) println(a ...any) {
	fmt.Fprintln(m.out, a...)
}

func (m *Menu) transact(kind, amountPrompt, done string) {
	taxID, ok := m.prompt("Enter your tax id:")
	if !ok {
		return
	}
	if _, err := m.queries.GetClient(cqrs.GetClientQuery{TaxID: taxID}); err != nil {
		m.report(err)
		return
	}
	raw, ok := m.prompt(amountPrompt)
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		m.report(bank.ErrInvalidAmount)
		return
	}

	_, err = m.commands.CreateTransaction(cqrs.CreateTransactionCommand{
		TaxID:  taxID,
		Type:   kind,
		Amount: amount,
	})
	if err != nil {
		m.report(err)
		return
	}
	m.println(done)
}

func (m *Menu) statement() {
	taxID, ok := m.prompt("Enter your tax id:")
	if !ok {
		return
	}
	statement, err := m.queries.Statement(cqrs.StatementQuery{TaxID: taxID})
	if err != nil {
		m.report(err)
		return
	}

	m.println("--- STATEMENT ---")
	if len(statement.Entries) == 0 {
		m.println("No transactions recorded.")
	}
	for _, e := range statement.Entries {
		fmt.Fprintf(m.out, "%s: R$%s\n", e.Type, e.Amount.StringFixed(2))
	}
	fmt.Fprintf(m.out, "\nBalance: R$%s\n", statement.Balance.StringFixed(2))
}

func (m *Menu) register() {
	taxID, ok := m.prompt("Enter your tax id:")
	if !ok {
		return
	}
	if _, err := m.queries.GetClient(cqrs.GetClientQuery{TaxID: taxID}); err == nil {
		m.report(repository.ErrClientExists)
		return
	}

	var answers [3]string
	for i, p := range []string{"Enter your full name:", "Enter your birth date (dd-mm-yyyy):", "Enter your address:"} {
		if answers[i], ok = m.prompt(p); !ok {
			return
		}
	}
	_, err := m.commands.RegisterClient(cqrs.RegisterClientCommand{
		TaxID:     taxID,
		Name:      answers[0],
		BirthDate: answers[1],
		Address:   answers[2],
	})
	if err != nil {
		m.report(err)
		return
	}
	m.println("Client registered!")
}

func (m *Menu) newAccount() {
	taxID, ok := m.prompt("Enter your tax id:")
	if !ok {
		return
	}
	if _, err := m.commands.OpenAccount(cqrs.OpenAccountCommand{TaxID: taxID}); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			m.println("Client not found, account creation cancelled!")
			return
		}
		m.report(err)
		return
	}
	m.println("Account created!")
}

func (m *Menu) listAccounts() {
	accounts, err := m.queries.ListAccounts(cqrs.ListAccountsQuery{})
	if err != nil {
		m.report(err)
		return
	}
	for _, a := range accounts {
		m.println(strings.Repeat("=", 100))
		m.println(a.Summary)
	}
}

// report prints one message per failure kind.
func (m *Menu) report(err error) {
	var verr *command.ValidationError
	switch {
	case errors.As(err, &verr):
		m.println("Invalid data:", verr.Error())
	case errors.Is(err, repository.ErrClientNotFound):
		m.println("Client not found!")
	case errors.Is(err, repository.ErrClientExists):
		m.println("A client with this tax id already exists!")
	case errors.Is(err, bank.ErrNoAccount):
		m.println("This client has no account!")
	case errors.Is(err, bank.ErrInvalidAmount):
		m.println("Operation failed: the amount is invalid.")
	case errors.Is(err, bank.ErrInsufficientFunds):
		m.println("Operation failed: insufficient funds.")
	case errors.Is(err, bank.ErrWithdrawalLimitExceeded):
		m.println("Operation failed: withdrawal limit exceeded.")
	case errors.Is(err, bank.ErrWithdrawalCountExceeded):
		m.println("Operation failed: maximum number of withdrawals reached.")
	default:
		m.println("Operation failed:", err)
	}
}
