package main

import (
	"log"
	"os"

	"github.com/eaglebank/bankingsim/internal/cli"
	"github.com/eaglebank/bankingsim/internal/command"
	"github.com/eaglebank/bankingsim/internal/config"
	"github.com/eaglebank/bankingsim/internal/query"
	"github.com/eaglebank/bankingsim/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	clients := repository.NewClientRepository()
	accounts := repository.NewAccountRepository()

	commandSvc := command.NewBankCommandService(clients, accounts, command.AccountRules{
		WithdrawalLimit: cfg.WithdrawalLimit,
		MaxWithdrawals:  cfg.MaxWithdrawals,
	})
	querySvc := query.NewBankQueryService(clients, accounts)

	if err := cli.NewMenu(commandSvc, querySvc, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
}
