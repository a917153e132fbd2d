package handler

import (
	"net/http"

	"github.com/eaglebank/bankingsim/internal/cqrs"
	"github.com/eaglebank/bankingsim/internal/models"
	"github.com/gin-gonic/gin"
)

type AccountCommander interface {
	OpenAccount(cqrs.OpenAccountCommand) (*models.AccountView, error)
}

type AccountQuerier interface {
	ListAccounts(cqrs.ListAccountsQuery) ([]models.AccountView, error)
}

type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

type ListAccountsResponse struct {
	Accounts []models.AccountView `json:"accounts"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) OpenAccount(c *gin.Context) {
	account, err := h.commands.OpenAccount(cqrs.OpenAccountCommand{TaxID: c.Param("taxId")})
	if err != nil {
		respondWithServiceError(c, err, "Failed to open account")
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.queries.ListAccounts(cqrs.ListAccountsQuery{})
	if err != nil {
		respondWithServiceError(c, err, "Failed to list accounts")
		return
	}
	if accounts == nil {
		accounts = []models.AccountView{}
	}

	c.JSON(http.StatusOK, ListAccountsResponse{Accounts: accounts})
}
