package handler

import (
	"net/http"
	"strconv"

	"github.com/eaglebank/bankingsim/internal/cqrs"
	"github.com/eaglebank/bankingsim/internal/middleware"
	"github.com/eaglebank/bankingsim/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	CreateTransaction(cqrs.CreateTransactionCommand) (*models.TransactionView, error)
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	Statement(cqrs.StatementQuery) (*models.StatementView, error)
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

// CreateTransactionRequest omits accountNumber to use the client's first account.
type CreateTransactionRequest struct {
	Type          string          `json:"type" validate:"required,oneof=deposit withdrawal"`
	Amount        decimal.Decimal `json:"amount"`
	AccountNumber int             `json:"accountNumber" validate:"gte=0"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	transaction, err := h.commands.CreateTransaction(cqrs.CreateTransactionCommand{
		TaxID:         c.Param("taxId"),
		AccountNumber: req.AccountNumber,
		Type:          req.Type,
		Amount:        req.Amount,
	})
	if err != nil {
		respondWithServiceError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

func (h *TransactionHandler) Statement(c *gin.Context) {
	accountNumber := 0
	if raw := c.Query("accountNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid account number")
			return
		}
		accountNumber = n
	}

	statement, err := h.queries.Statement(cqrs.StatementQuery{
		TaxID:         c.Param("taxId"),
		AccountNumber: accountNumber,
	})
	if err != nil {
		respondWithServiceError(c, err, "Failed to get statement")
		return
	}

	c.JSON(http.StatusOK, statement)
}
