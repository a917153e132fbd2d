package handler

import (
	"errors"
	"net/http"

	"github.com/eaglebank/bankingsim/internal/bank"
	"github.com/eaglebank/bankingsim/internal/command"
	"github.com/eaglebank/bankingsim/internal/middleware"
	"github.com/eaglebank/bankingsim/internal/repository"
	"github.com/gin-gonic/gin"
)

// respondWithServiceError maps a command or query error to a status code and a
// message naming the rule that rejected the request.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	var verr *command.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.RespondWithValidationError(c, verr.Fields)
	case errors.Is(err, bank.ErrInvalidAmount):
		middleware.RespondWithError(c, http.StatusBadRequest, "Amount must be greater than zero")
	case errors.Is(err, bank.ErrUnknownKind):
		middleware.RespondWithError(c, http.StatusBadRequest, "Unknown transaction type")
	case errors.Is(err, repository.ErrClientNotFound):
		middleware.RespondWithError(c, http.StatusNotFound, "Client not found")
	case errors.Is(err, repository.ErrAccountNotFound):
		middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, bank.ErrNoAccount):
		middleware.RespondWithError(c, http.StatusNotFound, "Client has no account")
	case errors.Is(err, repository.ErrClientExists):
		middleware.RespondWithError(c, http.StatusConflict, "A client with this tax id already exists")
	case errors.Is(err, bank.ErrInsufficientFunds):
		middleware.RespondWithError(c, http.StatusUnprocessableEntity, "Insufficient funds")
	case errors.Is(err, bank.ErrWithdrawalLimitExceeded):
		middleware.RespondWithError(c, http.StatusUnprocessableEntity, "Withdrawal exceeds the per-withdrawal limit")
	case errors.Is(err, bank.ErrWithdrawalCountExceeded):
		middleware.RespondWithError(c, http.StatusUnprocessableEntity, "Maximum number of withdrawals reached")
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
