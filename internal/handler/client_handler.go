package handler

import (
	"net/http"

	"github.com/eaglebank/bankingsim/internal/cqrs"
	"github.com/eaglebank/bankingsim/internal/middleware"
	"github.com/eaglebank/bankingsim/internal/models"
	"github.com/gin-gonic/gin"
)

// ClientCommander defines the write-side operations used by ClientHandler.
type ClientCommander interface {
	RegisterClient(cqrs.RegisterClientCommand) (*models.ClientView, error)
}

// ClientQuerier defines the read-side operations used by ClientHandler.
type ClientQuerier interface {
	GetClient(cqrs.GetClientQuery) (*models.ClientView, error)
}

type ClientHandler struct {
	commands ClientCommander
	queries  ClientQuerier
}

type RegisterClientRequest struct {
	TaxID     string `json:"taxId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	BirthDate string `json:"birthDate" validate:"required"`
	Address   string `json:"address" validate:"required"`
}

func NewClientHandler(commands ClientCommander, queries ClientQuerier) *ClientHandler {
	return &ClientHandler{commands: commands, queries: queries}
}

func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	client, err := h.commands.RegisterClient(cqrs.RegisterClientCommand{
		TaxID:     req.TaxID,
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Address:   req.Address,
	})
	if err != nil {
		respondWithServiceError(c, err, "Failed to register client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.queries.GetClient(cqrs.GetClientQuery{TaxID: c.Param("taxId")})
	if err != nil {
		respondWithServiceError(c, err, "Failed to get client")
		return
	}

	c.JSON(http.StatusOK, client)
}
