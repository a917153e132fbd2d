package handler

import (
	"net/http"

	"github.com/eaglebank/bankingsim/internal/idempotency"
	"github.com/eaglebank/bankingsim/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Register mounts the bank API on router. Transaction creation is guarded by
// the idempotency store.
func Register(router *gin.Engine, clients *ClientHandler, accounts *AccountHandler, transactions *TransactionHandler, store idempotency.Store) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/clients", clients.RegisterClient)
		v1.GET("/clients/:taxId", clients.GetClient)
		v1.POST("/clients/:taxId/accounts", accounts.OpenAccount)
		v1.POST("/clients/:taxId/transactions", middleware.Idempotency(store), transactions.CreateTransaction)
		v1.GET("/clients/:taxId/statement", transactions.Statement)
		v1.GET("/accounts", accounts.ListAccounts)
	}
}
