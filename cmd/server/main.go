package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eaglebank/bankingsim/internal/command"
	"github.com/eaglebank/bankingsim/internal/config"
	"github.com/eaglebank/bankingsim/internal/handler"
	"github.com/eaglebank/bankingsim/internal/idempotency"
	"github.com/eaglebank/bankingsim/internal/middleware"
	"github.com/eaglebank/bankingsim/internal/query"
	redisClient "github.com/eaglebank/bankingsim/internal/redis"
	"github.com/eaglebank/bankingsim/internal/repository"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// Idempotency store: Redis when configured, otherwise in-process
	var store idempotency.Store
	if cfg.RedisAddr != "" {
		redis, err := redisClient.NewClient(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redis.Close()
		store = idempotency.NewRedisStore(redis.Client, cfg.IdempotencyTTL)
		log.Printf("Using Redis idempotency store at %s", redis.Addr())
	} else {
		store = idempotency.NewMemoryStore(cfg.IdempotencyTTL)
		log.Printf("Using in-memory idempotency store")
	}

	// Registries
	clients := repository.NewClientRepository()
	accounts := repository.NewAccountRepository()

	// Command + Query services
	commandSvc := command.NewBankCommandService(clients, accounts, command.AccountRules{
		WithdrawalLimit: cfg.WithdrawalLimit,
		MaxWithdrawals:  cfg.MaxWithdrawals,
	})
	querySvc := query.NewBankQueryService(clients, accounts)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.LoggingMiddleware())
	handler.Register(router,
		handler.NewClientHandler(commandSvc, querySvc),
		handler.NewAccountHandler(commandSvc, querySvc),
		handler.NewTransactionHandler(commandSvc, querySvc),
		store,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Bank server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shut down: %v", err)
	}
}
