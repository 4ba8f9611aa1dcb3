package main

import (
	"fmt"
	"os"

	"github.com/yerzhan-a/charter-market/internal/auth"
	"github.com/yerzhan-a/charter-market/internal/config"
	"github.com/yerzhan-a/charter-market/internal/db"
	"github.com/yerzhan-a/charter-market/internal/excel"
	httphandler "github.com/yerzhan-a/charter-market/internal/http"
	"github.com/yerzhan-a/charter-market/internal/http/middleware"
	"github.com/yerzhan-a/charter-market/internal/logger"
	"github.com/yerzhan-a/charter-market/internal/pdf"
	"github.com/yerzhan-a/charter-market/internal/repository"
	"github.com/yerzhan-a/charter-market/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(db.Settings{
		DSN:             cfg.DB.DSN,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	accountRepo := repository.NewAccountRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	contractRepo := repository.NewContractRepository(database)

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	accountService := service.NewAccountService(accountRepo, hasher, log)
	authService := service.NewAuthService(accountRepo, hasher, log)
	charterService := service.NewCharterService(orderRepo, contractRepo, excel.NewGenerator(), pdf.NewGenerator())

	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(accountService, authService, charterService, tokenIssuer, cfg.HTTP.RequestTimeout, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting charter service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
