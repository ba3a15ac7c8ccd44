package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"pocket-pets/internal/adapters/auth/accounts"
	"pocket-pets/internal/adapters/auth/jwtauth"
	mdb "pocket-pets/internal/adapters/storage/mongo"
	pg "pocket-pets/internal/adapters/storage/postgres"
	"pocket-pets/internal/config"
	"pocket-pets/internal/platform/logger"
	"pocket-pets/internal/ports/auth"
	"pocket-pets/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	appLog := logger.NewFromEnv()

	// Storage: Postgres > Mongo > in-memory (dev)
	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("postgres error: %v", err)
		}
		defer db.Close()
		appLog.Info("storage backend ready", map[string]any{"backend": "postgres"})
	}

	var mongoCli *mdb.Client
	if db == nil && cfg.MongoURI != "" {
		mongoCli, err = mdb.Open(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatalf("mongo error: %v", err)
		}
		defer func() { _ = mongoCli.Close() }()
		appLog.Info("storage backend ready", map[string]any{"backend": "mongo"})
	}

	if db == nil && mongoCli == nil {
		appLog.Warn("no storage configured, using in-memory repos", nil)
	}

	// Auth: secreto local > servicio de cuentas > modo dev
	var verifier auth.AuthVerifier
	switch {
	case cfg.AuthJWTSecret != "":
		verifier = jwtauth.NewVerifier(cfg.AuthJWTSecret)
		appLog.Info("auth verifier ready", map[string]any{"mode": "jwt"})
	case cfg.AccountsURL != "":
		client, err := accounts.NewClient(accounts.Config{
			BaseURL: cfg.AccountsURL,
			APIKey:  cfg.AccountsAPIKey,
		})
		if err != nil {
			log.Fatalf("accounts client error: %v", err)
		}
		verifier = accounts.NewVerifier(client)
		appLog.Info("auth verifier ready", map[string]any{"mode": "accounts"})
	default:
		appLog.Warn("no auth verifier configured, dev mode enabled", nil)
	}

	opts := router.Options{
		AuthVerifier:    verifier,
		DB:              db,
		Log:             appLog,
		StartingBalance: cfg.StartingBalance,
	}
	if mongoCli != nil {
		opts.Mongo = mongoCli.Database()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
