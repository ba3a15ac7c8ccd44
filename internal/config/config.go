package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración del servicio, parseada de env vars.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Storage: si DBDSN viene, Postgres; si no y MongoURI viene, Mongo;
	// si no, repos in-memory (modo dev).
	DBDSN         string `env:"DB_DSN"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"pocketpets"`

	// Auth: JWTSecret habilita verificación local HS256; AccountsURL
	// habilita verificación remota contra el servicio de cuentas.
	// Sin ninguno de los dos, modo dev (X-Debug-User-ID).
	AuthJWTSecret  string `env:"AUTH_JWT_SECRET"`
	AccountsURL    string `env:"ACCOUNTS_URL"`
	AccountsAPIKey string `env:"ACCOUNTS_API_KEY"`

	// Balance inicial acreditado al crear un jugador.
	StartingBalance int `env:"STARTING_BALANCE" envDefault:"100"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
