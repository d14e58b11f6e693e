package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	ServerAddr      string // port the http server listens on
	PostgresConnStr string
	AdminSecretKey  string // single shared admin secret; empty means admin routes fail closed
}

// Env holds the process configuration, read once at startup. A local .env
// file is honored when present so dev setups don't need exported variables.
var Env = load()

func load() *EnvConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env file: %v\n", err)
	}

	return &EnvConfig{
		ServerAddr:      getEnv("SERVER_ADDR", "8080"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		AdminSecretKey:  getEnv("ADMIN_SECRET_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
