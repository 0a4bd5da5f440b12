package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken          string
	MongoURI          string
	MongoDatabase     string
	AdminPort         string
	AdminPasswordHash string
	JWTSecret         string
	AppEnv            string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDatabase:     os.Getenv("MONGO_DATABASE"),
		AdminPort:         os.Getenv("ADMIN_PORT"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AppEnv:            os.Getenv("APP_ENV"),
	}

	// The bot token is the only fatal startup condition.
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	if !cfg.PersistenceEnabled() {
		log.Println("MONGO_URI/MONGO_DATABASE not set, starting without persistence")
	}

	return cfg
}

// PersistenceEnabled reports whether the storage backend is configured.
// Without it the bot still serves static replies; order and user features
// answer with a per-request apology instead.
func (c *Config) PersistenceEnabled() bool {
	return c.MongoURI != "" && c.MongoDatabase != ""
}

// AdminEnabled reports whether the operator API can be served.
func (c *Config) AdminEnabled() bool {
	return c.AdminPort != "" && c.AdminPasswordHash != "" && c.JWTSecret != ""
}
