package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DATABASE_URL   string
	SERVER_PORT    string
	LOG_LEVEL      string
	JWT_SECRET     string
	REFRESH_SECRET string
	KAFKA_ADDRESS  string
	MAIL_TOPIC     string
	ES_URL         string
	ES_USER        string
	ES_PASSWORD    string
	ES_INDEX       string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DATABASE_URL:   os.Getenv("DATABASE_URL"),
		SERVER_PORT:    getDefault("SERVER_PORT", "8080"),
		LOG_LEVEL:      getDefault("LOG_LEVEL", "info"),
		JWT_SECRET:     os.Getenv("JWT_SECRET"),
		REFRESH_SECRET: os.Getenv("REFRESH_SECRET"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		MAIL_TOPIC:     getDefault("MAIL_TOPIC", "order_emails"),
		ES_URL:         os.Getenv("ES_URL"),
		ES_USER:        os.Getenv("ES_USER"),
		ES_PASSWORD:    os.Getenv("ES_PASSWORD"),
		ES_INDEX:       getDefault("ES_INDEX", "products"),
	}

	return config, nil
}

func getDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func (c *Config) Require(names ...string) {
	vals := map[string]string{
		"DATABASE_URL":   c.DATABASE_URL,
		"JWT_SECRET":     c.JWT_SECRET,
		"REFRESH_SECRET": c.REFRESH_SECRET,
		"KAFKA_ADDRESS":  c.KAFKA_ADDRESS,
		"ES_URL":         c.ES_URL,
	}
	for _, name := range names {
		if vals[name] == "" {
			log.Fatalf("missing required env %s", name)
		}
	}
}
