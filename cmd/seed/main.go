package main

import (
	"context"
	"log"
	"time"

	"github.com/vmaksimov/storefront/internal/config"
	"github.com/vmaksimov/storefront/internal/db"
	"github.com/vmaksimov/storefront/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	cfg.Require("DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Open(ctx, cfg.DATABASE_URL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	if err := seed.Run(ctx, database); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	log.Println("catalog seeded")
}
