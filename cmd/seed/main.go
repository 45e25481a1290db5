package main

import (
	"context"
	"log"
	"time"

	"github.com/sipline/drink_shop/internal/config"
	"github.com/sipline/drink_shop/internal/db"
	"github.com/sipline/drink_shop/internal/seed"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	n, err := seed.Run(database)
	if err != nil {
		log.Fatalf("seed error: %v", err)
	}
	if n == 0 {
		log.Println("Drinks table already populated, nothing to do")
		return
	}
	log.Printf("Drinks table populated with %d drinks", n)
}
