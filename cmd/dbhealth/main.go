package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/internal/common"
	repo "github.com/apx-soporte/warranty-tracker/internal/repository"
)

func main() {
	logger := slog.Default()
	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, db, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repo.Close(entc, db, logger)

	if err := repo.HealthCheck(ctx, db, 1*time.Second, logger); err != nil {
		log.Fatalf("DB health: FAIL (%v)", err)
	}
	log.Println("DB health: OK")

	// typed query using ent client
	items, err := repo.NewRMAItemRepository(entc, logger).List(ctx, true)
	if err != nil {
		log.Fatalf("listing warranties: %v", err)
	}

	log.Printf("warranty rows: %d", len(items))
	for i, it := range items {
		if i >= 10 {
			log.Printf("... and %d more", len(items)-10)
			break
		}
		log.Printf("- [row %d] %s", it.SheetRow, it.RMANumber)
	}
}
