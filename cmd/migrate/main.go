package main

import (
	"context"
	"flag"
	"log"

	"tebaba-backend/config"
	"tebaba-backend/internal/database"
	"tebaba-backend/pkg/logger"
)

// Manual schema reconciliation. Without flags it only adds missing tables
// and columns; -destructive also drops whatever storage has that the model
// does not declare.
func main() {
	destructive := flag.Bool("destructive", false, "drop tables and columns absent from the declared model")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer logger.L.Sync()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := database.NewMigrator(pool).Migrate(context.Background(), *destructive); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
