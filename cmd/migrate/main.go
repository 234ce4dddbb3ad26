// Command migrate copies the flat-file snapshot into the configured document
// database. Run it once when promoting a flat-file deployment to MongoDB.
package main

import (
	"context"
	"log"
	"time"

	"pergunu/internal/config"
	"pergunu/internal/store"
)

func main() {
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI is required for migration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := store.NewMongo(cfg.MongoURI, cfg.MongoDB)
	if err := db.Connect(ctx); err != nil {
		log.Fatalf("mongodb connect failed: %v", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		_ = db.Close(closeCtx)
	}()

	file := store.NewFileStore(cfg.DBPath, cfg.DBSeedPath, true)
	results, err := store.Migrate(ctx, file, db)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("Migration completed:")
	for _, name := range []string{
		store.ColUsers,
		store.ColNews,
		store.ColBeasiswa,
		store.ColApplications,
		store.ColBeasiswaApplications,
		store.ColSessions,
	} {
		log.Printf("  %-22s %d", name, results[name])
	}
}
