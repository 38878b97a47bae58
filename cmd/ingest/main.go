// Command ingest runs the catalog sync once against the configured
// marketplace and exits.
package main

import (
	"context"
	"log"
	"time"

	"axie_backend/internal/app/di"
	"axie_backend/internal/config"
	axieadapters "axie_backend/internal/feature/axies/adapters"
	axiesusecase "axie_backend/internal/feature/axies/usecase"
	infradb "axie_backend/internal/platform/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db := infradb.OpenDB(cfg.DB)
	marketplaceClient := di.NewMarketplaceClient(cfg.Marketplace)
	axieRepo := axieadapters.NewAxieRepository(db)
	uc := axiesusecase.NewSyncUsecase(marketplaceClient, axieRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := uc.Sync(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("sync ok")
}
