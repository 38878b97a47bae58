// Package usecase implements the catalog sync pipeline and the read service
// for the axies feature.
package usecase

import (
	"context"
	"log/slog"

	"axie_backend/internal/feature/axies/domain/entity"
)

// MarketplaceRepository fetches the current listings from the external
// marketplace. Following Go convention: interfaces are defined by the
// consumer (usecase), not the provider (adapters).
type MarketplaceRepository interface {
	// FetchAxies returns one page of normalized listings, or an error that
	// aborts the sync.
	FetchAxies(ctx context.Context) ([]entity.Axie, error)
}

// AxieRepository abstracts the partitioned listing store.
type AxieRepository interface {
	// UpsertBatch inserts or overwrites listings keyed by (class, axie_id).
	UpsertBatch(ctx context.Context, axies []entity.Axie) error

	// FindByClass returns every stored listing in one class partition.
	FindByClass(ctx context.Context, class entity.Class) ([]entity.Axie, error)
}

// SyncUsecase pulls the marketplace catalog and reconciles it into the store.
type SyncUsecase struct {
	marketplace MarketplaceRepository
	axies       AxieRepository
}

// NewSyncUsecase creates a new SyncUsecase.
func NewSyncUsecase(marketplace MarketplaceRepository, axies AxieRepository) *SyncUsecase {
	return &SyncUsecase{marketplace: marketplace, axies: axies}
}

// Sync fetches the catalog once, classifies each listing and upserts the
// recognized ones. Listings with an unknown class are skipped without an
// error; any other failure aborts the sync before anything is written.
// One attempt, no retries. The trigger is caller-initiated.
func (su *SyncUsecase) Sync(ctx context.Context) error {
	fetched, err := su.marketplace.FetchAxies(ctx)
	if err != nil {
		return err
	}

	keep := make([]entity.Axie, 0, len(fetched))
	for _, a := range fetched {
		class, ok := entity.ClassFromString(a.Class)
		if !ok {
			// Deliberately silent: the upstream occasionally reports
			// classes outside the nine known ones.
			slog.Debug("skipping axie with unknown class", "axie_id", a.AxieID, "class", a.Class)
			continue
		}
		a.Class = string(class)
		keep = append(keep, a)
	}

	return su.axies.UpsertBatch(ctx, keep)
}
