package usecase

import (
	"context"

	"axie_backend/internal/feature/axies/domain/entity"
)

// axiesUsecase serves the stored catalog back to clients.
type axiesUsecase struct {
	axies AxieRepository
}

// NewAxiesUsecase creates a new axiesUsecase.
func NewAxiesUsecase(axies AxieRepository) *axiesUsecase {
	return &axiesUsecase{axies: axies}
}

// GetAll returns the full stored snapshot, one entry per known class.
// Every class is present in the result, with an empty slice when its
// partition has no rows. No filtering, no pagination, no re-sorting;
// rows come back in whatever order the sync persisted them.
func (au *axiesUsecase) GetAll(ctx context.Context) (map[entity.Class][]entity.Axie, error) {
	out := make(map[entity.Class][]entity.Axie, len(entity.AllClasses))
	for _, class := range entity.AllClasses {
		axies, err := au.axies.FindByClass(ctx, class)
		if err != nil {
			return nil, err
		}
		if axies == nil {
			axies = []entity.Axie{}
		}
		out[class] = axies
	}
	return out, nil
}
