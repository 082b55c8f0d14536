package repository

import (
	"context"

	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
)

// SpeciesRepository is the persistence port for Species. Species are never deleted.
type SpeciesRepository interface {
	Create(ctx context.Context, species *entity.Species) error
	Update(ctx context.Context, species *entity.Species) error
	Get(ctx context.Context, id string) (*entity.Species, error)
	// List returns every species ordered by name.
	List(ctx context.Context) ([]*entity.Species, error)
}
