package repository

import (
	"context"

	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
)

// ClientRepository is the persistence port for Client.
type ClientRepository interface {
	// Create stores a new client; ErrConflict when the ID is taken.
	Create(ctx context.Context, client *entity.Client) error
	// Update replaces an existing client; ErrNotFound when it does not exist.
	Update(ctx context.Context, client *entity.Client) error
	// Get returns (nil, nil) when the client does not exist.
	Get(ctx context.Context, id string) (*entity.Client, error)
	// List returns at most limit clients (limit is clamped to [1, 200]).
	List(ctx context.Context, limit int) ([]*entity.Client, error)
	// Delete is idempotent.
	Delete(ctx context.Context, id string) error
}
