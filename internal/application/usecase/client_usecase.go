package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kwawicks/kwawicks-api/internal/application/dto"
	"github.com/kwawicks/kwawicks-api/internal/domain"
	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
	"github.com/kwawicks/kwawicks-api/internal/domain/repository"
)

// ClientUseCase CRUD for clients.
type ClientUseCase struct {
	repo repository.ClientRepository
}

func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create assigns a dashless UUID and both timestamps, then stores the client.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := time.Now().UTC()
	client := &entity.Client{
		ID:             strings.ReplaceAll(uuid.NewString(), "-", ""),
		Name:           strings.TrimSpace(in.ClientName),
		Address:        strings.TrimSpace(in.ClientAddress),
		ContactDetails: strings.TrimSpace(in.ClientContactDetails),
		Type:           in.ClientType,
		CreatedAtUtc:   now,
		UpdatedAtUtc:   now,
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Get returns (nil, nil) when the client does not exist.
func (uc *ClientUseCase) Get(ctx context.Context, id string) (*dto.ClientResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	client, err := uc.repo.Get(ctx, id)
	if err != nil || client == nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func (uc *ClientUseCase) List(ctx context.Context, limit int) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update replaces name, address, contact details and type. Returns (nil, nil)
// when the client does not exist, including when it vanishes mid-update.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	client, err := uc.repo.Get(ctx, id)
	if err != nil || client == nil {
		return nil, err
	}

	client.Name = strings.TrimSpace(in.ClientName)
	client.Address = strings.TrimSpace(in.ClientAddress)
	client.ContactDetails = strings.TrimSpace(in.ClientContactDetails)
	client.Type = in.ClientType
	if err := validateClient(client); err != nil {
		return nil, err
	}
	client.UpdatedAtUtc = time.Now().UTC()

	if err := uc.repo.Update(ctx, client); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete is idempotent.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return uc.repo.Delete(ctx, id)
}

func validateClient(c *entity.Client) error {
	if c.Name == "" {
		return domain.NewValidationError("clientName", "ClientName is required.")
	}
	if !c.Type.Valid() {
		return domain.NewValidationError("clientType", "ClientType must be COD or Credit.")
	}
	return nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ClientID:             c.ID,
		ClientName:           c.Name,
		ClientAddress:        c.Address,
		ClientContactDetails: c.ContactDetails,
		ClientType:           c.Type,
		CreatedAtUtc:         c.CreatedAtUtc,
		UpdatedAtUtc:         c.UpdatedAtUtc,
	}
}
