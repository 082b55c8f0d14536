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

const speciesIDPrefix = "spc_"

// SpeciesUseCase manages the species catalogue and hub stock counts. Species cannot be deleted.
type SpeciesUseCase struct {
	repo repository.SpeciesRepository
}

func NewSpeciesUseCase(repo repository.SpeciesRepository) *SpeciesUseCase {
	return &SpeciesUseCase{repo: repo}
}

// Create stores a new active species.
func (uc *SpeciesUseCase) Create(ctx context.Context, in dto.CreateSpeciesRequest) (*dto.SpeciesResponse, error) {
	species := &entity.Species{
		ID:                      newSpeciesID(),
		Name:                    strings.TrimSpace(in.Name),
		UnitCost:                in.UnitCost,
		SellPrice:               in.SellPrice,
		Vat:                     in.Vat,
		QtyOnHandHub:            in.QtyOnHandHub,
		QtyBookedOutForDelivery: in.QtyBookedOutForDelivery,
		IsActive:                true,
		CreatedAtUtc:            time.Now().UTC(),
	}
	if err := validateSpecies(species); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, species); err != nil {
		return nil, err
	}
	return toSpeciesResponse(species), nil
}

// List returns every species ordered by name.
func (uc *SpeciesUseCase) List(ctx context.Context) ([]dto.SpeciesResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SpeciesResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSpeciesResponse(s))
	}
	return out, nil
}

func (uc *SpeciesUseCase) Get(ctx context.Context, id string) (*dto.SpeciesResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	s, err := uc.repo.Get(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	return toSpeciesResponse(s), nil
}

// Update replaces every mutable field; CreatedAtUtc and the ID are kept.
func (uc *SpeciesUseCase) Update(ctx context.Context, id string, in dto.UpdateSpeciesRequest) (*dto.SpeciesResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	s, err := uc.repo.Get(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}

	s.Name = strings.TrimSpace(in.Name)
	s.UnitCost = in.UnitCost
	s.SellPrice = in.SellPrice
	s.Vat = in.Vat
	s.QtyOnHandHub = in.QtyOnHandHub
	s.QtyBookedOutForDelivery = in.QtyBookedOutForDelivery
	s.IsActive = in.IsActive == nil || *in.IsActive
	if err := validateSpecies(s); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toSpeciesResponse(s), nil
}

func newSpeciesID() string {
	return speciesIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

func validateSpecies(s *entity.Species) error {
	switch {
	case s.Name == "":
		return domain.NewValidationError("name", "Name is required")
	case s.UnitCost.IsNegative():
		return domain.NewValidationError("unitCost", "UnitCost cannot be negative")
	case s.SellPrice.Valid && s.SellPrice.Decimal.IsNegative():
		return domain.NewValidationError("sellPrice", "SellPrice cannot be negative")
	case s.Vat.IsNegative():
		return domain.NewValidationError("vat", "Vat cannot be negative")
	case s.QtyOnHandHub < 0:
		return domain.NewValidationError("qtyOnHandHub", "QtyOnHandHub cannot be negative")
	case s.QtyBookedOutForDelivery < 0:
		return domain.NewValidationError("qtyBookedOutForDelivery", "QtyBookedOutForDelivery cannot be negative")
	case s.QtyBookedOutForDelivery > s.QtyOnHandHub:
		return domain.NewValidationError("qtyBookedOutForDelivery", "QtyBookedOutForDelivery cannot exceed QtyOnHandHub")
	}
	return nil
}

func toSpeciesResponse(s *entity.Species) *dto.SpeciesResponse {
	return &dto.SpeciesResponse{
		SpeciesID:               s.ID,
		Name:                    s.Name,
		UnitCost:                s.UnitCost,
		SellPrice:               s.SellPrice,
		IsActive:                s.IsActive,
		CreatedAtUtc:            s.CreatedAtUtc,
		Vat:                     s.Vat,
		QtyOnHandHub:            s.QtyOnHandHub,
		QtyBookedOutForDelivery: s.QtyBookedOutForDelivery,
		QtyAvailable:            s.QtyAvailable(),
	}
}
