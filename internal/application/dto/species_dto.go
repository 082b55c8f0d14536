package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSpeciesRequest is the body of POST /api/species.
type CreateSpeciesRequest struct {
	Name                    string              `json:"name"`
	UnitCost                decimal.Decimal     `json:"unitCost"`
	SellPrice               decimal.NullDecimal `json:"sellPrice"`
	Vat                     decimal.Decimal     `json:"vat"`
	QtyOnHandHub            int                 `json:"qtyOnHandHub"`
	QtyBookedOutForDelivery int                 `json:"qtyBookedOutForDelivery"`
}

// UpdateSpeciesRequest replaces every mutable field. A missing isActive means true.
type UpdateSpeciesRequest struct {
	Name                    string              `json:"name"`
	UnitCost                decimal.Decimal     `json:"unitCost"`
	SellPrice               decimal.NullDecimal `json:"sellPrice"`
	IsActive                *bool               `json:"isActive"`
	Vat                     decimal.Decimal     `json:"vat"`
	QtyOnHandHub            int                 `json:"qtyOnHandHub"`
	QtyBookedOutForDelivery int                 `json:"qtyBookedOutForDelivery"`
}

type SpeciesResponse struct {
	SpeciesID               string              `json:"speciesId"`
	Name                    string              `json:"name"`
	UnitCost                decimal.Decimal     `json:"unitCost"`
	SellPrice               decimal.NullDecimal `json:"sellPrice"`
	IsActive                bool                `json:"isActive"`
	CreatedAtUtc            time.Time           `json:"createdAtUtc"`
	Vat                     decimal.Decimal     `json:"vat"`
	QtyOnHandHub            int                 `json:"qtyOnHandHub"`
	QtyBookedOutForDelivery int                 `json:"qtyBookedOutForDelivery"`
	QtyAvailable            int                 `json:"qtyAvailable"`
}
