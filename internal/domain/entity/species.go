package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Species is a stock item held at the hub.
type Species struct {
	ID                      string // "spc_" + 10 hex chars
	Name                    string
	UnitCost                decimal.Decimal
	SellPrice               decimal.NullDecimal // unset when not priced yet
	Vat                     decimal.Decimal
	QtyOnHandHub            int
	QtyBookedOutForDelivery int
	IsActive                bool
	CreatedAtUtc            time.Time
}

// QtyAvailable is what remains at the hub once booked deliveries are taken out.
func (s *Species) QtyAvailable() int {
	return s.QtyOnHandHub - s.QtyBookedOutForDelivery
}
