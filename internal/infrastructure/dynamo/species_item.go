package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
)

const (
	speciesPKPrefix   = "SPECIES#"
	speciesSK         = "META"
	speciesEntityType = "Species"

	attrSpeciesID = "SpeciesId"
	attrName      = "Name"
	attrUnitCost  = "UnitCost"
	attrSellPrice = "SellPrice"
	attrVat       = "Vat"
	attrQtyOnHand = "QtyOnHandHub"
	attrQtyBooked = "QtyBookedOutForDelivery"
	attrIsActive  = "IsActive"
)

func speciesKey(id string) itemKey {
	return itemKey{PK: speciesPKPrefix + id, SK: speciesSK}
}

func encodeSpecies(s *entity.Species) map[string]types.AttributeValue {
	k := speciesKey(s.ID)
	return map[string]types.AttributeValue{
		attrPK:         strValue(k.PK),
		attrSK:         strValue(k.SK),
		attrEntityType: strValue(speciesEntityType),
		attrSpeciesID:  strValue(s.ID),
		attrName:       strValue(s.Name),
		attrUnitCost:   decimalValue(s.UnitCost),
		attrSellPrice:  nullDecimalValue(s.SellPrice),
		attrVat:        decimalValue(s.Vat),
		attrQtyOnHand:  intValue(s.QtyOnHandHub),
		attrQtyBooked:  intValue(s.QtyBookedOutForDelivery),
		attrIsActive:   boolValue(s.IsActive),
		attrCreatedAt:  timeValue(s.CreatedAtUtc),
	}
}

// decodeSpecies tolerates items written before Vat and the quantities existed.
func decodeSpecies(item map[string]types.AttributeValue) *entity.Species {
	return &entity.Species{
		ID:                      idAttr(item, attrSpeciesID, speciesPKPrefix),
		Name:                    str(item, attrName),
		UnitCost:                decimalAttr(item, attrUnitCost),
		SellPrice:               nullDecimalAttr(item, attrSellPrice),
		Vat:                     decimalAttr(item, attrVat),
		QtyOnHandHub:            intAttr(item, attrQtyOnHand),
		QtyBookedOutForDelivery: intAttr(item, attrQtyBooked),
		IsActive:                boolAttr(item, attrIsActive),
		CreatedAtUtc:            timeAttr(item, attrCreatedAt),
	}
}
