package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
)

const (
	clientPKPrefix   = "CLIENT#"
	clientSK         = "PROFILE"
	clientEntityType = "Client"

	attrClientID      = "ClientId"
	attrClientName    = "ClientName"
	attrClientAddress = "ClientAddress"
	attrClientContact = "ClientContactDetails"
	attrClientType    = "ClientType"
	attrUpdatedAt     = "UpdatedAtUtc"
)

func clientKey(id string) itemKey {
	return itemKey{PK: clientPKPrefix + id, SK: clientSK}
}

func encodeClient(c *entity.Client) map[string]types.AttributeValue {
	k := clientKey(c.ID)
	return map[string]types.AttributeValue{
		attrPK:            strValue(k.PK),
		attrSK:            strValue(k.SK),
		attrEntityType:    strValue(clientEntityType),
		attrClientID:      strValue(c.ID),
		attrClientName:    strValue(c.Name),
		attrClientAddress: strValue(c.Address),
		attrClientContact: strValue(c.ContactDetails),
		attrClientType:    strValue(c.Type.String()),
		attrCreatedAt:     timeValue(c.CreatedAtUtc),
		attrUpdatedAt:     timeValue(c.UpdatedAtUtc),
	}
}

func decodeClient(item map[string]types.AttributeValue) *entity.Client {
	// Unknown or missing types fall back to COD.
	ct, err := entity.ParseClientType(text(item, attrClientType))
	if err != nil {
		ct = entity.ClientTypeCOD
	}
	return &entity.Client{
		ID:             idAttr(item, attrClientID, clientPKPrefix),
		Name:           str(item, attrClientName),
		Address:        str(item, attrClientAddress),
		ContactDetails: str(item, attrClientContact),
		Type:           ct,
		CreatedAtUtc:   timeAttr(item, attrCreatedAt),
		UpdatedAtUtc:   timeAttr(item, attrUpdatedAt),
	}
}
