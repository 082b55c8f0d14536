package dynamo

import (
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Shared attribute names.
const (
	attrPK         = "PK"
	attrSK         = "SK"
	attrEntityType = "EntityType"
	attrCreatedAt  = "CreatedAtUtc"
)

// timeLayout is written; timeLayoutNoZone is also read for items written without an offset.
const (
	timeLayout       = time.RFC3339Nano
	timeLayoutNoZone = "2006-01-02T15:04:05.999999999"
)

type itemKey struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
}

func (k itemKey) marshal() (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(k)
}

func strValue(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func decimalValue(d decimal.Decimal) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: d.String()}
}

func nullDecimalValue(d decimal.NullDecimal) types.AttributeValue {
	if !d.Valid {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return decimalValue(d.Decimal)
}

func intValue(n int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(n)}
}

func boolValue(b bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: b}
}

func timeValue(t time.Time) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: t.UTC().Format(timeLayout)}
}

// text returns the trimmed content of an S or N member; "" otherwise.
func text(item map[string]types.AttributeValue, name string) string {
	switch v := item[name].(type) {
	case *types.AttributeValueMemberS:
		return strings.TrimSpace(v.Value)
	case *types.AttributeValueMemberN:
		return strings.TrimSpace(v.Value)
	}
	return ""
}

func str(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func decimalAttr(item map[string]types.AttributeValue, name string) decimal.Decimal {
	d, err := decimal.NewFromString(text(item, name))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func nullDecimalAttr(item map[string]types.AttributeValue, name string) decimal.NullDecimal {
	d, err := decimal.NewFromString(text(item, name))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func intAttr(item map[string]types.AttributeValue, name string) int {
	n, err := strconv.Atoi(text(item, name))
	if err != nil {
		return 0
	}
	return n
}

func boolAttr(item map[string]types.AttributeValue, name string) bool {
	switch v := item[name].(type) {
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberS:
		b, _ := strconv.ParseBool(strings.TrimSpace(v.Value))
		return b
	}
	return false
}

func timeAttr(item map[string]types.AttributeValue, name string) time.Time {
	s := text(item, name)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(timeLayoutNoZone, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

// idAttr reads the explicit id attribute, falling back to the id embedded in PK.
func idAttr(item map[string]types.AttributeValue, name, pkPrefix string) string {
	if id := str(item, name); id != "" {
		return id
	}
	return strings.TrimPrefix(str(item, attrPK), pkPrefix)
}
