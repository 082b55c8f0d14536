package dynamo

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
)

func TestClientCodec_RoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)
	in := &entity.Client{
		ID:             "0f8fad5bd9cb469fa16570867728950e",
		Name:           "Umhlanga Pet Store",
		Address:        "12 Lagoon Drive",
		ContactDetails: "031 555 0101",
		Type:           entity.ClientTypeCredit,
		CreatedAtUtc:   created,
		UpdatedAtUtc:   created.Add(time.Hour),
	}

	item := encodeClient(in)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "CLIENT#" + in.ID}, item["PK"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "PROFILE"}, item["SK"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Client"}, item["EntityType"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Credit"}, item["ClientType"])

	if diff := cmp.Diff(in, decodeClient(item)); diff != "" {
		t.Errorf("client round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSpeciesCodec_RoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		sellPrice decimal.NullDecimal
	}{
		{"priced", decimal.NewNullDecimal(decimal.RequireFromString("12.50"))},
		{"unpriced", decimal.NullDecimal{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := &entity.Species{
				ID:                      "spc_1a2b3c4d5e",
				Name:                    "Guppy",
				UnitCost:                decimal.RequireFromString("4.75"),
				SellPrice:               tc.sellPrice,
				Vat:                     decimal.RequireFromString("15"),
				QtyOnHandHub:            120,
				QtyBookedOutForDelivery: 30,
				IsActive:                true,
				CreatedAtUtc:            time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
			}

			item := encodeSpecies(in)
			if !tc.sellPrice.Valid {
				assert.Equal(t, &types.AttributeValueMemberNULL{Value: true}, item["SellPrice"])
			} else {
				assert.Equal(t, &types.AttributeValueMemberN{Value: "12.5"}, item["SellPrice"])
			}
			assert.Equal(t, &types.AttributeValueMemberN{Value: "4.75"}, item["UnitCost"])
			assert.Equal(t, &types.AttributeValueMemberBOOL{Value: true}, item["IsActive"])

			if diff := cmp.Diff(in, decodeSpecies(item)); diff != "" {
				t.Errorf("species round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeSpecies_LegacyItem(t *testing.T) {
	item := map[string]types.AttributeValue{
		"PK":       &types.AttributeValueMemberS{Value: "SPECIES#spc_00000000aa"},
		"SK":       &types.AttributeValueMemberS{Value: "META"},
		"Name":     &types.AttributeValueMemberS{Value: "Neon Tetra"},
		"UnitCost": &types.AttributeValueMemberN{Value: "3"},
	}

	s := decodeSpecies(item)
	assert.Equal(t, "spc_00000000aa", s.ID, "id falls back to PK")
	assert.True(t, s.Vat.IsZero())
	assert.Zero(t, s.QtyOnHandHub)
	assert.Zero(t, s.QtyBookedOutForDelivery)
	assert.False(t, s.SellPrice.Valid)
	assert.False(t, s.IsActive)
	assert.True(t, s.CreatedAtUtc.IsZero())
}

func TestDecodeSpecies_NumbersStoredAsStrings(t *testing.T) {
	item := map[string]types.AttributeValue{
		"SpeciesId":               &types.AttributeValueMemberS{Value: "spc_x"},
		"Vat":                     &types.AttributeValueMemberS{Value: "15.0"},
		"QtyOnHandHub":            &types.AttributeValueMemberS{Value: " 8 "},
		"QtyBookedOutForDelivery": &types.AttributeValueMemberN{Value: "2"},
		"SellPrice":               &types.AttributeValueMemberS{Value: ""},
		"UnitCost":                &types.AttributeValueMemberS{Value: "not-a-number"},
	}

	s := decodeSpecies(item)
	assert.True(t, s.Vat.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 8, s.QtyOnHandHub)
	assert.Equal(t, 2, s.QtyBookedOutForDelivery)
	assert.False(t, s.SellPrice.Valid)
	assert.True(t, s.UnitCost.IsZero())
}

func TestDecodeClient_TypeAndTimestamps(t *testing.T) {
	cases := map[string]entity.ClientType{
		"credit":  entity.ClientTypeCredit,
		"1":       entity.ClientTypeCredit,
		"0":       entity.ClientTypeCOD,
		"Prepaid": entity.ClientTypeCOD,
		"":        entity.ClientTypeCOD,
	}
	for raw, want := range cases {
		c := decodeClient(map[string]types.AttributeValue{
			"ClientId":   &types.AttributeValueMemberS{Value: "abc"},
			"ClientType": &types.AttributeValueMemberS{Value: raw},
		})
		assert.Equal(t, want, c.Type, raw)
	}

	c := decodeClient(map[string]types.AttributeValue{
		"PK":           &types.AttributeValueMemberS{Value: "CLIENT#abc"},
		"CreatedAtUtc": &types.AttributeValueMemberS{Value: "2024-05-01T08:30:00.1234567Z"},
		"UpdatedAtUtc": &types.AttributeValueMemberS{Value: "2024-05-01T08:30:00.1234567"},
	})
	require.Equal(t, "abc", c.ID)
	want := time.Date(2024, 5, 1, 8, 30, 0, 123456700, time.UTC)
	assert.True(t, want.Equal(c.CreatedAtUtc))
	assert.True(t, want.Equal(c.UpdatedAtUtc))
	assert.Empty(t, c.Name)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 1, clampLimit(0))
	assert.Equal(t, 1, clampLimit(-5))
	assert.Equal(t, 50, clampLimit(50))
	assert.Equal(t, 200, clampLimit(10000))
}
