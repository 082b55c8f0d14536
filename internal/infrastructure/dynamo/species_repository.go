package dynamo

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kwawicks/kwawicks-api/internal/domain"
	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
	"github.com/kwawicks/kwawicks-api/internal/domain/repository"
)

// SpeciesRepository implements repository.SpeciesRepository.
type SpeciesRepository struct {
	api   API
	table string
}

func NewSpeciesRepository(api API, table string) *SpeciesRepository {
	return &SpeciesRepository{api: api, table: table}
}

var _ repository.SpeciesRepository = (*SpeciesRepository)(nil)

func (r *SpeciesRepository) Create(ctx context.Context, s *entity.Species) error {
	_, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                encodeSpecies(s),
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		return putError("create species", err, domain.ErrConflict)
	}
	return nil
}

// Update replaces the whole item. Last write wins.
func (r *SpeciesRepository) Update(ctx context.Context, s *entity.Species) error {
	_, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                encodeSpecies(s),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		return putError("update species", err, domain.ErrNotFound)
	}
	return nil
}

func (r *SpeciesRepository) Get(ctx context.Context, id string) (*entity.Species, error) {
	key, err := speciesKey(id).marshal()
	if err != nil {
		return nil, err
	}
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       key,
	})
	if err != nil {
		return nil, storeError("get species", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return decodeSpecies(out.Item), nil
}

func (r *SpeciesRepository) List(ctx context.Context) ([]*entity.Species, error) {
	p := dynamodb.NewScanPaginator(r.api, &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("begins_with(PK, :p) AND SK = :sk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p":  strValue(speciesPKPrefix),
			":sk": strValue(speciesSK),
		},
	})

	var out []*entity.Species
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storeError("list species", err)
		}
		for _, item := range page.Items {
			out = append(out, decodeSpecies(item))
		}
	}
	sortByName(out)
	return out, nil
}

// sortByName orders species by name using English collation; equal names order by ID.
// A Collator is not safe for concurrent use, so each call builds its own.
func sortByName(species []*entity.Species) {
	c := collate.New(language.English)
	sort.SliceStable(species, func(i, j int) bool {
		if cmp := c.CompareString(species[i].Name, species[j].Name); cmp != 0 {
			return cmp < 0
		}
		return species[i].ID < species[j].ID
	})
}
