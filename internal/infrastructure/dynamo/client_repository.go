package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kwawicks/kwawicks-api/internal/domain"
	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
	"github.com/kwawicks/kwawicks-api/internal/domain/repository"
)

// Client list bounds.
const (
	MinClientListLimit = 1
	MaxClientListLimit = 200
)

// ClientRepository implements repository.ClientRepository.
type ClientRepository struct {
	api   API
	table string
}

// NewClientRepository stores clients in table.
func NewClientRepository(api API, table string) *ClientRepository {
	return &ClientRepository{api: api, table: table}
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	_, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                encodeClient(c),
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		return putError("create client", err, domain.ErrConflict)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *entity.Client) error {
	_, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                encodeClient(c),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		return putError("update client", err, domain.ErrNotFound)
	}
	return nil
}

func (r *ClientRepository) Get(ctx context.Context, id string) (*entity.Client, error) {
	key, err := clientKey(id).marshal()
	if err != nil {
		return nil, err
	}
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       key,
	})
	if err != nil {
		return nil, storeError("get client", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return decodeClient(out.Item), nil
}

// List scans for client profiles page by page until limit items are collected.
func (r *ClientRepository) List(ctx context.Context, limit int) ([]*entity.Client, error) {
	limit = clampLimit(limit)
	p := dynamodb.NewScanPaginator(r.api, &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		Limit:            aws.Int32(int32(limit)),
		FilterExpression: aws.String("EntityType = :t AND SK = :sk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t":  strValue(clientEntityType),
			":sk": strValue(clientSK),
		},
	})

	clients := make([]*entity.Client, 0, limit)
	for p.HasMorePages() && len(clients) < limit {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storeError("list clients", err)
		}
		for _, item := range page.Items {
			clients = append(clients, decodeClient(item))
			if len(clients) == limit {
				break
			}
		}
	}
	return clients, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	key, err := clientKey(id).marshal()
	if err != nil {
		return err
	}
	if _, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       key,
	}); err != nil {
		return storeError("delete client", err)
	}
	return nil
}

func clampLimit(limit int) int {
	switch {
	case limit < MinClientListLimit:
		return MinClientListLimit
	case limit > MaxClientListLimit:
		return MaxClientListLimit
	}
	return limit
}
