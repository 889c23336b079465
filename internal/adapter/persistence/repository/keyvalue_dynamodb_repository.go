package repository

import (
	"context"
	"encoding/json"
	"time"

	"kalkulacka/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientStateTableName = "client_state"

type clientStateItem struct {
	StorageKey string `dynamodbav:"storage_key"`
	Payload    string `dynamodbav:"payload"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// KeyValueDynamoRepository persists whole client-state records in DynamoDB,
// one item per storage key.
//
// Table requirements:
//   - PK: storage_key (string)
//
// Records are read and written wholesale; there are no partial-field
// updates, matching the storage surface the flow expects.
type KeyValueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IKeyValueRepository = (*KeyValueDynamoRepository)(nil)

func NewKeyValueDynamoRepository(ddb *dynamodb.Client) *KeyValueDynamoRepository {
	return &KeyValueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENT_STATE_TABLE", defaultClientStateTableName),
	}
}

func (r *KeyValueDynamoRepository) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"storage_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it clientStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return json.RawMessage(it.Payload), true, nil
}

func (r *KeyValueDynamoRepository) Put(ctx context.Context, key string, payload json.RawMessage) error {
	it := clientStateItem{
		StorageKey: key,
		Payload:    string(payload),
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *KeyValueDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"storage_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
