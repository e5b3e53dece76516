package session

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// batchWriteLimit максимальный размер BatchWriteItem
const batchWriteLimit = 25

// DynamoAPI подмножество *dynamodb.Client, используемое хранилищем
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// sessionItem запись таблицы.
//
// Таблица:
//   - PK: session_id (string)
//   - SK: entry_key (string)
//   - TTL-атрибут: expires_at (epoch seconds)
type sessionItem struct {
	SessionID string `dynamodbav:"session_id"`
	Key       string `dynamodbav:"entry_key"`
	Value     string `dynamodbav:"entry_value"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// DynamoStorage хранилище сессий в DynamoDB
type DynamoStorage struct {
	ddb   DynamoAPI
	table string
	ttl   time.Duration
	now   func() time.Time
}

func NewDynamoStorage(ddb DynamoAPI, table string, ttl time.Duration) *DynamoStorage {
	return &DynamoStorage{
		ddb:   ddb,
		table: table,
		ttl:   ttl,
		now:   time.Now,
	}
}

// NewDynamoClient создаёт клиента DynamoDB. Пустой endpoint означает AWS по умолчанию,
// непустой используется для DynamoDB Local.
func NewDynamoClient(ctx context.Context, region, endpoint, accessKeyID, secretAccessKey string) (*dynamodb.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKeyID != "" && secretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("session.storage: load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func (s *DynamoStorage) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            itemKey(sessionID, key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get item: %v", ErrExecQuery, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal item: %v", ErrSerialization, err)
	}

	// TTL в DynamoDB удаляет записи с задержкой, поэтому истёкшие отсекаем сами
	if it.ExpiresAt <= s.now().Unix() {
		return nil, ErrNotFound
	}

	return []byte(it.Value), nil
}

func (s *DynamoStorage) Set(ctx context.Context, sessionID, key string, value []byte) error {
	if sessionID == "" {
		return ErrInvalidSession
	}

	av, err := attributevalue.MarshalMap(sessionItem{
		SessionID: sessionID,
		Key:       key,
		Value:     string(value),
		ExpiresAt: s.now().Add(s.ttl).Unix(),
	})
	if err != nil {
		return fmt.Errorf("%w: Set - marshal item: %v", ErrSerialization, err)
	}

	if _, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("%w: Set - put item: %v", ErrExecQuery, err)
	}

	return nil
}

func (s *DynamoStorage) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}

	keys, err := s.sessionKeys(ctx, sessionID)
	if err != nil {
		return err
	}

	for start := 0; start < len(keys); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(keys) {
			end = len(keys)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, key := range keys[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: itemKey(sessionID, key)},
			})
		}

		if err := s.batchDelete(ctx, requests); err != nil {
			return err
		}
	}

	return nil
}

func (s *DynamoStorage) sessionKeys(ctx context.Context, sessionID string) ([]string, error) {
	var (
		keys      []string
		startFrom map[string]types.AttributeValue
	)

	for {
		out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.table),
			KeyConditionExpression: aws.String("#sid = :sid"),
			ExpressionAttributeNames: map[string]string{
				"#sid": "session_id",
				"#key": "entry_key",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sid": &types.AttributeValueMemberS{Value: sessionID},
			},
			ProjectionExpression: aws.String("#key"),
			ExclusiveStartKey:    startFrom,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: Clear - query keys: %v", ErrExecQuery, err)
		}

		for _, item := range out.Items {
			if v, ok := item["entry_key"].(*types.AttributeValueMemberS); ok {
				keys = append(keys, v.Value)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return keys, nil
		}
		startFrom = out.LastEvaluatedKey
	}
}

func (s *DynamoStorage) batchDelete(ctx context.Context, requests []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{s.table: requests}

	// необработанные запросы повторяем несколько раз
	for attempt := 0; attempt < 3 && len(pending[s.table]) > 0; attempt++ {
		out, err := s.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return fmt.Errorf("%w: Clear - batch delete: %v", ErrExecQuery, err)
		}
		pending = out.UnprocessedItems
		if pending == nil {
			return nil
		}
	}

	if left := len(pending[s.table]); left > 0 {
		return fmt.Errorf("%w: Clear - %d unprocessed deletes", ErrExecQuery, left)
	}
	return nil
}

func itemKey(sessionID, key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"session_id": &types.AttributeValueMemberS{Value: sessionID},
		"entry_key":  &types.AttributeValueMemberS{Value: key},
	}
}
