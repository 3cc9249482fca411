package store

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// KeyAttribute is the partition key attribute every collection uses.
const KeyAttribute = "id"

// Document is a schema-flexible record keyed by its "id" attribute.
type Document map[string]types.AttributeValue

// Store provides keyed-document CRUD and filtered scans over DynamoDB tables.
type Store struct {
	client DynamoDBClient
}

// New creates a new Store instance.
func New(client DynamoDBClient) *Store {
	return &Store{client: client}
}

func key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		KeyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

// withID returns a copy of doc with its key attribute set to id.
func withID(doc Document, id string) Document {
	out := make(Document, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	out[KeyAttribute] = &types.AttributeValueMemberS{Value: id}
	return out
}

// Get retrieves a document by id, returning ErrNotFound if missing.
func (s *Store) Get(ctx context.Context, table, id string) (Document, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key(id),
	})
	if err != nil {
		return nil, err
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}
	return Document(result.Item), nil
}

// Create inserts a new document, returning ErrAlreadyExists when its id is
// already taken.
func (s *Store) Create(ctx context.Context, table string, doc Document) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                doc,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return ErrAlreadyExists
	}
	return err
}

// Replace overwrites the document with the given id wholesale, returning
// ErrNotFound when no such document exists.
func (s *Store) Replace(ctx context.Context, table, id string, doc Document) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                withID(doc, id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return ErrNotFound
	}
	return err
}

// Upsert writes the document under the given id, creating or replacing it.
func (s *Store) Upsert(ctx context.Context, table, id string, doc Document) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      withID(doc, id),
	})
	return err
}

// Delete removes the document with the given id, returning ErrNotFound when
// no such document exists.
func (s *Store) Delete(ctx context.Context, table, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(table),
		Key:                 key(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return ErrNotFound
	}
	return err
}

// Query scans a collection for documents matching q.Filter and returns the
// skip/limit window of the matches in scan order. A nil filter matches every
// document.
//
// DynamoDB applies its Limit before filtering, so the window is carved out
// client-side while paginating; the scan stops as soon as the window is full.
func (s *Store) Query(ctx context.Context, table string, q Query) ([]Document, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(table),
	}
	if q.Filter != nil && len(q.Filter.conds) > 0 {
		expr, names, values := q.Filter.expression()
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	skip := q.Skip
	if skip < 0 {
		skip = 0
	}

	var docs []Document
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			if skip > 0 {
				skip--
				continue
			}
			docs = append(docs, Document(raw))
			if q.Limit > 0 && len(docs) == q.Limit {
				return docs, nil
			}
		}
	}
	return docs, nil
}

// Count returns the number of documents in a collection.
func (s *Store) Count(ctx context.Context, table string) (int64, error) {
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(table),
		Select:    types.SelectCount,
	})

	var n int64
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		n += int64(page.Count)
	}
	return n, nil
}
