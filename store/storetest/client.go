// Package storetest provides an in-memory DynamoDB client for tests.
package storetest

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Client is an in-memory stand-in for the DynamoDB API subset the store
// uses. It understands only the request shapes the store emits: point reads
// and conditional writes keyed on "id", and scans whose filter expression is
// an OR-chain of equality or contains() clauses.
//
// Scan order is insertion order, which makes offset pagination deterministic
// in tests.
type Client struct {
	mu     sync.Mutex
	tables map[string]*table

	// PageSize caps raw items evaluated per scan page. Zero evaluates the
	// whole table in one page. Set a small value to exercise pagination.
	PageSize int
}

type table struct {
	order []string
	items map[string]map[string]types.AttributeValue
}

// New creates an empty in-memory client.
func New() *Client {
	return &Client{tables: make(map[string]*table)}
}

func (c *Client) table(name string) *table {
	t, ok := c.tables[name]
	if !ok {
		t = &table{items: make(map[string]map[string]types.AttributeValue)}
		c.tables[name] = t
	}
	return t
}

// Len reports the number of items in a table.
func (c *Client) Len(tableName string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.table(tableName).items)
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{
		Message: aws.String("The conditional request failed"),
	}
}

// GetItem implements the DynamoDB GetItem call for id-keyed tables.
func (c *Client) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.table(aws.ToString(params.TableName))
	item, ok := t.items[stringAttr(params.Key, "id")]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

// PutItem implements the DynamoDB PutItem call, honoring the
// attribute_exists/attribute_not_exists conditions the store uses.
func (c *Client) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.table(aws.ToString(params.TableName))
	id := stringAttr(params.Item, "id")
	_, exists := t.items[id]

	switch aws.ToString(params.ConditionExpression) {
	case "attribute_not_exists(id)":
		if exists {
			return nil, conditionFailed()
		}
	case "attribute_exists(id)":
		if !exists {
			return nil, conditionFailed()
		}
	}

	if !exists {
		t.order = append(t.order, id)
	}
	t.items[id] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

// DeleteItem implements the DynamoDB DeleteItem call.
func (c *Client) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.table(aws.ToString(params.TableName))
	id := stringAttr(params.Key, "id")
	_, exists := t.items[id]

	if aws.ToString(params.ConditionExpression) == "attribute_exists(id)" && !exists {
		return nil, conditionFailed()
	}

	delete(t.items, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

// Scan implements the DynamoDB Scan call with filter evaluation, Select
// COUNT, and ExclusiveStartKey paging.
func (c *Client) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.table(aws.ToString(params.TableName))

	start := 0
	if params.ExclusiveStartKey != nil {
		after := stringAttr(params.ExclusiveStartKey, "id")
		for i, id := range t.order {
			if id == after {
				start = i + 1
				break
			}
		}
	}

	end := len(t.order)
	if c.PageSize > 0 && start+c.PageSize < end {
		end = start + c.PageSize
	}

	out := &dynamodb.ScanOutput{}
	for _, id := range t.order[start:end] {
		item := t.items[id]
		out.ScannedCount++
		if !matches(item, params) {
			continue
		}
		out.Count++
		if params.Select != types.SelectCount {
			out.Items = append(out.Items, copyItem(item))
		}
	}

	if end < len(t.order) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: t.order[end-1]},
		}
	}
	return out, nil
}

// matches evaluates the filter expression shapes produced by store.Filter:
// clauses of the form "#fN = :vN" or "contains(#fN, :vN)" joined by " OR ".
func matches(item map[string]types.AttributeValue, params *dynamodb.ScanInput) bool {
	expr := aws.ToString(params.FilterExpression)
	if expr == "" {
		return true
	}
	for _, clause := range strings.Split(expr, " OR ") {
		if evalClause(strings.TrimSpace(clause), item, params.ExpressionAttributeNames, params.ExpressionAttributeValues) {
			return true
		}
	}
	return false
}

func evalClause(clause string, item map[string]types.AttributeValue, names map[string]string, values map[string]types.AttributeValue) bool {
	if inner, ok := strings.CutPrefix(clause, "contains("); ok {
		inner = strings.TrimSuffix(inner, ")")
		nameKey, valueKey, ok := strings.Cut(inner, ", ")
		if !ok {
			return false
		}
		return strings.Contains(stringAttr(item, names[nameKey]), stringValue(values[valueKey]))
	}

	nameKey, valueKey, ok := strings.Cut(clause, " = ")
	if !ok {
		return false
	}
	return stringAttr(item, names[nameKey]) == stringValue(values[valueKey])
}

func stringAttr(item map[string]types.AttributeValue, field string) string {
	if v, ok := item[field].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func stringValue(v types.AttributeValue) string {
	if s, ok := v.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
