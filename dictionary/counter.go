package dictionary

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/JustAnotherCloudGuy/define-the-cloud/store"
)

// CounterID is the fixed identifier of the mirrored count document.
const CounterID = "counterId"

const attrCount = "count"

// counter maintains the denormalized definition count. Each mutation is a
// read-modify-write against the count document, uncoordinated with the
// definitions collection itself; the count is a best-effort mirror and the
// reconcile job is the repair path.
type counter struct {
	store *store.Store
	table string
}

func (c *counter) count(ctx context.Context) (int64, error) {
	// A missing count document propagates as store.ErrNotFound, untranslated.
	doc, err := c.store.Get(ctx, c.table, CounterID)
	if err != nil {
		return 0, err
	}
	return countValue(doc)
}

func (c *counter) increment(ctx context.Context) error {
	return c.adjust(ctx, +1)
}

func (c *counter) decrement(ctx context.Context) error {
	return c.adjust(ctx, -1)
}

// adjust applies a one-step delta, clamping at zero so an unmatched
// decrement can never drive the mirror negative.
func (c *counter) adjust(ctx context.Context, delta int64) error {
	doc, err := c.store.Get(ctx, c.table, CounterID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCounterMissing
	}
	if err != nil {
		return err
	}
	n, err := countValue(doc)
	if err != nil {
		return err
	}

	next := n + delta
	if next < 0 {
		next = 0
	}
	if next == n {
		return nil
	}

	if err := c.store.Replace(ctx, c.table, CounterID, counterDocument(next)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCounterMissing
		}
		return err
	}
	return nil
}

// reconcile overwrites the mirror with a freshly computed cardinality,
// creating the count document if it was never provisioned.
func (c *counter) reconcile(ctx context.Context, n int64) error {
	return c.store.Upsert(ctx, c.table, CounterID, counterDocument(n))
}

func counterDocument(n int64) store.Document {
	return store.Document{
		store.KeyAttribute: &types.AttributeValueMemberS{Value: CounterID},
		attrCount:          &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)},
	}
}

func countValue(doc store.Document) (int64, error) {
	attr, ok := doc[attrCount].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("dictionary: count document has no numeric count attribute")
	}
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse count: %w", err)
	}
	return n, nil
}
