package dictionary

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/JustAnotherCloudGuy/define-the-cloud/store"
)

// GetDefinitionOfTheDay returns the current definition of the day, or nil
// when the slot is empty. An empty slot is a benign degraded state, not an
// error. The slot must hold a single document; when it ever holds more the
// first in scan order is authoritative and the surplus is pruned by the next
// SetDefinitionOfTheDay.
func (d *Dictionary) GetDefinitionOfTheDay(ctx context.Context) (*Definition, error) {
	docs, err := d.store.Query(ctx, d.config.DefinitionOfTheDayTable, store.Query{Limit: 2})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	if len(docs) > 1 {
		d.logger.Warn("recovering by taking the first slot document",
			"error", ErrSingletonViolated,
		)
	}
	return unmarshalDefinition(docs[0])
}

// SetDefinitionOfTheDay replaces the singleton slot with def, keyed by the
// definition's own ID.
//
// The replace is delete-then-insert and not atomic: a failure between the
// two steps leaves the slot empty until the next successful call. Every
// existing slot document is deleted first, so repeated calls converge on
// exactly one document even after partial failures.
func (d *Dictionary) SetDefinitionOfTheDay(ctx context.Context, def *Definition) error {
	if def == nil || def.ID == "" {
		return errors.New("dictionary: definition of the day needs an ID")
	}
	doc, err := def.document()
	if err != nil {
		return err
	}

	existing, err := d.store.Query(ctx, d.config.DefinitionOfTheDayTable, store.Query{})
	if err != nil {
		return err
	}
	for _, old := range existing {
		id, ok := old[store.KeyAttribute].(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		err := d.store.Delete(ctx, d.config.DefinitionOfTheDayTable, id.Value)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}

	return d.store.Upsert(ctx, d.config.DefinitionOfTheDayTable, def.ID, doc)
}
