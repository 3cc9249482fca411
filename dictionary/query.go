package dictionary

import (
	"context"

	"github.com/JustAnotherCloudGuy/define-the-cloud/internal/norm"
	"github.com/JustAnotherCloudGuy/define-the-cloud/store"
)

// Per-operation batch size defaults, applied when Page.Limit is zero.
const (
	defaultTagLimit    = 100
	defaultSearchLimit = 20
)

// Page bounds a listing operation.
//
// Limit == 0 selects the operation's default batch size (100 for tag
// queries, 20 for search, no bound for GetAllDefinitions); Limit < 0
// disables the bound. Negative Skip is treated as zero. The policy is
// uniform across every paginated operation.
type Page struct {
	Skip  int
	Limit int
}

// bounds resolves the page against an operation's default batch size.
func (p Page) bounds(defaultLimit int) (skip, limit int) {
	skip = p.Skip
	if skip < 0 {
		skip = 0
	}
	limit = p.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 0 {
		limit = 0 // the store treats 0 as unbounded
	}
	return skip, limit
}

// GetAllDefinitions lists definitions in scan order. A zero Page lists the
// whole collection.
func (d *Dictionary) GetAllDefinitions(ctx context.Context, page Page) ([]*Definition, error) {
	skip, limit := page.bounds(0)
	return d.queryDefinitions(ctx, store.Query{Skip: skip, Limit: limit})
}

// GetDefinitionByWord returns the definition whose word matches exactly,
// ignoring case, or nil when there is none. When several definitions share
// a word the first in scan order wins; uniqueness is the caller's
// assumption, not enforced here.
func (d *Dictionary) GetDefinitionByWord(ctx context.Context, word string) (*Definition, error) {
	defs, err := d.queryDefinitions(ctx, store.Query{
		Filter: store.Eq(attrSearchWord, norm.Fold(word)),
		Limit:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, nil
	}
	return defs[0], nil
}

// GetDefinitionsByTag returns definitions whose tag equals tag, ignoring
// case.
func (d *Dictionary) GetDefinitionsByTag(ctx context.Context, tag string, page Page) ([]*Definition, error) {
	skip, limit := page.bounds(defaultTagLimit)
	return d.queryDefinitions(ctx, store.Query{
		Filter: store.Eq(attrSearchTag, norm.Fold(tag)),
		Skip:   skip,
		Limit:  limit,
	})
}

// GetDefinitionsBySearch returns definitions where the term appears as a
// substring of the word, content, tag, abbreviation, or author name,
// ignoring case.
func (d *Dictionary) GetDefinitionsBySearch(ctx context.Context, term string, page Page) ([]*Definition, error) {
	skip, limit := page.bounds(defaultSearchLimit)
	return d.queryDefinitions(ctx, store.Query{
		Filter: store.AnyContains(norm.Fold(term), searchAttributes...),
		Skip:   skip,
		Limit:  limit,
	})
}
