package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JustAnotherCloudGuy/define-the-cloud/store"
)

// Dictionary is the data access facade for dictionary definitions.
type Dictionary struct {
	store   *store.Store
	config  Config
	counter *counter
	sampler Sampler
	logger  *slog.Logger
}

// New creates a new Dictionary facade over the given store.
func New(st *store.Store, config Config) *Dictionary {
	config.validate()
	return &Dictionary{
		store:   st,
		config:  config,
		counter: &counter{store: st, table: config.CounterTable},
		sampler: randSampler{},
		logger:  slog.Default(),
	}
}

// SetLogger replaces the logger. A nil logger is ignored.
func (d *Dictionary) SetLogger(logger *slog.Logger) {
	if logger != nil {
		d.logger = logger
	}
}

// SetSampler replaces the random source used by GetRandomDefinition.
// A nil sampler is ignored.
func (d *Dictionary) SetSampler(s Sampler) {
	if s != nil {
		d.sampler = s
	}
}

// AddDefinition stores a new definition and increments the mirrored count.
// A definition without an ID is assigned one. Returns store.ErrAlreadyExists
// when the ID is already taken.
//
// The insert and the count increment are separate writes: a failure after
// the insert leaves the definition in place with the mirror one behind,
// until the next reconciliation.
func (d *Dictionary) AddDefinition(ctx context.Context, def *Definition) (*Definition, error) {
	if def == nil {
		return nil, errors.New("dictionary: nil definition")
	}
	if def.ID == "" {
		def.ID = uuid.NewString()
	}

	doc, err := def.document()
	if err != nil {
		return nil, err
	}
	if err := d.store.Create(ctx, d.config.DefinitionsTable, doc); err != nil {
		return nil, err
	}

	if err := d.counter.increment(ctx); err != nil {
		d.logger.Warn("definition stored but count increment failed",
			"id", def.ID,
			"error", err,
		)
		return nil, fmt.Errorf("increment definition count: %w", err)
	}
	return def, nil
}

// GetDefinition returns the definition with the given ID, or nil when
// absent.
func (d *Dictionary) GetDefinition(ctx context.Context, id string) (*Definition, error) {
	doc, err := d.store.Get(ctx, d.config.DefinitionsTable, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return unmarshalDefinition(doc)
}

// UpdateDefinition replaces an existing definition wholesale. Returns
// store.ErrNotFound when no definition has the given ID.
func (d *Dictionary) UpdateDefinition(ctx context.Context, def *Definition) error {
	if def == nil || def.ID == "" {
		return errors.New("dictionary: definition needs an ID to be updated")
	}
	doc, err := def.document()
	if err != nil {
		return err
	}
	return d.store.Replace(ctx, d.config.DefinitionsTable, def.ID, doc)
}

// DeleteDefinition removes the definition with the given ID and decrements
// the mirrored count. Returns store.ErrNotFound when no such definition
// exists, in which case the count is left alone.
func (d *Dictionary) DeleteDefinition(ctx context.Context, id string) error {
	if err := d.store.Delete(ctx, d.config.DefinitionsTable, id); err != nil {
		return err
	}

	if err := d.counter.decrement(ctx); err != nil {
		d.logger.Warn("definition deleted but count decrement failed",
			"id", id,
			"error", err,
		)
		return fmt.Errorf("decrement definition count: %w", err)
	}
	return nil
}

// GetDefinitionCount returns the mirrored definition count. The mirror is
// maintained out-of-band from the definitions collection and can drift
// under concurrent writes or partial failures; a missing count document
// surfaces as store.ErrNotFound.
func (d *Dictionary) GetDefinitionCount(ctx context.Context) (int64, error) {
	return d.counter.count(ctx)
}

// ReconcileDefinitionCount recomputes the true cardinality of the
// definitions collection and overwrites the mirror with it. It also serves
// as initial provisioning of the count document. Safe to run at any time;
// the reconcile package wraps it as a scheduled job.
func (d *Dictionary) ReconcileDefinitionCount(ctx context.Context) (int64, error) {
	n, err := d.store.Count(ctx, d.config.DefinitionsTable)
	if err != nil {
		return 0, fmt.Errorf("count definitions: %w", err)
	}
	if err := d.counter.reconcile(ctx, n); err != nil {
		return 0, fmt.Errorf("write reconciled count: %w", err)
	}
	return n, nil
}

// queryDefinitions runs a query against the definitions collection and
// unmarshals the results.
func (d *Dictionary) queryDefinitions(ctx context.Context, q store.Query) ([]*Definition, error) {
	docs, err := d.store.Query(ctx, d.config.DefinitionsTable, q)
	if err != nil {
		return nil, err
	}
	defs := make([]*Definition, 0, len(docs))
	for _, doc := range docs {
		def, err := unmarshalDefinition(doc)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
