package dictionary_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/JustAnotherCloudGuy/define-the-cloud/dictionary"
	"github.com/JustAnotherCloudGuy/define-the-cloud/store"
	"github.com/JustAnotherCloudGuy/define-the-cloud/store/storetest"
)

// fixedSampler always returns the same index and records the bound it was
// called with.
type fixedSampler struct {
	index int
	calls int
	lastN int
}

func (s *fixedSampler) Intn(n int) int {
	s.calls++
	s.lastN = n
	return s.index
}

func TestGetRandomDefinition_EmptyCollection(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)

	sampler := &fixedSampler{}
	dict.SetSampler(sampler)

	got, err := dict.GetRandomDefinition(ctx)
	if err != nil {
		t.Fatalf("expected no error on an empty collection, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
	// The zero-count guard must fire before the random draw.
	if sampler.calls != 0 {
		t.Errorf("expected the sampler to never be called, got %d calls", sampler.calls)
	}
}

func TestGetRandomDefinition_PicksByIndex(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)

	for i := 0; i < 3; i++ {
		mustAdd(t, dict, testDefinition(fmt.Sprintf("d%d", i), fmt.Sprintf("word%d", i)))
	}

	tests := []struct {
		index    int
		expected string
	}{
		{0, "d0"},
		{1, "d1"},
		{2, "d2"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			sampler := &fixedSampler{index: tt.index}
			dict.SetSampler(sampler)

			got, err := dict.GetRandomDefinition(ctx)
			if err != nil {
				t.Fatalf("GetRandomDefinition failed: %v", err)
			}
			if got == nil || got.ID != tt.expected {
				t.Errorf("expected %s, got %+v", tt.expected, got)
			}
			if sampler.lastN != 3 {
				t.Errorf("expected a draw bound of 3, got %d", sampler.lastN)
			}
		})
	}
}

func TestGetRandomDefinition_StaleHighMirror(t *testing.T) {
	ctx := context.Background()
	dict, st := newTestDictionary(t)

	mustAdd(t, dict, testDefinition("d0", "word0"))

	// Remove the definition behind the facade's back; the mirror still
	// reads 1, so the draw lands past the end of the collection.
	table := dictionary.DefaultConfig().DefinitionsTable
	if err := st.Delete(ctx, table, "d0"); err != nil {
		t.Fatalf("direct delete failed: %v", err)
	}

	dict.SetSampler(&fixedSampler{index: 0})
	got, err := dict.GetRandomDefinition(ctx)
	if err != nil {
		t.Fatalf("expected a stale-high mirror to return absence, got error %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestGetRandomDefinition_CounterMissing(t *testing.T) {
	ctx := context.Background()
	st := store.New(storetest.New())
	dict := dictionary.New(st, dictionary.DefaultConfig())
	dict.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := dict.GetRandomDefinition(ctx)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected store.ErrNotFound for an unprovisioned counter, got %v", err)
	}
}
