package dictionary_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/JustAnotherCloudGuy/define-the-cloud/dictionary"
)

func TestGetDefinitionByWord_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)
	mustAdd(t, dict, testDefinition("a1", "Serendipity"))

	for _, word := range []string{"Serendipity", "serendipity", "SERENDIPITY"} {
		got, err := dict.GetDefinitionByWord(ctx, word)
		if err != nil {
			t.Fatalf("GetDefinitionByWord(%q) failed: %v", word, err)
		}
		if got == nil || got.ID != "a1" {
			t.Errorf("GetDefinitionByWord(%q) = %+v, expected a1", word, got)
		}
	}
}

func TestGetDefinitionByWord_Absent(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)

	got, err := dict.GetDefinitionByWord(ctx, "missing")
	if err != nil {
		t.Fatalf("expected no error for an absent word, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestGetDefinitionByWord_CollapsesToFirst(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)
	mustAdd(t, dict, testDefinition("a1", "shard"))
	mustAdd(t, dict, testDefinition("a2", "shard"))

	got, err := dict.GetDefinitionByWord(ctx, "shard")
	if err != nil {
		t.Fatalf("GetDefinitionByWord failed: %v", err)
	}
	if got == nil || got.ID != "a1" {
		t.Errorf("expected the first match (a1), got %+v", got)
	}
}

func TestGetDefinitionsByTag_Pagination(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)

	for i := 0; i < 5; i++ {
		def := testDefinition(fmt.Sprintf("s%d", i), fmt.Sprintf("term%d", i))
		def.Tag = "Science"
		mustAdd(t, dict, def)
	}
	other := testDefinition("x1", "misc")
	other.Tag = "history"
	mustAdd(t, dict, other)

	first, err := dict.GetDefinitionsByTag(ctx, "science", dictionary.Page{Skip: 0, Limit: 2})
	if err != nil {
		t.Fatalf("first page failed: %v", err)
	}
	second, err := dict.GetDefinitionsByTag(ctx, "science", dictionary.Page{Skip: 2, Limit: 2})
	if err != nil {
		t.Fatalf("second page failed: %v", err)
	}

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected two pages of 2, got %d and %d", len(first), len(second))
	}

	seen := map[string]bool{}
	for _, def := range append(first, second...) {
		if seen[def.ID] {
			t.Errorf("pages overlap on %s", def.ID)
		}
		seen[def.ID] = true
		if def.Tag != "Science" {
			t.Errorf("unexpected tag %q on %s", def.Tag, def.ID)
		}
	}
}

func TestGetDefinitionsBySearch_AuthorOnlyMatch(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)

	def := testDefinition("a1", "throughput")
	def.Author = dictionary.Author{Name: "Grace Hopper"}
	mustAdd(t, dict, def)
	mustAdd(t, dict, testDefinition("a2", "latency"))

	// "hopper" appears only in the author's name.
	results, err := dict.GetDefinitionsBySearch(ctx, "Hopper", dictionary.Page{})
	if err != nil {
		t.Fatalf("GetDefinitionsBySearch failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a1" {
		t.Errorf("expected only a1, got %d results", len(results))
	}
}

func TestGetDefinitionsBySearch_MatchesAcrossFields(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)

	wordHit := testDefinition("w1", "CloudFormation")
	contentHit := testDefinition("c1", "IaC")
	contentHit.Content = "provisioning cloud resources from templates"
	abbrevHit := testDefinition("b1", "isolated network segment")
	abbrevHit.Abbreviation = "VPC-Cloud"
	miss := testDefinition("m1", "latency")
	miss.Content = "time before transfer begins"

	for _, def := range []*dictionary.Definition{wordHit, contentHit, abbrevHit, miss} {
		mustAdd(t, dict, def)
	}

	results, err := dict.GetDefinitionsBySearch(ctx, "cloud", dictionary.Page{})
	if err != nil {
		t.Fatalf("GetDefinitionsBySearch failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
	for _, def := range results {
		if def.ID == "m1" {
			t.Error("expected m1 to be excluded")
		}
	}
}

func TestGetAllDefinitions(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)

	for i := 0; i < 3; i++ {
		mustAdd(t, dict, testDefinition(fmt.Sprintf("d%d", i), fmt.Sprintf("word%d", i)))
	}

	all, err := dict.GetAllDefinitions(ctx, dictionary.Page{})
	if err != nil {
		t.Fatalf("GetAllDefinitions failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 definitions, got %d", len(all))
	}

	window, err := dict.GetAllDefinitions(ctx, dictionary.Page{Skip: 1, Limit: 1})
	if err != nil {
		t.Fatalf("windowed GetAllDefinitions failed: %v", err)
	}
	if len(window) != 1 || window[0].ID != "d1" {
		t.Errorf("expected the second definition, got %+v", window)
	}
}

func TestPageDefaults(t *testing.T) {
	ctx := context.Background()
	dict, _ := newTestDictionary(t)

	// 25 definitions sharing a tag; a zero page takes the search default of
	// 20 but the tag default of 100 returns everything.
	for i := 0; i < 25; i++ {
		def := testDefinition(fmt.Sprintf("d%02d", i), fmt.Sprintf("cloudword%02d", i))
		def.Tag = "cloud"
		mustAdd(t, dict, def)
	}

	byTag, err := dict.GetDefinitionsByTag(ctx, "cloud", dictionary.Page{})
	if err != nil {
		t.Fatalf("GetDefinitionsByTag failed: %v", err)
	}
	if len(byTag) != 25 {
		t.Errorf("expected the tag default (100) to return all 25, got %d", len(byTag))
	}

	bySearch, err := dict.GetDefinitionsBySearch(ctx, "cloudword", dictionary.Page{})
	if err != nil {
		t.Fatalf("GetDefinitionsBySearch failed: %v", err)
	}
	if len(bySearch) != 20 {
		t.Errorf("expected the search default of 20, got %d", len(bySearch))
	}

	unbounded, err := dict.GetDefinitionsBySearch(ctx, "cloudword", dictionary.Page{Limit: -1})
	if err != nil {
		t.Fatalf("unbounded search failed: %v", err)
	}
	if len(unbounded) != 25 {
		t.Errorf("expected a negative limit to disable the bound, got %d", len(unbounded))
	}
}
