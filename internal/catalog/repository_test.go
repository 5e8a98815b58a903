package catalog

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func seedGifts() Repository {
	return NewMemoryRepository(
		bson.M{"name": "Lamp", "category": "Home", "condition": "New", "age_years": 1, "posted_by": "a@x.com"},
		bson.M{"name": "floor lamp", "category": "Home", "condition": "Like New", "age_years": 4},
		bson.M{"name": "LAMPSHADE", "category": "Home", "condition": "Older", "age_years": 9},
		bson.M{"name": "Toaster", "category": "Electronics", "condition": "New", "age_years": 2},
		bson.M{"name": "Monitor", "category": "Electronics", "condition": "Older", "age_years": 7},
	)
}

func TestSearchNoFilterReturnsEverything(t *testing.T) {
	repo := seedGifts()

	gifts, err := repo.Search(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(gifts) != 5 {
		t.Fatalf("expected full catalog, got %d gifts", len(gifts))
	}
}

func TestSearchBlankParamsContributeNoClause(t *testing.T) {
	repo := seedGifts()

	gifts, err := repo.Search(context.Background(), Filter{Name: "  ", Category: ""})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(gifts) != 5 {
		t.Fatalf("expected blank params to be ignored, got %d gifts", len(gifts))
	}
}

func TestSearchCategoryExactMatch(t *testing.T) {
	repo := seedGifts()

	gifts, err := repo.Search(context.Background(), Filter{Category: "Electronics"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(gifts) != 2 {
		t.Fatalf("expected 2 electronics gifts, got %d", len(gifts))
	}
	for _, g := range gifts {
		if g["category"] != "Electronics" {
			t.Fatalf("unexpected category in %v", g)
		}
	}
}

func TestSearchNameCaseInsensitiveSubstring(t *testing.T) {
	repo := seedGifts()

	gifts, err := repo.Search(context.Background(), Filter{Name: "lamp"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(gifts) != 3 {
		t.Fatalf(`expected "lamp" to match Lamp, floor lamp and LAMPSHADE, got %d`, len(gifts))
	}
}

func TestSearchAgeIsInclusiveUpperBound(t *testing.T) {
	repo := seedGifts()

	age := 4
	gifts, err := repo.Search(context.Background(), Filter{AgeYears: &age})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(gifts) != 3 {
		t.Fatalf("expected 3 gifts aged <= 4, got %d", len(gifts))
	}

	age = 9
	gifts, err = repo.Search(context.Background(), Filter{AgeYears: &age})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(gifts) != 5 {
		t.Fatalf("expected the bound to be inclusive, got %d gifts", len(gifts))
	}
}

func TestSearchCombinedFilters(t *testing.T) {
	repo := seedGifts()

	age := 5
	gifts, err := repo.Search(context.Background(), Filter{Name: "lamp", Category: "Home", AgeYears: &age})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(gifts) != 2 {
		t.Fatalf("expected Lamp and floor lamp, got %d gifts", len(gifts))
	}
}

func TestSearchPassesThroughOpaqueFields(t *testing.T) {
	repo := seedGifts()

	gifts, err := repo.Search(context.Background(), Filter{Name: "Lamp", Category: "Home", Condition: "New"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(gifts) != 1 {
		t.Fatalf("expected a single match, got %d", len(gifts))
	}
	if gifts[0]["posted_by"] != "a@x.com" {
		t.Fatalf("expected unmodeled fields to pass through, got %v", gifts[0])
	}
}
