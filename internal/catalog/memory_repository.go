package catalog

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type memoryRepository struct {
	mu    sync.RWMutex
	gifts []bson.M
}

// NewMemoryRepository builds an in-memory catalog seeded with the given
// documents. It mirrors the store's filter semantics for testing.
func NewMemoryRepository(gifts ...bson.M) Repository {
	return &memoryRepository{gifts: gifts}
}

func (r *memoryRepository) Search(_ context.Context, f Filter) ([]bson.M, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := []bson.M{}
	for _, gift := range r.gifts {
		if matchesFilter(gift, f) {
			matches = append(matches, gift)
		}
	}
	return matches, nil
}

func matchesFilter(gift bson.M, f Filter) bool {
	if name := strings.TrimSpace(f.Name); name != "" {
		value, _ := gift["name"].(string)
		if !strings.Contains(strings.ToLower(value), strings.ToLower(name)) {
			return false
		}
	}
	if category := strings.TrimSpace(f.Category); category != "" {
		if value, _ := gift["category"].(string); value != category {
			return false
		}
	}
	if condition := strings.TrimSpace(f.Condition); condition != "" {
		if value, _ := gift["condition"].(string); value != condition {
			return false
		}
	}
	if f.AgeYears != nil {
		age, ok := numericValue(gift["age_years"])
		if !ok || age > float64(*f.AgeYears) {
			return false
		}
	}
	return true
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
