package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used by tests and local development.
// It mirrors the Firestore adapter's observable behavior: generated IDs,
// server-assigned timestamps, equality/range filters, ordering, and limits.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]map[string]interface{}),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]map[string]interface{})
		s.collections[collection] = coll
	}

	id := uuid.NewString()
	coll[id] = resolveMemorySentinels(data)
	return id, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Document{ID: id, Data: cloneData(data)}, nil
}

func (s *MemoryStore) Query(ctx context.Context, collection string, filters []Filter, orderBy *OrderBy, limit int) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []*Document
	for id, data := range s.collections[collection] {
		if matchesAll(data, filters) {
			docs = append(docs, &Document{ID: id, Data: cloneData(data)})
		}
	}

	if orderBy != nil {
		sort.SliceStable(docs, func(i, j int) bool {
			less := compareValues(docs[i].Data[orderBy.Path], docs[j].Data[orderBy.Path]) < 0
			if orderBy.Desc {
				return !less && compareValues(docs[i].Data[orderBy.Path], docs[j].Data[orderBy.Path]) != 0
			}
			return less
		})
	}

	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}

	return docs, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range resolveMemorySentinels(fields) {
		data[k] = v
	}
	return nil
}

func matchesAll(data map[string]interface{}, filters []Filter) bool {
	for _, f := range filters {
		cmp := compareValues(data[f.Path], f.Value)
		switch f.Op {
		case "==":
			if cmp != 0 {
				return false
			}
		case "<":
			if cmp >= 0 {
				return false
			}
		case "<=":
			if cmp > 0 {
				return false
			}
		case ">":
			if cmp <= 0 {
				return false
			}
		case ">=":
			if cmp < 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// compareValues orders two document values of the same logical type.
// Numeric values compare across int/int64/float64 the way Firestore does.
func compareValues(a, b interface{}) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			switch {
			case as < bs:
				return -1
			case as > bs:
				return 1
			default:
				return 0
			}
		}
	}

	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			if ab == bb {
				return 0
			}
			if !ab {
				return -1
			}
			return 1
		}
	}

	if a == nil && b == nil {
		return 0
	}
	return -1
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

func resolveMemorySentinels(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		if _, ok := v.(serverTimestampSentinel); ok {
			out[k] = time.Now()
			continue
		}
		out[k] = v
	}
	return out
}

func cloneData(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
