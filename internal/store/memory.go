package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store. Natural order is insertion order, and
// a replace keeps the document's position, so reads are deterministic.
// It backs the test suite and storeless development runs.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemory() *Memory {
	return &Memory{collections: map[string][]Document{}}
}

func (m *Memory) Find(ctx context.Context, collection string, q Query) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := m.matchLocked(collection, q)
	if q.Sort != nil {
		sortDocs(matched, *q.Sort)
	}
	if q.Skip > 0 {
		if q.Skip >= len(matched) {
			matched = nil
		} else {
			matched = matched[q.Skip:]
		}
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	out := make([]Document, len(matched))
	for i, doc := range matched {
		out[i] = cloneDocument(doc)
	}
	return out, nil
}

func (m *Memory) Count(ctx context.Context, collection string, q Query) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.matchLocked(collection, q))), nil
}

func (m *Memory) InsertOne(ctx context.Context, collection string, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := cloneDocument(doc)
	stored["id"] = fmt.Sprintf("%s:%s", collection, uuid.NewString())
	m.collections[collection] = append(m.collections[collection], stored)
	return cloneDocument(stored), nil
}

func (m *Memory) ReplaceByID(ctx context.Context, collection, id string, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.collections[collection]
	for i, existing := range docs {
		if existing["id"] == id {
			stored := cloneDocument(doc)
			stored["id"] = id
			docs[i] = stored
			return cloneDocument(stored), nil
		}
	}
	return nil, ErrNoDocument
}

func (m *Memory) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.collections[collection]
	for i, existing := range docs {
		if existing["id"] == id {
			m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) matchLocked(collection string, q Query) []Document {
	var matched []Document
	for _, doc := range m.collections[collection] {
		if !matchesConditions(doc, q.Conditions) {
			continue
		}
		if q.Search != nil && !matchesSearch(doc, *q.Search) {
			continue
		}
		matched = append(matched, doc)
	}
	return matched
}

func matchesConditions(doc Document, conds []Condition) bool {
	for _, c := range conds {
		val, ok := doc[c.Field]
		if !ok {
			return false
		}
		switch c.Op {
		case OpEq:
			if !equalValues(val, c.Value) {
				return false
			}
		case OpNe:
			if equalValues(val, c.Value) {
				return false
			}
		case OpGte:
			cmp, ok := compareValues(val, c.Value)
			if !ok || cmp < 0 {
				return false
			}
		case OpLte:
			cmp, ok := compareValues(val, c.Value)
			if !ok || cmp > 0 {
				return false
			}
		case OpContainsFold:
			s, ok := val.(string)
			want, ok2 := c.Value.(string)
			if !ok || !ok2 {
				return false
			}
			if !strings.Contains(strings.ToLower(s), strings.ToLower(want)) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func matchesSearch(doc Document, s Search) bool {
	term := strings.ToLower(s.Term)
	if term == "" {
		return true
	}
	fields := s.Fields
	if len(fields) == 0 {
		for k := range doc {
			fields = append(fields, k)
		}
	}
	for _, f := range fields {
		if str, ok := doc[f].(string); ok {
			if strings.Contains(strings.ToLower(str), term) {
				return true
			}
		}
	}
	return false
}

// equalValues compares with numeric coercion so a condition built from
// an int matches a document value decoded as float64.
func equalValues(a, b any) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
		return false
	}
	return a == b
}

func compareValues(a, b any) (int, bool) {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1, true
			case af > bf:
				return 1, true
			}
			return 0, true
		}
		return 0, false
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func sortDocs(docs []Document, s Sort) {
	sort.SliceStable(docs, func(i, j int) bool {
		av, aok := docs[i][s.Field]
		bv, bok := docs[j][s.Field]
		if !aok || !bok {
			// documents missing the sort field go last
			return aok && !bok
		}
		cmp, ok := compareValues(av, bv)
		if !ok {
			return false
		}
		if s.Desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func cloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if nested, ok := v.(Document); ok {
			out[k] = cloneDocument(nested)
			continue
		}
		out[k] = v
	}
	return out
}
