package docstore

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
)

// MemoryStore is an in-memory Store with the same filter and patch semantics
// as the Postgres implementation. Services and handlers are tested against it.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memCollection)}
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		c = &memCollection{}
		s.collections[name] = c
	}
	return c
}

// memCollection keeps documents in insertion order. All docs pass through a
// JSON round trip on the way in and out, so values have the same shapes the
// Postgres store produces (float64 numbers, []any lists, map[string]any maps).
type memCollection struct {
	mu   sync.RWMutex
	docs []Doc
}

func (c *memCollection) InsertOne(_ context.Context, doc Doc) error {
	clone, err := cloneDoc(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, clone)
	return nil
}

func (c *memCollection) FindOne(_ context.Context, q Query) (Doc, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if matches(doc, q) {
			return cloneDoc(doc)
		}
	}
	return nil, nil
}

func (c *memCollection) FindMany(_ context.Context, q Query, limit int) ([]Doc, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var docs []Doc
	for _, doc := range c.docs {
		if !matches(doc, q) {
			continue
		}
		clone, err := cloneDoc(doc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, clone)
		if len(docs) == limit {
			break
		}
	}
	return docs, nil
}

func (c *memCollection) UpdateOne(_ context.Context, q Query, patch Patch) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if !matches(doc, q) {
			continue
		}
		if err := applyPatch(doc, patch); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return 0, nil
}

func (c *memCollection) DeleteOne(_ context.Context, q Query) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if matches(doc, q) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func matches(doc Doc, q Query) bool {
	for _, f := range q.clauses() {
		if matchesFilter(doc, f) {
			return true
		}
	}
	return false
}

func matchesFilter(doc Doc, f Filter) bool {
	for field, want := range f {
		got, ok := doc[field]
		if c, isContains := want.(containsValue); isContains {
			list, isList := got.([]any)
			if !isList {
				return false
			}
			if !listContains(list, c.value) {
				return false
			}
			continue
		}
		if !ok {
			return false
		}
		if !jsonEqual(got, want) {
			return false
		}
	}
	return true
}

func listContains(list []any, value any) bool {
	for _, el := range list {
		if jsonEqual(el, value) {
			return true
		}
	}
	return false
}

// jsonEqual compares after normalizing both sides through JSON encoding, so
// e.g. an int filter value equals a stored float64.
func jsonEqual(a, b any) bool {
	na, err := normalize(a)
	if err != nil {
		return false
	}
	nb, err := normalize(b)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(na, nb)
}

func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func applyPatch(doc Doc, patch Patch) error {
	for field, value := range patch.Push {
		norm, err := normalize(value)
		if err != nil {
			return err
		}
		list, _ := doc[field].([]any)
		doc[field] = append(list, norm)
	}
	for field, value := range patch.Set {
		norm, err := normalize(value)
		if err != nil {
			return err
		}
		doc[field] = norm
	}
	return nil
}

func cloneDoc(doc Doc) (Doc, error) {
	out, err := normalize(map[string]any(doc))
	if err != nil {
		return nil, err
	}
	return Doc(out.(map[string]any)), nil
}
