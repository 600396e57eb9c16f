package pp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store is the key-value backend a command reads from.
type Store interface {
	// Type reports the type of the value held at key.
	Type(ctx context.Context, key string) (KeyType, error)
	// Fetch returns the full payload of key for the given type. Mapping
	// payloads are flat field/value pairs in store order.
	Fetch(ctx context.Context, key string, t KeyType) (Reply, error)
}

type memValue struct {
	typ   KeyType
	items []string
}

// MemoryStore is an in-process [Store] holding hashes, lists, sets and
// plain strings. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	keys map[string]memValue
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: make(map[string]memValue)}
}

// HSet sets fields of the hash at key. Existing fields keep their position.
// A key holding another type is replaced.
func (m *MemoryStore) HSet(key string, fields ...KeyValue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.keys[key]
	if v.typ != TypeMapping {
		v = memValue{typ: TypeMapping}
	}
	for _, f := range fields {
		updated := false
		for i := 0; i < len(v.items); i += 2 {
			if v.items[i] == f.Key {
				v.items[i+1] = f.Value
				updated = true
				break
			}
		}
		if !updated {
			v.items = append(v.items, f.Key, f.Value)
		}
	}
	m.keys[key] = v
}

// RPush appends items to the list at key.
func (m *MemoryStore) RPush(key string, items ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.keys[key]
	if v.typ != TypeSequence {
		v = memValue{typ: TypeSequence}
	}
	v.items = append(v.items, items...)
	m.keys[key] = v
}

// SAdd adds members to the set at key, ignoring ones already present.
func (m *MemoryStore) SAdd(key string, members ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.keys[key]
	if v.typ != TypeCollection {
		v = memValue{typ: TypeCollection}
	}
	for _, s := range members {
		if !slices.Contains(v.items, s) {
			v.items = append(v.items, s)
		}
	}
	m.keys[key] = v
}

// Set stores a plain string value, a type no command can render.
func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = memValue{typ: TypeUnsupported, items: []string{value}}
}

// Del removes key.
func (m *MemoryStore) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
}

// Type implements [Store].
func (m *MemoryStore) Type(_ context.Context, key string) (KeyType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.keys[key]
	if !ok {
		return TypeAbsent, nil
	}
	return v.typ, nil
}

// Fetch implements [Store].
func (m *MemoryStore) Fetch(_ context.Context, key string, t KeyType) (Reply, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.keys[key]
	if !ok {
		return Reply{Nil: true}, nil
	}
	if v.typ != t {
		return Reply{}, fmt.Errorf("%w: %q holds %s, not %s", ErrWrongType, key, v.typ, t)
	}
	return Reply{Items: slices.Clone(v.items)}, nil
}

// LoadFixture reads a YAML document describing store contents into a new
// [MemoryStore]. Each top-level key maps to exactly one of hash, list, set
// or string:
//
//	user:1:
//	  hash: {name: alice, age: "30"}
//	queue:
//	  list: [a, b, a]
//	tags:
//	  set: [x, y]
//
// Hash field order is preserved.
func LoadFixture(r io.Reader) (*MemoryStore, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewMemoryStore(), nil
		}
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	m := NewMemoryStore()
	if len(doc.Content) == 0 {
		return m, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fixture line %d: top level must be a mapping", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, body := root.Content[i].Value, root.Content[i+1]
		if err := m.loadKey(key, body); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MemoryStore) loadKey(key string, body *yaml.Node) error {
	if body.Kind != yaml.MappingNode || len(body.Content) != 2 {
		return fmt.Errorf("fixture key %q (line %d): want exactly one of hash, list, set, string", key, body.Line)
	}
	kind, value := body.Content[0].Value, body.Content[1]
	switch kind {
	case "hash":
		if value.Kind != yaml.MappingNode {
			return fmt.Errorf("fixture key %q (line %d): hash must be a mapping", key, value.Line)
		}
		fields := make([]KeyValue, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			fields = append(fields, KeyValue{Key: value.Content[i].Value, Value: value.Content[i+1].Value})
		}
		m.HSet(key, fields...)
	case "list", "set":
		var items []string
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("fixture key %q (line %d): %w", key, value.Line, err)
		}
		if kind == "list" {
			m.RPush(key, items...)
		} else {
			m.SAdd(key, items...)
		}
	case "string":
		m.Set(key, value.Value)
	default:
		return fmt.Errorf("fixture key %q (line %d): unknown type %q", key, body.Line, kind)
	}
	return nil
}
