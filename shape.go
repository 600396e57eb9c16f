package pp

import "fmt"

// KeyType is the type tag a store reports for a key.
type KeyType int

const (
	TypeAbsent KeyType = iota
	TypeMapping
	TypeSequence
	TypeCollection
	TypeUnsupported
)

// String returns the store-side name of the type.
func (t KeyType) String() string {
	switch t {
	case TypeAbsent:
		return "none"
	case TypeMapping:
		return "hash"
	case TypeSequence:
		return "list"
	case TypeCollection:
		return "set"
	default:
		return "unsupported"
	}
}

// Reply is the raw payload a store returns for a key. Nil marks a reply
// that is not an array at all.
type Reply struct {
	Items []string
	Nil   bool
}

// Shape is the canonical form of a fetched value. It is one of [Mapping],
// [Sequence] or [Collection].
type Shape interface {
	shape()
}

// KeyValue is a single mapping entry.
type KeyValue struct {
	Key   string
	Value string
}

// Mapping is an ordered field set with unique keys.
type Mapping struct {
	Entries []KeyValue
}

// Sequence is an ordered list; duplicates are allowed.
type Sequence struct {
	Items []string
}

// Collection is a set of distinct strings in source order.
type Collection struct {
	Items []string
}

func (Mapping) shape()    {}
func (Sequence) shape()   {}
func (Collection) shape() {}

// Keys returns the mapping keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Values returns the mapping values in key order.
func (m Mapping) Values() []string {
	values := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		values[i] = e.Value
	}
	return values
}

// Normalize converts a raw reply into a [Shape] according to the key's type.
// A nil Shape with a nil error means the key holds no value.
func Normalize(t KeyType, reply Reply) (Shape, error) {
	switch t {
	case TypeUnsupported:
		return nil, ErrWrongType
	case TypeAbsent:
		return nil, nil
	}
	if reply.Nil {
		return nil, nil
	}
	switch t {
	case TypeMapping:
		return pairs(reply.Items)
	case TypeSequence:
		return Sequence{Items: clone(reply.Items)}, nil
	case TypeCollection:
		return Collection{Items: distinct(reply.Items)}, nil
	default:
		return nil, fmt.Errorf("%w: type tag %d", ErrWrongType, int(t))
	}
}

func pairs(items []string) (Mapping, error) {
	if len(items)%2 != 0 {
		return Mapping{}, fmt.Errorf("%w: odd number of elements (%d) in field/value reply", ErrMalformedReply, len(items))
	}
	entries := make([]KeyValue, 0, len(items)/2)
	index := make(map[string]int, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		k, v := items[i], items[i+1]
		if at, ok := index[k]; ok {
			entries[at].Value = v
			continue
		}
		index[k] = len(entries)
		entries = append(entries, KeyValue{Key: k, Value: v})
	}
	return Mapping{Entries: entries}, nil
}

func distinct(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func clone(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
