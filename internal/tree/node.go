// Package tree holds the in-memory representation of translation fragments.
//
// A fragment is an ordered mapping whose values are nested mappings, sequences
// or scalars. Key order is preserved from the source text because it drives
// both merge traversal and serialization order.
package tree

import (
	"iter"
	"strconv"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	KindMapping Kind = iota
	KindSequence
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Node is any value in a fragment tree.
type Node interface {
	Kind() Kind
}

// Mapping is an insertion-ordered string-keyed map.
// The zero value is not usable; use NewMapping.
type Mapping struct {
	keys   []string
	values map[string]Node
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Node)}
}

func (m *Mapping) Kind() Kind { return KindMapping }

// Len returns the number of keys.
func (m *Mapping) Len() int { return len(m.keys) }

// Get returns the value stored at key.
func (m *Mapping) Get(key string) (Node, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value at key. A new key is appended to the key order; an
// existing key keeps its position and only the value changes.
func (m *Mapping) Set(key string, value Node) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Keys returns a copy of the keys in insertion order.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates key/value pairs in insertion order.
func (m *Mapping) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Sequence is an ordered list of nodes.
type Sequence struct {
	Items []Node
}

func (s *Sequence) Kind() Kind { return KindSequence }

// String is a string scalar.
type String struct {
	Value string
}

func (String) Kind() Kind { return KindString }

// Number is a numeric scalar kept as its source literal.
type Number struct {
	Literal string
}

func (Number) Kind() Kind { return KindNumber }

// Float64 parses the literal.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(n.Literal, 64)
}

// Bool is a boolean scalar.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Null is the null scalar.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// IsMapping reports whether n is a non-nil mapping.
func IsMapping(n Node) bool {
	m, ok := n.(*Mapping)
	return ok && m != nil
}
