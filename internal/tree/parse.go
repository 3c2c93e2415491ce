package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/adhocore/jsonc"
)

// ErrRootNotObject is returned when a fragment's top-level value is not an object.
var ErrRootNotObject = errors.New("fragment root must be an object")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes JSON5 (a superset of JSON and JSONC) into an ordered Mapping.
// Duplicate keys keep the first key's position and the last value.
func Parse(data []byte) (*Mapping, error) {
	src := normalizeNumbers(bytes.TrimPrefix(data, utf8BOM))
	std := jsonc.New().Strip(src)

	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()

	root, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected content after the top-level value")
	}
	m, ok := root.(*Mapping)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrRootNotObject, root.Kind())
	}
	return m, nil
}

func decodeValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeMapping(dec)
		case '[':
			return decodeSequence(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String{Value: t}, nil
	case json.Number:
		return Number{Literal: string(t)}, nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeMapping(dec *json.Decoder) (*Mapping, error) {
	m := NewMapping()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		m.Set(key, v)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSequence(dec *json.Decoder) (*Sequence, error) {
	s := &Sequence{Items: []Node{}}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", len(s.Items), err)
		}
		s.Items = append(s.Items, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return s, nil
}
