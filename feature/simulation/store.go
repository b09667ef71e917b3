package simulation

import (
	"errors"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidJSON is returned when a submitted document is not a JSON object.
var ErrInvalidJSON = errors.New("body must be a JSON object")

var defaultParams = []struct {
	key   string
	value any
}{
	{"SC", 800},
	{"BF", 300},
	{"AmpX", 0.2},
	{"AmpY", 1.0},
	{"AmpZ", 0.2},
	{"freqX", 1.0},
	{"freqY", 2.0},
	{"freqZ", 1.0},
	{"sphereCount", 0},
	{"rectangleCount", 0},
	{"quartersphereCount", 0},
	{"airfoilCount", 0},
	{"halfsphereCount", 0},
	{"pyramidCount", 0},
}

// Param is a single top-level entry of the parameter document.
type Param struct {
	Key   string
	Value string
	Kind  string
}

// Store holds the simulation parameter document handed to the Unity client.
type Store struct {
	mu  sync.RWMutex
	doc []byte
}

// NewStore returns a store seeded with the default parameters.
func NewStore() *Store {
	return &Store{doc: DefaultDocument()}
}

// DefaultDocument builds the default parameter document.
func DefaultDocument() []byte {
	doc := []byte(`{}`)
	for _, p := range defaultParams {
		// keys are literal, SetBytes cannot fail here
		doc, _ = sjson.SetBytes(doc, p.key, p.value)
	}
	return doc
}

// Set replaces the whole document.
func (s *Store) Set(raw []byte) error {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return ErrInvalidJSON
	}
	doc := make([]byte, len(raw))
	copy(doc, raw)

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

// Get returns a copy of the current document.
func (s *Store) Get() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]byte, len(s.doc))
	copy(out, s.doc)
	return out
}

// Params returns the top-level entries in document order.
func (s *Store) Params() []Param {
	var params []Param
	gjson.ParseBytes(s.Get()).ForEach(func(key, value gjson.Result) bool {
		params = append(params, Param{Key: key.String(), Value: value.String(), Kind: kindOf(value)})
		return true
	})
	return params
}

// Reset restores the default parameters.
func (s *Store) Reset() {
	doc := DefaultDocument()
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
}

func kindOf(v gjson.Result) string {
	switch v.Type {
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	case gjson.JSON:
		return "json"
	case gjson.Null:
		return "null"
	default:
		return "string"
	}
}
