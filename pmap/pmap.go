// Package pmap implements the property-map contracts used across grafsm.
//
// This file declares the Read/ReadWrite interfaces, sentinel errors, and the
// concrete Assoc, Slice, Func and Const implementations.
package pmap

import "errors"

// Sentinel errors for property-map operations.
var (
	// ErrKeyNotFound indicates a required lookup missed.
	ErrKeyNotFound = errors.New("pmap: key not found")

	// ErrReadOnly indicates a Put on a read-only property map.
	ErrReadOnly = errors.New("pmap: property map is read-only")

	// ErrNegativeKey indicates a negative key passed to a dense Slice map.
	ErrNegativeKey = errors.New("pmap: negative key")
)

// Read is the read-only property-map contract.
type Read[K comparable, V any] interface {
	// Get returns the value bound to k.
	// Required maps return ErrKeyNotFound on a miss; optional maps
	// (built with WithDefault) return their default instead.
	Get(k K) (V, error)

	// Has reports whether k currently has an explicit binding.
	Has(k K) bool
}

// ReadWrite extends Read with mutation.
type ReadWrite[K comparable, V any] interface {
	Read[K, V]

	// Put binds v to k, inserting or overwriting.
	Put(k K, v V) error
}

// Option configures an Assoc or Slice map at construction time.
type Option[V any] func(*settings[V])

type settings[V any] struct {
	def    V
	hasDef bool
}

// WithDefault makes the map optional: lookups that miss return def
// instead of ErrKeyNotFound.
func WithDefault[V any](def V) Option[V] {
	return func(s *settings[V]) {
		s.def = def
		s.hasDef = true
	}
}

// Assoc is a map-backed associative property map for sparse key spaces.
// The zero value is not usable; construct with NewAssoc.
type Assoc[K comparable, V any] struct {
	m        map[K]V
	settings settings[V]
}

// NewAssoc builds an empty associative property map.
// Complexity: O(1) per Get/Put/Has.
func NewAssoc[K comparable, V any](opts ...Option[V]) *Assoc[K, V] {
	a := &Assoc[K, V]{m: make(map[K]V)}
	for _, opt := range opts {
		opt(&a.settings)
	}

	return a
}

// Get returns the value bound to k, the default on a miss for optional
// maps, or ErrKeyNotFound otherwise.
func (a *Assoc[K, V]) Get(k K) (V, error) {
	if v, ok := a.m[k]; ok {
		return v, nil
	}
	if a.settings.hasDef {
		return a.settings.def, nil
	}
	var zero V

	return zero, ErrKeyNotFound
}

// Put binds v to k.
func (a *Assoc[K, V]) Put(k K, v V) error {
	a.m[k] = v

	return nil
}

// Has reports whether k has an explicit binding.
func (a *Assoc[K, V]) Has(k K) bool {
	_, ok := a.m[k]

	return ok
}

// Len returns the number of explicit bindings.
func (a *Assoc[K, V]) Len() int { return len(a.m) }

// Slice is a dense array-backed property map keyed by small non-negative
// integers (vertex handles). Access is O(1); Put grows the backing store
// as needed.
type Slice[V any] struct {
	vals     []V
	set      []bool
	settings settings[V]
}

// NewSlice builds a dense property map with capacity for keys [0, n).
func NewSlice[V any](n int, opts ...Option[V]) *Slice[V] {
	if n < 0 {
		n = 0
	}
	s := &Slice[V]{vals: make([]V, n), set: make([]bool, n)}
	for _, opt := range opts {
		opt(&s.settings)
	}

	return s
}

// Get returns the value bound to k, applying the same required/optional
// miss semantics as Assoc. Negative keys fail with ErrNegativeKey.
func (s *Slice[V]) Get(k int) (V, error) {
	var zero V
	if k < 0 {
		return zero, ErrNegativeKey
	}
	if k < len(s.vals) && s.set[k] {
		return s.vals[k], nil
	}
	if s.settings.hasDef {
		return s.settings.def, nil
	}

	return zero, ErrKeyNotFound
}

// Put binds v to k, growing the backing store if k is out of range.
func (s *Slice[V]) Put(k int, v V) error {
	if k < 0 {
		return ErrNegativeKey
	}
	if k >= len(s.vals) {
		grown := make([]V, k+1)
		copy(grown, s.vals)
		s.vals = grown
		grownSet := make([]bool, k+1)
		copy(grownSet, s.set)
		s.set = grownSet
	}
	s.vals[k] = v
	s.set[k] = true

	return nil
}

// Has reports whether k has an explicit binding.
func (s *Slice[V]) Has(k int) bool {
	return k >= 0 && k < len(s.set) && s.set[k]
}

// Func is a read-only property map computing values from a function.
type Func[K comparable, V any] struct {
	fn func(K) V
}

// NewFunc wraps fn as a Read property map. Every key is considered bound.
func NewFunc[K comparable, V any](fn func(K) V) *Func[K, V] {
	return &Func[K, V]{fn: fn}
}

// Get computes the value for k.
func (f *Func[K, V]) Get(k K) (V, error) { return f.fn(k), nil }

// Has always reports true: a Func map is total.
func (f *Func[K, V]) Has(K) bool { return true }

// Put fails: Func maps are read-only.
func (f *Func[K, V]) Put(K, V) error { return ErrReadOnly }

// Const is a property map returning the same value for every key.
type Const[K comparable, V any] struct {
	val V
}

// NewConst builds a constant property map.
func NewConst[K comparable, V any](v V) *Const[K, V] {
	return &Const[K, V]{val: v}
}

// Get returns the constant value.
func (c *Const[K, V]) Get(K) (V, error) { return c.val, nil }

// Has always reports true.
func (c *Const[K, V]) Has(K) bool { return true }

// Put is accepted and ignored, mirroring a write-discarding sink.
func (c *Const[K, V]) Put(K, V) error { return nil }
