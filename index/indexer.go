package index

import (
	"github.com/acksell/norm"
	"golang.org/x/exp/constraints"
)

// Indexer maps each stored entry to zero or more keys of type K. A Table
// keeps every registered Indexer in sync: it calls Keys for every insert,
// update and delete, and files or removes the entry in Storage
// accordingly. Concrete indexer types are expected to embed Base and
// implement only Keys.
type Indexer[T norm.Entity[T], K constraints.Ordered] interface {
	Keys(entry norm.Entry[T]) []K
	Storage() *Storage[K, T]
}

// Single normalizes a key generator that always returns exactly one key.
func Single[K any](key K) []K { return []K{key} }

// Maybe normalizes a key generator that returns a key only when present is
// true.
func Maybe[K any](key K, present bool) []K {
	if !present {
		return nil
	}
	return []K{key}
}

// Many normalizes a key generator that already produces a sequence of
// keys.
func Many[K any](keys []K) []K { return keys }

// Base supplies the Storage half of the Indexer contract, and the point
// lookup every indexer offers. Embed it and implement Keys to define a
// concrete secondary index.
type Base[T norm.Entity[T], K constraints.Ordered] struct {
	storage *Storage[K, T]
}

// NewBase creates the Storage a Base needs; call it when constructing a
// concrete indexer.
func NewBase[T norm.Entity[T], K constraints.Ordered]() Base[T, K] {
	return Base[T, K]{storage: NewStorage[K, T]()}
}

// Storage returns the ordered key map backing this indexer.
func (b *Base[T, K]) Storage() *Storage[K, T] { return b.storage }

// Find returns every entry currently filed under key.
func (b *Base[T, K]) Find(key K) []norm.Entry[T] { return b.storage.Get(key) }
