// Package norm is an embeddable, in-process, in-memory entity store: a
// Table keeps an authoritative set of records addressable by a typed Id,
// kept in sync with any number of pluggable secondary Indexers, and
// optionally searchable by fuzzy text match.
package norm

import "github.com/acksell/norm/search"

// Entity is the capability a record type exposes to live inside a Table: a
// typed, totally ordered identifier. Binding T to itself (Entity[T])
// gives Id[T] the same compile-time discrimination a phantom type
// parameter would: an Id[User] can never be passed where an Id[Note] is
// expected, because the two instantiate different Go types.
type Entity[T any] interface {
	GetID() Id[T]
}

// Id is an opaque, typed string identifier. T carries no data; it exists
// only to keep identifiers belonging to different record types from being
// mixed up at compile time.
type Id[T any] struct {
	value string
}

// NewID wraps value as the Id of a T.
func NewID[T any](value string) Id[T] {
	return Id[T]{value: value}
}

// Value returns the identifier's underlying string.
func (id Id[T]) Value() string { return id.value }

func (id Id[T]) String() string { return id.value }

// Less reports whether id sorts before other, by string order.
func (id Id[T]) Less(other Id[T]) bool { return id.value < other.value }

// Id participates in fuzzy search by indexing and scoring its own string,
// the same way a Field does.
func (id Id[T]) Index(indexer *search.NgramIndexer) {
	indexer.Index(id.value)
}

func (id Id[T]) GetScore(searcher *search.BitapSearcher) (float64, bool) {
	return searcher.GetScore(id.value)
}
