// Package index implements the secondary-index subsystem: an ordered
// key-to-entries map (Storage) plus the Indexer contract a Table uses to
// keep any number of such maps in sync with its writes.
package index

import (
	"github.com/acksell/norm"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Storage is the ordered key -> entries map behind one Indexer. Multiple
// entries can share a key; an entry can be filed under multiple keys.
type Storage[K constraints.Ordered, T norm.Entity[T]] struct {
	tree *btree.BTreeG[bucket[K, T]]
}

type bucket[K constraints.Ordered, T norm.Entity[T]] struct {
	key     K
	entries []norm.Entry[T]
}

func bucketLess[K constraints.Ordered, T norm.Entity[T]](a, b bucket[K, T]) bool {
	return a.key < b.key
}

// NewStorage creates an empty Storage.
func NewStorage[K constraints.Ordered, T norm.Entity[T]]() *Storage[K, T] {
	return &Storage[K, T]{tree: btree.NewG(32, bucketLess[K, T])}
}

// Push files entry under every key in keys, appending to each key's
// bucket.
func (s *Storage[K, T]) Push(keys []K, entry norm.Entry[T]) {
	for _, key := range keys {
		b, ok := s.tree.Get(bucket[K, T]{key: key})
		if !ok {
			b = bucket[K, T]{key: key}
		}
		b.entries = append(b.entries, entry)
		s.tree.ReplaceOrInsert(b)
	}
}

// Forget removes entry from the bucket under each of keys, by Id, dropping
// a bucket entirely once it's left empty.
func (s *Storage[K, T]) Forget(keys []K, entry norm.Entry[T]) {
	id := entry.Get().GetID()
	for _, key := range keys {
		b, ok := s.tree.Get(bucket[K, T]{key: key})
		if !ok {
			continue
		}
		for i, e := range b.entries {
			if e.Get().GetID() == id {
				b.entries = append(b.entries[:i], b.entries[i+1:]...)
				break
			}
		}
		if len(b.entries) == 0 {
			s.tree.Delete(bucket[K, T]{key: key})
		} else {
			s.tree.ReplaceOrInsert(b)
		}
	}
}

// Get returns a copy of the entries filed under key, or nil if there are
// none.
func (s *Storage[K, T]) Get(key K) []norm.Entry[T] {
	b, ok := s.tree.Get(bucket[K, T]{key: key})
	if !ok {
		return nil
	}
	out := make([]norm.Entry[T], len(b.entries))
	copy(out, b.entries)
	return out
}

// Len reports the number of distinct keys currently populated.
func (s *Storage[K, T]) Len() int {
	return s.tree.Len()
}
