// Package table implements Table[T], the authoritative in-memory set of
// records for one entity type, kept in sync with any number of registered
// secondary Indexers and an optional fuzzy search cache.
package table

import (
	"reflect"
	"sync"

	"github.com/acksell/norm"
	"github.com/acksell/norm/index"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

type entryItem[T norm.Entity[T]] struct {
	id    norm.Id[T]
	entry norm.Entry[T]
}

func entryLess[T norm.Entity[T]](a, b entryItem[T]) bool {
	return a.id.Value() < b.id.Value()
}

type indexBinding[T norm.Entity[T]] struct {
	raw    any
	index  func(norm.Entry[T])
	forget func(norm.Entry[T])
}

// Table is the authoritative, Id-keyed store of Entry[T] for one record
// type, plus the registry of secondary Indexers kept in sync with it.
type Table[T norm.Entity[T]] struct {
	entities *btree.BTreeG[entryItem[T]]
	indices  map[reflect.Type]indexBinding[T]

	searchMu       sync.Mutex
	searchCache    any
	searchPoisoned bool
}

// New creates an empty Table.
func New[T norm.Entity[T]]() *Table[T] {
	return &Table[T]{
		entities: btree.NewG(32, entryLess[T]),
		indices:  make(map[reflect.Type]indexBinding[T]),
	}
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.Name()
	}
	return "unknown"
}

func (t *Table[T]) invalidateSearch() {
	t.searchMu.Lock()
	defer t.searchMu.Unlock()
	t.searchCache = nil
}

// Insert adds record under its Id. It fails with *norm.AlreadyExistsError
// if the Id is already present, touching no index in that case.
func (t *Table[T]) Insert(record T) (norm.Entry[T], error) {
	id := record.GetID()
	if _, ok := t.entities.Get(entryItem[T]{id: id}); ok {
		return norm.Entry[T]{}, &norm.AlreadyExistsError[T]{Id: id, TypeName: typeName[T]()}
	}

	entry := norm.NewEntry(record)
	for _, binding := range t.indices {
		binding.index(entry)
	}
	t.entities.ReplaceOrInsert(entryItem[T]{id: id, entry: entry})
	t.invalidateSearch()
	return entry, nil
}

// Update replaces the record stored under its Id, failing with
// *norm.NotFoundError if the Id is absent. Every registered Indexer
// forgets the previous version and indexes the new one.
func (t *Table[T]) Update(record T) (norm.Entry[T], error) {
	id := record.GetID()
	old, ok := t.entities.Get(entryItem[T]{id: id})
	if !ok {
		return norm.Entry[T]{}, &norm.NotFoundError[T]{Id: id, TypeName: typeName[T]()}
	}

	for _, binding := range t.indices {
		binding.forget(old.entry)
	}
	entry := norm.NewEntry(record)
	for _, binding := range t.indices {
		binding.index(entry)
	}
	t.entities.ReplaceOrInsert(entryItem[T]{id: id, entry: entry})
	t.invalidateSearch()
	return entry, nil
}

// Delete removes the entry stored under id, failing with
// *norm.NotFoundError if absent.
func (t *Table[T]) Delete(id norm.Id[T]) error {
	old, ok := t.entities.Get(entryItem[T]{id: id})
	if !ok {
		return &norm.NotFoundError[T]{Id: id, TypeName: typeName[T]()}
	}

	t.entities.Delete(entryItem[T]{id: id})
	for _, binding := range t.indices {
		binding.forget(old.entry)
	}
	t.invalidateSearch()
	return nil
}

// Find returns the entry stored under id, if any.
func (t *Table[T]) Find(id norm.Id[T]) (norm.Entry[T], bool) {
	item, ok := t.entities.Get(entryItem[T]{id: id})
	if !ok {
		return norm.Entry[T]{}, false
	}
	return item.entry, true
}

// Iter returns every entry currently stored, in ascending Id order.
func (t *Table[T]) Iter() []norm.Entry[T] {
	entries := make([]norm.Entry[T], 0, t.entities.Len())
	t.entities.Ascend(func(item entryItem[T]) bool {
		entries = append(entries, item.entry)
		return true
	})
	return entries
}

// Len reports how many entries are currently stored.
func (t *Table[T]) Len() int { return t.entities.Len() }

// AddIndex registers idx with t, backfilling it against every entry
// already stored. Registering an indexer whose concrete type is already
// registered is a no-op: the duplicate idx is discarded, so GetIndex
// always finds at most one indexer per type.
func AddIndex[T norm.Entity[T], K constraints.Ordered](t *Table[T], idx index.Indexer[T, K]) {
	key := reflect.TypeOf(idx)
	if _, exists := t.indices[key]; exists {
		return
	}

	store := idx.Storage()
	binding := indexBinding[T]{
		raw: idx,
		index: func(e norm.Entry[T]) {
			store.Push(idx.Keys(e), e)
		},
		forget: func(e norm.Entry[T]) {
			store.Forget(idx.Keys(e), e)
		},
	}
	t.indices[key] = binding

	t.entities.Ascend(func(item entryItem[T]) bool {
		binding.index(item.entry)
		return true
	})
}

// GetIndex returns the previously-registered indexer of concrete type I,
// if one has been added to t.
func GetIndex[T norm.Entity[T], I any](t *Table[T]) (I, bool) {
	key := reflect.TypeOf((*I)(nil)).Elem()
	binding, ok := t.indices[key]
	if !ok {
		var zero I
		return zero, false
	}
	v, ok := binding.raw.(I)
	return v, ok
}
