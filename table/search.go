package table

import (
	"sort"

	"github.com/acksell/norm"
	"github.com/acksell/norm/search"
)

// Searchable is the combined capability a record type needs for Search to
// be usable against a Table[T]: it must be an Entity (so Table can store
// it at all) and a search.Searchable (so its fields can be indexed and
// scored). Table itself never requires this -- only Search does -- so
// non-searchable record types still get Insert/Update/Delete/Find/Iter and
// secondary indices.
type Searchable[T any] interface {
	norm.Entity[T]
	search.Searchable
}

// searchableEntry adapts an Entry[T] into a search.Searchable by
// forwarding to the wrapped record, so the engine's positional sequence
// can be entries themselves rather than bare records.
type searchableEntry[T Searchable[T]] struct {
	entry norm.Entry[T]
}

func (s searchableEntry[T]) Index(ix *search.NgramIndexer) {
	s.entry.Get().Index(ix)
}

func (s searchableEntry[T]) GetScore(bs *search.BitapSearcher) (float64, bool) {
	return s.entry.Get().GetScore(bs)
}

// cachedEngine pairs a built engine with the Config it was built with.
type cachedEngine[T Searchable[T]] struct {
	cfg search.Config
	eng *search.Engine[searchableEntry[T]]
}

// searchEngine returns the cached search.Engine, building it from a full
// table snapshot if it's missing or was built with a different cfg. The
// cache is guarded by searchMu so
// concurrent read-only queries all see a consistently built engine; a
// panic while building poisons the guard permanently, and every
// subsequent call returns ok=false rather than risk operating on a
// partially built cache.
func searchEngine[T Searchable[T]](t *Table[T], cfg search.Config) (eng *search.Engine[searchableEntry[T]], ok bool) {
	t.searchMu.Lock()
	defer t.searchMu.Unlock()

	if t.searchPoisoned {
		return nil, false
	}
	if c, cached := t.searchCache.(cachedEngine[T]); cached && c.cfg == cfg {
		return c.eng, true
	}

	defer func() {
		if r := recover(); r != nil {
			t.searchPoisoned = true
			eng, ok = nil, false
		}
	}()

	entries := t.Iter()
	items := make([]searchableEntry[T], len(entries))
	for i, e := range entries {
		items[i] = searchableEntry[T]{entry: e}
	}
	built := search.New(items, cfg)
	t.searchCache = cachedEngine[T]{cfg: cfg, eng: built}
	return built, true
}

// Search runs a fuzzy text query over every entry in t, using cfg to
// control the n-gram prefilter and Bitap tolerance. Results are sorted by
// descending score, with ties broken by ascending Id for a deterministic
// order. It returns nil if the search cache is unavailable (the guard was
// poisoned by an earlier panic) rather than failing the caller's request.
func Search[T Searchable[T]](t *Table[T], query string, cfg search.Config) []search.Result[norm.Entry[T]] {
	eng, ok := searchEngine(t, cfg)
	if !ok {
		return nil
	}

	hits := eng.Search(query)
	results := make([]search.Result[norm.Entry[T]], len(hits))
	for i, h := range hits {
		results[i] = search.Result[norm.Entry[T]]{Item: h.Item.entry, Score: h.Score}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.Get().GetID().Less(results[j].Item.Get().GetID())
	})
	return results
}
