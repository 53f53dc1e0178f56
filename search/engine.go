package search

import "sort"

// Config controls the n-gram prefilter and Bitap tolerance an Engine uses.
// The zero value is not valid; use DefaultConfig or load one via
// norm/config.
type Config struct {
	NgramSize   int
	MaxDistance int
}

// DefaultConfig returns the baseline tuning: 3 character n-grams, up to 2
// mismatches tolerated.
func DefaultConfig() Config {
	return Config{NgramSize: DefaultNgramSize, MaxDistance: 2}
}

// Result is one ranked hit: the matched item and its Bitap score.
type Result[T any] struct {
	Item  T
	Score float64
}

// maxQueryRunes bounds how long a query Engine.Search accepts, matching the
// BitapSearcher's bitapMaxPattern word width.
const maxQueryRunes = bitapMaxPattern

// Engine composes an NgramIndexer prefilter with Bitap scoring over a fixed
// positional sequence of Searchable items: item i is indexed under id i,
// and Search never revisits items the prefilter didn't surface as
// candidates.
type Engine[T Searchable] struct {
	items         []T
	indexer       *NgramIndexer
	maxMismatches int
}

// New builds an Engine over items, indexing each one immediately.
func New[T Searchable](items []T, cfg Config) *Engine[T] {
	e := &Engine[T]{
		indexer:       NewNgramIndexer(cfg.NgramSize),
		maxMismatches: cfg.MaxDistance,
	}
	e.AddItems(items)
	return e
}

// AddItems appends items to the engine, continuing the positional id
// sequence from where it left off.
func (e *Engine[T]) AddItems(items []T) {
	id := len(e.items)
	for _, item := range items {
		e.indexer.SetCurrentID(id)
		item.Index(e.indexer)
		id++
	}
	e.items = append(e.items, items...)
}

// Search returns every indexed item whose Bitap score against query clears
// the configured mismatch tolerance, ranked by descending score. It
// returns nil for an empty query or one longer than 32 characters. Tie
// order among equal scores is unspecified; callers needing a deterministic
// tiebreak should re-sort the result.
func (e *Engine[T]) Search(query string) []Result[T] {
	if len(query) == 0 || len([]rune(query)) > maxQueryRunes {
		return nil
	}

	searcher := NewBitapSearcher(query, e.maxMismatches)
	candidates := make(map[int]struct{})
	for _, ngram := range e.indexer.GenerateNgrams(query) {
		ids, ok := e.indexer.Get(ngram)
		if !ok {
			continue
		}
		for _, id := range ids {
			candidates[id] = struct{}{}
		}
	}

	results := make([]Result[T], 0, len(candidates))
	for id := range candidates {
		item := e.items[id]
		score, ok := item.GetScore(searcher)
		if !ok {
			continue
		}
		results = append(results, Result[T]{Item: item, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
