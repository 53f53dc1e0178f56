// Package search implements the fuzzy text search subsystem: an n-gram
// candidate prefilter (NgramIndexer) feeding a Bitap approximate matcher
// (BitapSearcher), composed by Engine into ranked queries.
package search

import "strings"

// DefaultNgramSize is the n-gram window used when no explicit Config is
// supplied.
const DefaultNgramSize = 3

// NgramIndexer builds a mapping from fixed-length, lowercased character
// n-grams to the integer ids of the entries that contain them. Callers set
// the cursor (SetCurrentID) to the position of the entry being indexed
// before driving its Searchable.Index.
type NgramIndexer struct {
	ngramSize int
	index     map[string][]int
	currentID int
}

// NewNgramIndexer creates an indexer generating n-grams of ngramSize
// characters. An ngramSize of 0 (or any input shorter than it) yields no
// n-grams at all.
func NewNgramIndexer(ngramSize int) *NgramIndexer {
	return &NgramIndexer{
		ngramSize: ngramSize,
		index:     make(map[string][]int),
	}
}

// SetCurrentID sets the id that subsequent Index calls will be recorded
// under.
func (n *NgramIndexer) SetCurrentID(id int) {
	n.currentID = id
}

// Index lowercases input, generates its n-grams, and appends the current id
// to every n-gram's candidate list.
func (n *NgramIndexer) Index(input string) {
	for _, ngram := range n.GenerateNgrams(input) {
		n.index[ngram] = append(n.index[ngram], n.currentID)
	}
}

// Get returns the candidate ids recorded under ngram, if any.
func (n *NgramIndexer) Get(ngram string) ([]int, bool) {
	ids, ok := n.index[ngram]
	return ids, ok
}

// GenerateNgrams lowercases input and produces every contiguous,
// character-counted window of exactly ngramSize runes, left to right. It
// returns nil if input has fewer characters than ngramSize, or ngramSize is
// zero.
func (n *NgramIndexer) GenerateNgrams(input string) []string {
	runes := []rune(strings.ToLower(input))
	if n.ngramSize == 0 || len(runes) < n.ngramSize {
		return nil
	}

	ngrams := make([]string, 0, len(runes)-n.ngramSize+1)
	for i := 0; i <= len(runes)-n.ngramSize; i++ {
		ngrams = append(ngrams, string(runes[i:i+n.ngramSize]))
	}
	return ngrams
}
