package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListScoresBestChild(t *testing.T) {
	ix := NewNgramIndexer(3)
	list := List[Field]{"apple", "banana", "cherry"}
	list.Index(ix)

	b := NewBitapSearcher("banana", 0)
	score, ok := list.GetScore(b)
	require.True(t, ok, "expected the matching element to produce a score")
	require.Equal(t, 1.0, score, "exact match among the list's elements should score 1.0")
}

func TestListAbsentWhenNoChildMatches(t *testing.T) {
	list := List[Field]{"apple", "banana"}
	b := NewBitapSearcher("zzzzzzzz", 0)
	_, ok := list.GetScore(b)
	require.False(t, ok, "expected no score when nothing in the list matches")
}

func TestOptionalPresentAndAbsent(t *testing.T) {
	present := Some(Field("hello"))
	b := NewBitapSearcher("hello", 0)
	score, ok := present.GetScore(b)
	require.True(t, ok, "expected a present Optional to score")
	require.Equal(t, 1.0, score, "unexpected score for an exact match")

	absent := None[Field]()
	_, ok = absent.GetScore(b)
	require.False(t, ok, "expected an absent Optional never to score")
}
