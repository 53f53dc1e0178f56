package norm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type scribble struct {
	ID   Id[scribble]
	Text string
}

func (s scribble) GetID() Id[scribble] { return s.ID }

func (s scribble) Compare(other scribble) int {
	switch {
	case s.Text < other.Text:
		return -1
	case s.Text > other.Text:
		return 1
	default:
		return 0
	}
}

func TestEntryCloneSharesHandle(t *testing.T) {
	e := NewEntry(scribble{ID: NewID[scribble]("s1"), Text: "hello"})
	clone := e.Clone()

	require.True(t, e.Equal(clone), "a clone must share its origin's handle")
	require.Same(t, e.Get(), clone.Get(), "clone must point at the same underlying record")
}

func TestEntryIntoOwnedCopies(t *testing.T) {
	e := NewEntry(scribble{ID: NewID[scribble]("s1"), Text: "hello"})
	owned := e.IntoOwned()
	require.Equal(t, "hello", owned.Text, "unexpected value from IntoOwned")
}

func TestEntryCompareForwardsToT(t *testing.T) {
	a := NewEntry(scribble{ID: NewID[scribble]("a"), Text: "apple"})
	b := NewEntry(scribble{ID: NewID[scribble]("b"), Text: "banana"})
	require.Negative(t, a.Compare(b), "expected apple to sort before banana")
	require.Positive(t, b.Compare(a), "expected banana to sort after apple")
}

func TestIdOrderingAndValue(t *testing.T) {
	a := NewID[scribble]("a")
	b := NewID[scribble]("b")
	require.True(t, a.Less(b), "expected a to sort before b")
	require.False(t, b.Less(a), "expected b not to sort before a")
	require.Equal(t, "a", a.Value(), "unexpected Id value")
}
