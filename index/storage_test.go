package index

import (
	"testing"

	"github.com/acksell/norm"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID       norm.Id[widget]
	Category string
}

func (w widget) GetID() norm.Id[widget] { return w.ID }

func TestStoragePushGetForget(t *testing.T) {
	s := NewStorage[string, widget]()

	a := norm.NewEntry(widget{ID: norm.NewID[widget]("a"), Category: "tools"})
	b := norm.NewEntry(widget{ID: norm.NewID[widget]("b"), Category: "tools"})

	t.Run("push files under the given key", func(t *testing.T) {
		s.Push(Single("tools"), a)
		s.Push(Single("tools"), b)
		entries := s.Get("tools")
		require.Len(t, entries, 2, "expected both entries filed under tools")
	})

	t.Run("get on an unpopulated key returns nil", func(t *testing.T) {
		require.Nil(t, s.Get("absent"), "expected nil for an unpopulated key")
	})

	t.Run("forget removes only the matching entry", func(t *testing.T) {
		s.Forget(Single("tools"), a)
		entries := s.Get("tools")
		require.Len(t, entries, 1, "expected one entry left after forgetting a")
		require.Equal(t, "b", entries[0].Get().ID.Value(), "expected b to remain")
	})

	t.Run("forgetting the last entry drops the key", func(t *testing.T) {
		s.Forget(Single("tools"), b)
		require.Nil(t, s.Get("tools"), "expected the key to be gone once its bucket is empty")
		require.Equal(t, 0, s.Len(), "expected no keys left")
	})
}

func TestKeyNormalizationHelpers(t *testing.T) {
	t.Run("Single wraps one key", func(t *testing.T) {
		require.Equal(t, []int{5}, Single(5), "unexpected Single result")
	})

	t.Run("Maybe returns nil when absent", func(t *testing.T) {
		require.Nil(t, Maybe(5, false), "expected nil when present is false")
		require.Equal(t, []int{5}, Maybe(5, true), "expected one key when present is true")
	})

	t.Run("Many passes the sequence through", func(t *testing.T) {
		require.Equal(t, []int{1, 2, 3}, Many([]int{1, 2, 3}), "expected Many to pass keys through unchanged")
	})
}
