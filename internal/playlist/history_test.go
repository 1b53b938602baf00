package playlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shelf/internal/browse"
)

func at(id int64) browse.Position {
	return browse.Position{TitleIndex: int(id), TrackID: id}
}

func allValid(int64) (bool, error) { return true, nil }

func TestHistory_NeverExceedsBound(t *testing.T) {
	h := NewHistory(0)

	for i := int64(1); i <= 250; i++ {
		h.Push(at(i))
		require.LessOrEqual(t, h.Len(), MaxHistory)
	}

	entries := h.Entries()
	require.Len(t, entries, MaxHistory)
	assert.Equal(t, int64(151), entries[0].TrackID, "oldest entries evicted first")
	top, ok := h.Top()
	require.True(t, ok)
	assert.Equal(t, int64(250), top.TrackID)
}

func TestNewHistory_ClampsSize(t *testing.T) {
	h := NewHistory(3)
	for i := int64(1); i <= 5; i++ {
		h.Push(at(i))
	}
	assert.Equal(t, 3, h.Len())

	h = NewHistory(1000)
	for i := int64(1); i <= 150; i++ {
		h.Push(at(i))
	}
	assert.Equal(t, MaxHistory, h.Len())
}

func TestHistory_Previous_SingleEntry(t *testing.T) {
	h := NewHistory(0)
	h.Push(at(1))

	_, ok, err := h.Previous(allValid)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len(), "a lone entry is not consumed")
}

func TestHistory_Previous_PopsCurrentThenReturnsPrior(t *testing.T) {
	h := NewHistory(0)
	h.Push(at(1))
	h.Push(at(2))
	h.Push(at(3))

	pos, ok, err := h.Previous(allValid)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), pos.TrackID)
	assert.Equal(t, 1, h.Len())
}

func TestHistory_Previous_SkipsDeleted(t *testing.T) {
	h := NewHistory(0)
	h.Push(at(1))
	h.Push(at(2))
	h.Push(at(3))
	h.Push(at(4))

	deleted := map[int64]bool{2: true, 3: true}
	var checked []int64
	pos, ok, err := h.Previous(func(id int64) (bool, error) {
		checked = append(checked, id)
		return !deleted[id], nil
	})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), pos.TrackID)
	assert.Equal(t, []int64{3, 2, 1}, checked, "the current entry is never validated")
	assert.Equal(t, 0, h.Len())
}

func TestHistory_Previous_Exhausted(t *testing.T) {
	h := NewHistory(0)
	h.Push(at(1))
	h.Push(at(2))

	_, ok, err := h.Previous(func(int64) (bool, error) { return false, nil })

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestHistory_Previous_Error(t *testing.T) {
	h := NewHistory(0)
	h.Push(at(1))
	h.Push(at(2))
	boom := errors.New("boom")

	_, ok, err := h.Previous(func(int64) (bool, error) { return false, boom })

	require.ErrorIs(t, err, boom)
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len(), "the unchecked entry stays")
}

func TestHistory_Prune(t *testing.T) {
	h := NewHistory(0)
	for i := int64(1); i <= 5; i++ {
		h.Push(at(i))
	}

	dropped, err := h.Prune(func(id int64) (bool, error) { return id != 2 && id != 4, nil })

	require.NoError(t, err)
	assert.Equal(t, 2, dropped)
	var ids []int64
	for _, e := range h.Entries() {
		ids = append(ids, e.TrackID)
	}
	assert.Equal(t, []int64{1, 3, 5}, ids)
}

func TestHistory_Prune_ErrorKeepsRest(t *testing.T) {
	h := NewHistory(0)
	for i := int64(1); i <= 4; i++ {
		h.Push(at(i))
	}
	boom := errors.New("boom")

	dropped, err := h.Prune(func(id int64) (bool, error) {
		switch id {
		case 1:
			return false, nil
		case 3:
			return false, boom
		}
		return true, nil
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, dropped)
	var ids []int64
	for _, e := range h.Entries() {
		ids = append(ids, e.TrackID)
	}
	assert.Equal(t, []int64{2, 3, 4}, ids)
}

func TestHistory_RestoreKeepsNewest(t *testing.T) {
	h := NewHistory(2)

	h.Restore([]browse.Position{at(1), at(2), at(3)})

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].TrackID)
	assert.Equal(t, int64(3), entries[1].TrackID)
}
