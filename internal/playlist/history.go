package playlist

import (
	"github.com/llehouerou/shelf/internal/browse"
)

// MaxHistory is the upper bound on remembered positions.
const MaxHistory = 100

// History is a bounded stack of played positions. The top entry is the
// track currently playing; overflow evicts the oldest entry.
type History struct {
	entries []browse.Position
	maxSize int
}

// NewHistory creates an empty history holding at most maxSize entries.
// Sizes outside 1..MaxHistory are clamped to MaxHistory.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 || maxSize > MaxHistory {
		maxSize = MaxHistory
	}
	return &History{
		entries: make([]browse.Position, 0, maxSize),
		maxSize: maxSize,
	}
}

// Push records pos as the new top.
func (h *History) Push(pos browse.Position) {
	h.entries = append(h.entries, pos)
	if len(h.entries) > h.maxSize {
		excess := len(h.entries) - h.maxSize
		h.entries = append(h.entries[:0], h.entries[excess:]...)
	}
}

// Previous discards the top entry (the current track) and pops entries
// until one passes valid. Entries that fail valid are discarded. Returns
// false when the stack held one entry or less, or when every remaining
// entry was invalid; the stack is then empty or holds only what was left.
//
// An error from valid stops the walk; the entry being checked is kept.
func (h *History) Previous(valid func(id int64) (bool, error)) (browse.Position, bool, error) {
	if len(h.entries) <= 1 {
		return browse.Position{}, false, nil
	}
	h.entries = h.entries[:len(h.entries)-1]

	for len(h.entries) > 0 {
		top := h.entries[len(h.entries)-1]
		ok, err := valid(top.TrackID)
		if err != nil {
			return browse.Position{}, false, err
		}
		h.entries = h.entries[:len(h.entries)-1]
		if ok {
			return top, true, nil
		}
	}
	return browse.Position{}, false, nil
}

// Prune drops every entry whose track fails valid, keeping order.
func (h *History) Prune(valid func(id int64) (bool, error)) (int, error) {
	kept := h.entries[:0]
	dropped := 0
	for i, e := range h.entries {
		ok, err := valid(e.TrackID)
		if err != nil {
			h.entries = append(kept, h.entries[i:]...)
			return dropped, err
		}
		if ok {
			kept = append(kept, e)
		} else {
			dropped++
		}
	}
	h.entries = kept
	return dropped, nil
}

// Top returns the most recent entry.
func (h *History) Top() (browse.Position, bool) {
	if len(h.entries) == 0 {
		return browse.Position{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries returns a copy, oldest first.
func (h *History) Entries() []browse.Position {
	result := make([]browse.Position, len(h.entries))
	copy(result, h.entries)
	return result
}

// Restore replaces the contents, keeping the newest entries if there are
// too many.
func (h *History) Restore(entries []browse.Position) {
	h.Clear()
	for _, e := range entries {
		h.Push(e)
	}
}

// Clear empties the history.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
