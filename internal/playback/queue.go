package playback

import (
	"fmt"
)

// QueueEntry is one queue row as displayed.
type QueueEntry struct {
	ID    int64
	Label string
}

// ToggleQueue queues the selected title, or dequeues it if already queued.
// Returns whether the title is queued afterwards.
func (s *Sequencer) ToggleQueue() (bool, error) {
	sel := s.cursor.Selection()
	if sel.IsZero() {
		return false, ErrEmptySelection
	}
	return s.ToggleQueueID(sel.TrackID)
}

// ToggleQueueID toggles queue membership of a track id.
func (s *Sequencer) ToggleQueueID(id int64) (bool, error) {
	if s.queue.Contains(id) {
		s.queue.Toggle(id, "")
		s.emitQueue()
		return false, nil
	}
	track, err := s.store.TrackByID(id)
	if err != nil {
		return false, err
	}
	s.queue.Toggle(id, track.Label())
	s.emitQueue()
	return true, nil
}

// EditQueue applies an editor action to a queue row. Returns false when
// the action was a no-op at a boundary or row is out of range.
func (s *Sequencer) EditQueue(op EditOp, row int) (bool, error) {
	var ok bool
	switch op {
	case EditTop:
		ok = s.queue.ToTop(row)
	case EditUp:
		ok = s.queue.Up(row)
	case EditDown:
		ok = s.queue.Down(row)
	case EditBottom:
		ok = s.queue.ToBottom(row)
	case EditRemove:
		ok = s.queue.RemoveAt(row)
	default:
		return false, fmt.Errorf("unknown queue edit %d", op)
	}
	if ok {
		s.emitQueue()
	}
	return ok, nil
}

// Queued reports whether id is in the queue. It is the membership
// predicate for browse.Cursor.Rows.
func (s *Sequencer) Queued(id int64) bool {
	return s.queue.Contains(id)
}

// QueueEntries returns the queue head first.
func (s *Sequencer) QueueEntries() []QueueEntry {
	ids := s.queue.IDs()
	entries := make([]QueueEntry, len(ids))
	for i, id := range ids {
		entries[i] = QueueEntry{ID: id, Label: s.queue.Label(id)}
	}
	return entries
}

func (s *Sequencer) emitQueue() {
	e := QueueChange{Entries: s.QueueEntries()}
	s.broadcast(func(sub *Subscription) { sub.sendQueue(e) })
}
