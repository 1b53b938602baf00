package playlist

// Queue is the user-curated list of tracks played before normal advance.
// An id appears at most once. Each queued id carries a display label,
// cached while the id is queued.
type Queue struct {
	playlist *Playlist
	labels   map[int64]string
}

// NewQueue creates a new empty queue.
func NewQueue() *Queue {
	return &Queue{
		playlist: NewPlaylist(),
		labels:   make(map[int64]string),
	}
}

// Toggle is the single queue/dequeue user action: it appends id when
// absent and removes it when already queued. Returns true if id is queued
// afterwards.
func (q *Queue) Toggle(id int64, label string) bool {
	if i := q.playlist.IndexOf(id); i >= 0 {
		q.RemoveAt(i)
		return false
	}
	q.playlist.Add(id)
	q.labels[id] = label
	return true
}

// Contains reports whether id is queued.
func (q *Queue) Contains(id int64) bool {
	_, ok := q.labels[id]
	return ok
}

// DequeueFront pops the head of the queue.
// Returns false if the queue is empty.
func (q *Queue) DequeueFront() (int64, bool) {
	id := q.playlist.At(0)
	if !q.playlist.Remove(0) {
		return 0, false
	}
	delete(q.labels, id)
	return id, true
}

// Label returns the cached display label of a queued id.
func (q *Queue) Label(id int64) string {
	return q.labels[id]
}

// ToTop moves the row to the head. No-op on row 0.
func (q *Queue) ToTop(index int) bool {
	if index <= 0 {
		return false
	}
	return q.playlist.Move(index, 0)
}

// Up swaps the row with the one above. No-op on row 0.
func (q *Queue) Up(index int) bool {
	if index <= 0 {
		return false
	}
	return q.playlist.Move(index, index-1)
}

// Down swaps the row with the one below. No-op on the last row.
func (q *Queue) Down(index int) bool {
	if index >= q.playlist.Len()-1 {
		return false
	}
	return q.playlist.Move(index, index+1)
}

// ToBottom moves the row to the tail. No-op on the last row.
func (q *Queue) ToBottom(index int) bool {
	last := q.playlist.Len() - 1
	if index >= last {
		return false
	}
	return q.playlist.Move(index, last)
}

// RemoveAt drops the row and its label.
func (q *Queue) RemoveAt(index int) bool {
	id := q.playlist.At(index)
	if !q.playlist.Remove(index) {
		return false
	}
	delete(q.labels, id)
	return true
}

// Prune drops every id for which exists reports false and returns how many
// were dropped. An error from exists aborts the prune with the queue
// partially pruned.
func (q *Queue) Prune(exists func(id int64) (bool, error)) (int, error) {
	dropped := 0
	for i := 0; i < q.playlist.Len(); {
		ok, err := exists(q.playlist.At(i))
		if err != nil {
			return dropped, err
		}
		if ok {
			i++
			continue
		}
		q.RemoveAt(i)
		dropped++
	}
	return dropped, nil
}

// Restore replaces the contents; duplicate ids after the first are ignored.
func (q *Queue) Restore(ids []int64, label func(id int64) string) {
	q.Clear()
	for _, id := range ids {
		if id == 0 || q.Contains(id) {
			continue
		}
		l := ""
		if label != nil {
			l = label(id)
		}
		q.Toggle(id, l)
	}
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.playlist.Clear()
	clear(q.labels)
}

// IDs returns the queued ids head first.
func (q *Queue) IDs() []int64 {
	return q.playlist.IDs()
}

// Len returns the number of queued ids.
func (q *Queue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if nothing is queued.
func (q *Queue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
