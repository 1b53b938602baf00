package playlist

import (
	"errors"
	"slices"
	"testing"
)

func TestNewQueue(t *testing.T) {
	q := NewQueue()

	if !q.IsEmpty() {
		t.Error("new queue should be empty")
	}
	if _, ok := q.DequeueFront(); ok {
		t.Error("DequeueFront on empty queue should return false")
	}
}

func TestQueue_Toggle(t *testing.T) {
	q := NewQueue()

	if !q.Toggle(7, "A - seven") {
		t.Error("first Toggle should queue")
	}
	if !q.Contains(7) {
		t.Error("Contains(7) = false after queueing")
	}
	if q.Label(7) != "A - seven" {
		t.Errorf("Label(7) = %q, want %q", q.Label(7), "A - seven")
	}

	if q.Toggle(7, "A - seven") {
		t.Error("second Toggle should dequeue")
	}
	if q.Contains(7) || q.Len() != 0 {
		t.Error("toggle pair should restore the original membership")
	}
	if q.Label(7) != "" {
		t.Error("label should be dropped with the id")
	}
}

func TestQueue_Toggle_NoDuplicates(t *testing.T) {
	q := NewQueue()
	q.Toggle(1, "")
	q.Toggle(2, "")
	q.Toggle(1, "")
	q.Toggle(3, "")

	if got := q.IDs(); !slices.Equal(got, []int64{2, 3}) {
		t.Errorf("IDs() = %v, want [2 3]", got)
	}
}

func TestQueue_DequeueFront(t *testing.T) {
	q := NewQueue()
	q.Toggle(7, "seven")
	q.Toggle(3, "three")

	id, ok := q.DequeueFront()

	if !ok || id != 7 {
		t.Errorf("DequeueFront() = %d, %v; want 7, true", id, ok)
	}
	if got := q.IDs(); !slices.Equal(got, []int64{3}) {
		t.Errorf("IDs() = %v, want [3]", got)
	}
	if q.Label(7) != "" {
		t.Error("dequeued label should be invalidated")
	}
	if q.Label(3) != "three" {
		t.Error("remaining label should be kept")
	}
}

func TestQueue_Editor(t *testing.T) {
	tests := []struct {
		name   string
		op     func(q *Queue) bool
		wantOK bool
		want   []int64
	}{
		{"top", func(q *Queue) bool { return q.ToTop(2) }, true, []int64{3, 1, 2, 4}},
		{"top on first row", func(q *Queue) bool { return q.ToTop(0) }, false, []int64{1, 2, 3, 4}},
		{"up", func(q *Queue) bool { return q.Up(2) }, true, []int64{1, 3, 2, 4}},
		{"up on first row", func(q *Queue) bool { return q.Up(0) }, false, []int64{1, 2, 3, 4}},
		{"down", func(q *Queue) bool { return q.Down(1) }, true, []int64{1, 3, 2, 4}},
		{"down on last row", func(q *Queue) bool { return q.Down(3) }, false, []int64{1, 2, 3, 4}},
		{"bottom", func(q *Queue) bool { return q.ToBottom(0) }, true, []int64{2, 3, 4, 1}},
		{"bottom on last row", func(q *Queue) bool { return q.ToBottom(3) }, false, []int64{1, 2, 3, 4}},
		{"remove", func(q *Queue) bool { return q.RemoveAt(1) }, true, []int64{1, 3, 4}},
		{"remove out of range", func(q *Queue) bool { return q.RemoveAt(4) }, false, []int64{1, 2, 3, 4}},
		{"up out of range", func(q *Queue) bool { return q.Up(9) }, false, []int64{1, 2, 3, 4}},
		{"down negative", func(q *Queue) bool { return q.Down(-1) }, false, []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			for _, id := range []int64{1, 2, 3, 4} {
				q.Toggle(id, "")
			}

			if ok := tt.op(q); ok != tt.wantOK {
				t.Errorf("op returned %v, want %v", ok, tt.wantOK)
			}
			if got := q.IDs(); !slices.Equal(got, tt.want) {
				t.Errorf("IDs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueue_RemoveAt_DropsLabel(t *testing.T) {
	q := NewQueue()
	q.Toggle(5, "five")

	q.RemoveAt(0)

	if q.Contains(5) || q.Label(5) != "" {
		t.Error("RemoveAt should drop membership and label")
	}
}

func TestQueue_Prune(t *testing.T) {
	q := NewQueue()
	for _, id := range []int64{1, 2, 3, 4} {
		q.Toggle(id, "")
	}

	dropped, err := q.Prune(func(id int64) (bool, error) { return id%2 == 1, nil })

	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if got := q.IDs(); !slices.Equal(got, []int64{1, 3}) {
		t.Errorf("IDs() = %v, want [1 3]", got)
	}
	if q.Contains(2) {
		t.Error("pruned id still reported as queued")
	}
}

func TestQueue_Prune_Error(t *testing.T) {
	q := NewQueue()
	q.Toggle(1, "")
	boom := errors.New("boom")

	_, err := q.Prune(func(int64) (bool, error) { return false, boom })

	if !errors.Is(err, boom) {
		t.Errorf("Prune error = %v, want boom", err)
	}
	if q.Len() != 1 {
		t.Error("failed check should keep the entry")
	}
}

func TestQueue_Restore(t *testing.T) {
	q := NewQueue()
	q.Toggle(9, "")

	q.Restore([]int64{3, 0, 5, 3}, func(id int64) string {
		return map[int64]string{3: "three", 5: "five"}[id]
	})

	if got := q.IDs(); !slices.Equal(got, []int64{3, 5}) {
		t.Errorf("IDs() = %v, want [3 5]", got)
	}
	if q.Label(5) != "five" {
		t.Errorf("Label(5) = %q, want five", q.Label(5))
	}
	if q.Contains(9) {
		t.Error("Restore should replace previous contents")
	}
}
