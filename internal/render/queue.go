package render

import (
	"sort"
	"sync"
)

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// Scheduler runs callbacks once on the next frame, like requestAnimationFrame.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler flushed by the host once per displayed frame.
// Callbacks requested while a flush runs wait for the next flush.
type FrameQueue struct {
	mu      sync.Mutex
	last    FrameID
	pending map[FrameID]func()
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.pending == nil {
		q.pending = make(map[FrameID]func())
	}
	q.last++
	q.pending[q.last] = fn
	return q.last
}

// CancelFrame drops a pending request. Unknown or already run ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	delete(q.pending, id)
	q.mu.Unlock()
}

// Pending returns the number of queued requests.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs the callbacks queued so far in request order and returns how
// many ran.
func (q *FrameQueue) Flush() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	if len(batch) == 0 {
		return 0
	}
	ids := make([]FrameID, 0, len(batch))
	for id := range batch {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		batch[id]()
	}
	return len(ids)
}
