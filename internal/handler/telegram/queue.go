package telegram

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-workers-bot/models"
)

type queuedUpdate struct {
	ctx    context.Context
	update models.Update
}

// userQueues keeps a FIFO of pending updates per user. An entry exists only
// while a drainer goroutine owns it, so the map only grows with the number of
// users that have an update in flight.
type userQueues struct {
	mu     sync.Mutex
	queues map[int64][]queuedUpdate
}

func newUserQueues() *userQueues {
	return &userQueues{queues: make(map[int64][]queuedUpdate)}
}

// push appends item to the queue of userID. It reports true when the queue was
// idle and the caller must start a drainer for it.
func (q *userQueues) push(userID int64, item queuedUpdate) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending, active := q.queues[userID]
	q.queues[userID] = append(pending, item)
	return !active
}

// next pops the oldest update of userID. When nothing is left the entry is
// removed and next returns false; the drainer must exit then.
func (q *userQueues) next(userID int64) (queuedUpdate, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending := q.queues[userID]
	if len(pending) == 0 {
		delete(q.queues, userID)
		return queuedUpdate{}, false
	}

	item := pending[0]
	pending[0] = queuedUpdate{}
	q.queues[userID] = pending[1:]
	return item, true
}

func (q *userQueues) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queues)
}
