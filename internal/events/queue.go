package events

import "sync"

// queue is an unbounded multi-producer FIFO. pop blocks until an item is
// available or every registered producer has finished.
type queue struct {
	mu        sync.Mutex
	cond      *sync.Cond
	items     []Event
	producers int
}

func newQueue() *queue {
	q := &queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// addProducer must be called before the producer goroutine starts.
func (q *queue) addProducer() {
	q.mu.Lock()
	q.producers++
	q.mu.Unlock()
}

func (q *queue) producerDone() {
	q.mu.Lock()
	q.producers--
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *queue) push(ev Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()
	q.cond.Signal()
}

func (q *queue) pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.producers == 0 {
			return nil, false
		}
		q.cond.Wait()
	}

	ev := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return ev, true
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
