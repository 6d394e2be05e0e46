// Implements the ItemQueue, an unbounded FIFO of items.
// Backs the entry queue and every station buffer.

package sim

import (
	"fmt"
	"strings"
)

// ItemQueue represents a FIFO queue of items.
// There is no reordering: items leave in the order they arrived, except for
// PrependFront, which returns a just-removed item to the head.
type ItemQueue struct {
	queue []*Item
}

// Enqueue adds an item to the back of the queue.
func (q *ItemQueue) Enqueue(it *Item) {
	q.queue = append(q.queue, it)
}

func (q *ItemQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, it := range q.queue {
		sb.WriteString(fmt.Sprint(it.ID))
		if i < len(q.queue)-1 {
			sb.WriteString(" | ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of items in the queue.
func (q *ItemQueue) Len() int {
	return len(q.queue)
}

// Peek returns the item at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *ItemQueue) Peek() *Item {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// PrependFront inserts an item at the front of the queue.
// Used when an item popped from the entry queue could not be placed and
// must keep its position.
func (q *ItemQueue) PrependFront(it *Item) {
	if it == nil {
		panic("PrependFront: item must not be nil")
	}
	q.queue = append([]*Item{it}, q.queue...)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT
// append to or reslice it.
func (q *ItemQueue) Items() []*Item {
	return q.queue
}

// DequeueFront removes and returns the oldest item, or nil if empty.
func (q *ItemQueue) DequeueFront() *Item {
	if len(q.queue) == 0 {
		return nil
	}
	it := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return it
}

// ids returns the item ids in queue order.
func (q *ItemQueue) ids() []int {
	out := make([]int, len(q.queue))
	for i, it := range q.queue {
		out[i] = it.ID
	}
	return out
}
