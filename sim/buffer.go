package sim

import "fmt"

// BufferPrefix is prepended to a station name to form its buffer's name.
const BufferPrefix = "Waiting_"

// BufferName returns the name of the waiting buffer in front of station.
func BufferName(station string) string {
	return BufferPrefix + station
}

// Buffer is the bounded waiting zone in front of a single station.
// Capacity exhaustion is an expected condition: TryEnqueue reports it by
// returning false.
type Buffer struct {
	Name     string
	Station  string
	Capacity int
	queue    ItemQueue
}

// NewBuffer creates an empty buffer for station. Capacity must be positive.
func NewBuffer(station string, capacity int) *Buffer {
	if capacity < 1 {
		panic(fmt.Sprintf("NewBuffer: capacity must be >= 1, got %d", capacity))
	}
	return &Buffer{
		Name:     BufferName(station),
		Station:  station,
		Capacity: capacity,
	}
}

// TryEnqueue appends it if there is room and reports whether it did.
func (b *Buffer) TryEnqueue(it *Item) bool {
	if b.Full() {
		return false
	}
	b.queue.Enqueue(it)
	it.Location = Location{Kind: LocInBuffer, Name: b.Name}
	return true
}

// DequeueFront removes and returns the oldest item, or nil if empty.
func (b *Buffer) DequeueFront() *Item {
	return b.queue.DequeueFront()
}

// Len returns the number of waiting items.
func (b *Buffer) Len() int {
	return b.queue.Len()
}

// Full reports whether the buffer is at capacity.
func (b *Buffer) Full() bool {
	return b.queue.Len() >= b.Capacity
}

// Items returns the waiting items, oldest first. Callers MUST NOT modify it.
func (b *Buffer) Items() []*Item {
	return b.queue.Items()
}

func (b *Buffer) String() string {
	status := "Free"
	if b.Full() {
		status = "FULL"
	}
	return fmt.Sprintf("%s: %d/%d (%s). Queue: %s", b.Name, b.Len(), b.Capacity, status, b.queue.String())
}
