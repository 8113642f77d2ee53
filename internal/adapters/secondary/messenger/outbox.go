package messenger

import (
	"errors"
	"sync"
)

// DefaultOutboxSize bounds how many chat frames may wait on a slow consumer.
const DefaultOutboxSize = 256

var ErrOutboxClosed = errors.New("outbox closed")

type frame struct {
	envelope  Envelope
	droppable bool
}

// Outbox is the bounded per-connection outbound queue. When the queue is
// full a new chat frame evicts the oldest queued chat frame; signaling and
// membership frames are always accepted, growing the queue past the bound if
// needed. A client that misses a chat frame recovers it from the message
// store on next room open, so shedding chat under congestion is safe.
type Outbox struct {
	mu     sync.Mutex
	frames []frame
	limit  int
	wake   chan struct{}
	closed bool
}

func NewOutbox(limit int) *Outbox {
	if limit <= 0 {
		limit = DefaultOutboxSize
	}

	return &Outbox{
		limit: limit,
		wake:  make(chan struct{}, 1),
	}
}

func (o *Outbox) Push(envelope Envelope, droppable bool) error {
	o.mu.Lock()

	if o.closed {
		o.mu.Unlock()
		return ErrOutboxClosed
	}

	if droppable && len(o.frames) >= o.limit {
		if !o.evictOldestDroppable() {
			// Everything queued is signaling; shed the incoming chat frame.
			o.mu.Unlock()
			return nil
		}
	}

	o.frames = append(o.frames, frame{envelope: envelope, droppable: droppable})
	o.mu.Unlock()

	o.signal()
	return nil
}

// Pop removes and returns the oldest queued frame, if any.
func (o *Outbox) Pop() (Envelope, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.frames) == 0 {
		return Envelope{}, false
	}

	f := o.frames[0]
	o.frames = o.frames[1:]
	return f.envelope, true
}

// Wake is signalled whenever a frame is pushed or the outbox is closed.
func (o *Outbox) Wake() <-chan struct{} {
	return o.wake
}

func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.frames)
}

func (o *Outbox) Closed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.closed
}

// Close rejects further pushes. Already queued frames stay poppable so the
// write pump can flush them before shutting the connection down.
func (o *Outbox) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}

	o.closed = true
	o.mu.Unlock()

	o.signal()
}

// evictOldestDroppable must be called with the lock held.
func (o *Outbox) evictOldestDroppable() bool {
	for i, f := range o.frames {
		if f.droppable {
			o.frames = append(o.frames[:i], o.frames[i+1:]...)
			return true
		}
	}

	return false
}

func (o *Outbox) signal() {
	select {
	case o.wake <- struct{}{}:
	default:
	}
}
