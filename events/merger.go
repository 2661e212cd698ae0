package events

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Publish once the consumer has dropped the
// merger. Producers treat it as their shutdown signal.
var ErrClosed = errors.New("events: merger closed")

// Merger fans events from multiple producers into one ordered channel.
// Thread-Safety:
//   - Publish: multiple producers OK, one goroutine per handle
//   - Events: single consumer (control loop)
//
// Delivery is FIFO at the merge point; within one producer, events
// arrive in publish order. The merged channel is closed when the last
// producer detaches, which the consumer observes as receive failure.
type Merger struct {
	ch        chan Event
	done      chan struct{}
	closeOnce sync.Once
	producers atomic.Int32
}

// NewMerger creates a merger with the given channel capacity.
func NewMerger(buffer int) *Merger {
	return &Merger{
		ch:   make(chan Event, buffer),
		done: make(chan struct{}),
	}
}

// Attach registers a new producer handle. Call before the producer
// goroutine starts publishing.
func (m *Merger) Attach() *Producer {
	m.producers.Add(1)
	return &Producer{m: m}
}

// Events is the single blocking-receive endpoint.
func (m *Merger) Events() <-chan Event {
	return m.ch
}

// Close drops the consumer side. Pending and future Publish calls
// fail with ErrClosed.
func (m *Merger) Close() {
	m.closeOnce.Do(func() { close(m.done) })
}

// Producer is one independent publishing handle into a Merger.
// Each handle belongs to a single goroutine: the channel close on
// last detach is safe because a handle never publishes after its own
// Close, and the count cannot reach zero while any handle is live.
type Producer struct {
	m      *Merger
	closed atomic.Bool
}

// Publish delivers one event to the merge point. It blocks while the
// channel is full and fails with ErrClosed once the consumer is gone.
func (p *Producer) Publish(ev Event) error {
	if p.closed.Load() {
		return ErrClosed
	}
	select {
	case <-p.m.done:
		return ErrClosed
	default:
	}
	select {
	case p.m.ch <- ev:
		return nil
	case <-p.m.done:
		return ErrClosed
	}
}

// Close detaches the producer. The last detach closes the merged
// channel. Safe to call more than once.
func (p *Producer) Close() {
	if p.closed.CompareAndSwap(false, true) {
		if p.m.producers.Add(-1) == 0 {
			close(p.m.ch)
		}
	}
}
