// Package spsc implements a single-slot, single-producer/single-consumer
// handoff mailbox built on atomics.
//
// The mailbox coordinates exactly two goroutines: a producer that publishes
// one work item at a time and a consumer that spins waiting for it. The
// published pointer itself is the trigger: the consumer observes a non-nil
// slot only after every write the producer made to the item beforehand.
// Go's sync/atomic operations are sequentially consistent, a strict
// superset of the release/acquire ordering this protocol requires.
//
// The protocol per item is:
//
//  1. Producer fills the item, then TryPublish stores the pointer.
//  2. Consumer's Receive observes the pointer and processes the item.
//  3. Consumer calls Complete: the slot is cleared before done is set, so
//     a producer that observes done=true also observes a free slot, and
//     the consumer's data writes all happen-before the done store.
//  4. Producer's AwaitDone observes done and may publish again.
//
// There is no queueing: publishing while the consumer is still busy fails
// rather than overrunning the slot.
package spsc

import (
	"errors"
	"runtime"
	"sync/atomic"
	"time"
)

// ErrTimeout is returned by AwaitDone when the bounded wait elapses before
// the consumer completes the current item.
var ErrTimeout = errors.New("spsc: wait for completion timed out")

// Mailbox is a single-slot handoff between one producer and one consumer.
// The zero value is not ready for use; call New.
type Mailbox[T any] struct {
	slot   atomic.Pointer[T]
	done   atomic.Bool
	closed atomic.Bool
}

// New returns an idle mailbox ready for its first publication.
func New[T any]() *Mailbox[T] {
	m := &Mailbox[T]{}
	m.done.Store(true)

	return m
}

// TryPublish hands item to the consumer. It reports false without side
// effects if the consumer has not completed the previous item or the
// mailbox is closed. The producer must not mutate item until AwaitDone
// returns nil.
func (m *Mailbox[T]) TryPublish(item *T) bool {
	if item == nil || m.closed.Load() {
		return false
	}

	if !m.done.Load() || m.slot.Load() != nil {
		return false
	}

	m.done.Store(false)
	// The slot store publishes every prior write to *item.
	m.slot.Store(item)

	return true
}

// Receive spins until an item is published or the mailbox is closed.
// It reports false once the mailbox is closed and no item is pending.
func (m *Mailbox[T]) Receive() (*T, bool) {
	for {
		if p := m.slot.Load(); p != nil {
			return p, true
		}

		if m.closed.Load() {
			return nil, false
		}

		runtime.Gosched()
	}
}

// Complete clears the slot and then marks the current item finished.
// The slot must be cleared first: TryPublish refuses a non-nil slot, so
// setting done first would open a window where a producer that just
// observed completion is still refused. The consumer's writes to the item
// happen-before the done store either way.
func (m *Mailbox[T]) Complete() {
	m.slot.Store(nil)
	m.done.Store(true)
}

// AwaitDone spins until the consumer completes the current item. A zero or
// negative timeout waits indefinitely; otherwise ErrTimeout is returned
// once the bound elapses. On ErrTimeout the item is still owned by the
// consumer and the mailbox stays busy until the consumer completes it.
func (m *Mailbox[T]) AwaitDone(timeout time.Duration) error {
	if timeout <= 0 {
		for !m.done.Load() {
			runtime.Gosched()
		}

		return nil
	}

	deadline := time.Now().Add(timeout)
	for !m.done.Load() {
		if time.Now().After(deadline) {
			return ErrTimeout
		}

		runtime.Gosched()
	}

	return nil
}

// Idle reports whether the consumer has completed the last published item.
func (m *Mailbox[T]) Idle() bool {
	return m.done.Load() && m.slot.Load() == nil
}

// Close wakes a consumer blocked in Receive. Pending work is still
// delivered; Close only prevents further publications.
func (m *Mailbox[T]) Close() {
	m.closed.Store(true)
}
