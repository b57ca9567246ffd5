/*
Package bus implements the pending resolution station: the only shared
mutable structure between the requester side protocol handlers and the
callers blocked in a resolve. Every in-flight request has exactly one
entry keyed by its thread id, and exactly one of completion, deadline
eviction or cancellation wins the transition to a terminal outcome.
The losers of that race are no-ops.
*/
package bus

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/lainio/err2/assert"
)

// State is the terminal state of a pending resolution.
type State int

const (
	StatePending State = iota
	StateResolved
	StateFailed
	StateTimedOut
	StateCancelled
)

// Outcome is what a waiter wakes up with.
type Outcome struct {
	State State
	Doc   []byte // raw DID Document JSON when State is StateResolved
	Err   error  // translated error when State is StateFailed
}

type OutcomeChan chan Outcome

// Pending is the handle of one in-flight resolution request. It is
// created by Add and owned by the caller who waits on it.
type Pending struct {
	ID        string
	CreatedAt time.Time
	Deadline  time.Time

	ch OutcomeChan
}

type pendingMap map[string]*Pending

// Station is the table of in-flight resolution requests.
type Station struct {
	pendingMap
	sync.Mutex
}

// Resolutions is the process wide station the resolution protocol
// handlers complete requests through.
var Resolutions = NewStation()

func NewStation() *Station {
	return &Station{pendingMap: make(pendingMap)}
}

// Add registers a new pending request for the thread id. The id must
// be unique within the station's lifetime: a collision is a
// programming error, not a runtime condition.
func (s *Station) Add(id string, deadline time.Time) *Pending {
	s.Lock()
	defer s.Unlock()

	_, exists := s.pendingMap[id]
	assert.That(!exists, "thread id collision: %s", id)

	glog.V(3).Infoln("pending resolution ADD for thread:", id)
	p := &Pending{
		ID:        id,
		CreatedAt: time.Now(),
		Deadline:  deadline,
		ch:        make(OutcomeChan, 1), // buffered, completer never blocks
	}
	s.pendingMap[id] = p
	return p
}

// Complete transitions the pending request of the thread id to the
// given terminal outcome and wakes its waiter. It returns false when no
// entry exists anymore i.e. the reply was stale; that is a silent
// no-op by design of the protocol, not an error.
func (s *Station) Complete(id string, o Outcome) bool {
	s.Lock() // cannot use defer for unlocking, see below

	p, ok := s.pendingMap[id]
	if !ok {
		s.Unlock()
		glog.V(1).Infoln("no pending resolution for thread:", id)
		return false
	}
	delete(s.pendingMap, id)
	s.Unlock() // leave lock before writing the channel

	glog.V(3).Infoln("pending resolution COMPLETE for thread:", id)
	p.ch <- o
	return true
}

// Wait parks the caller until the request reaches a terminal outcome,
// its deadline elapses, or ctx is done. The entry is always removed
// from the station before Wait returns, whatever the outcome.
func (s *Station) Wait(ctx context.Context, p *Pending) Outcome {
	timer := time.NewTimer(time.Until(p.Deadline))
	defer timer.Stop()

	select {
	case o := <-p.ch:
		return o
	case <-timer.C:
		if s.evict(p.ID) {
			return Outcome{State: StateTimedOut}
		}
		// a completer won the race right at the deadline: the entry is
		// gone and the outcome is in the buffered channel
		return <-p.ch
	case <-ctx.Done():
		if s.evict(p.ID) {
			return Outcome{State: StateCancelled}
		}
		return <-p.ch
	}
}

// Cancel removes a still pending request and wakes its waiter with a
// cancelled outcome. Cancelling an already completed request is a
// no-op.
func (s *Station) Cancel(p *Pending) {
	if s.evict(p.ID) {
		p.ch <- Outcome{State: StateCancelled}
	}
}

// evict removes the entry and reports whether this caller won the
// transition race.
func (s *Station) evict(id string) bool {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.pendingMap[id]; !ok {
		return false
	}
	glog.V(3).Infoln("pending resolution EVICT for thread:", id)
	delete(s.pendingMap, id)
	return true
}

// Len returns the current count of in-flight requests.
func (s *Station) Len() int {
	s.Lock()
	defer s.Unlock()
	return len(s.pendingMap)
}
