package bus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStation_CompleteWakesWaiter(t *testing.T) {
	s := NewStation()
	p := s.Add("thread-1", time.Now().Add(time.Minute))

	go func() {
		ok := s.Complete("thread-1", Outcome{State: StateResolved, Doc: []byte(`{"id":"did:key:abc"}`)})
		assert.True(t, ok)
	}()

	o := s.Wait(context.Background(), p)
	assert.Equal(t, StateResolved, o.State)
	assert.Equal(t, `{"id":"did:key:abc"}`, string(o.Doc))
	assert.Equal(t, 0, s.Len())
}

func TestStation_StaleCompleteIsNoOp(t *testing.T) {
	s := NewStation()

	ok := s.Complete("unknown-thread", Outcome{State: StateResolved})
	assert.False(t, ok)

	p := s.Add("thread-2", time.Now().Add(time.Minute))
	require.True(t, s.Complete("thread-2", Outcome{State: StateResolved}))

	// second terminal transition must lose
	assert.False(t, s.Complete("thread-2", Outcome{State: StateFailed}))

	o := s.Wait(context.Background(), p)
	assert.Equal(t, StateResolved, o.State)
}

func TestStation_WaitTimesOutAndEvicts(t *testing.T) {
	s := NewStation()
	p := s.Add("thread-3", time.Now().Add(20*time.Millisecond))

	start := time.Now()
	o := s.Wait(context.Background(), p)
	assert.Equal(t, StateTimedOut, o.State)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, 0, s.Len())

	// a late reply after eviction has no effect
	assert.False(t, s.Complete("thread-3", Outcome{State: StateResolved}))
}

func TestStation_Cancel(t *testing.T) {
	s := NewStation()
	p := s.Add("thread-4", time.Now().Add(time.Minute))

	var o Outcome
	done := make(chan struct{})
	go func() {
		defer close(done)
		o = s.Wait(context.Background(), p)
	}()

	s.Cancel(p)
	<-done
	assert.Equal(t, StateCancelled, o.State)
	assert.Equal(t, 0, s.Len())

	// cancelling again is a no-op
	s.Cancel(p)
}

func TestStation_CtxCancelWakesWaiter(t *testing.T) {
	s := NewStation()
	p := s.Add("thread-5", time.Now().Add(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	go cancel()

	o := s.Wait(ctx, p)
	assert.Equal(t, StateCancelled, o.State)
	assert.Equal(t, 0, s.Len())
}

func TestStation_IndependentRequests(t *testing.T) {
	s := NewStation()
	const timeout = 200 * time.Millisecond

	p1 := s.Add("did-x-1", time.Now().Add(timeout))
	p2 := s.Add("did-x-2", time.Now().Add(timeout))

	var wg sync.WaitGroup
	wg.Add(2)

	var o1, o2 Outcome
	var d2 time.Duration
	go func() {
		defer wg.Done()
		o1 = s.Wait(context.Background(), p1)
	}()
	go func() {
		defer wg.Done()
		start := time.Now()
		o2 = s.Wait(context.Background(), p2)
		d2 = time.Since(start)
	}()

	// deliver a result only for the second request
	require.True(t, s.Complete("did-x-2", Outcome{State: StateResolved, Doc: []byte(`{}`)}))
	wg.Wait()

	assert.Equal(t, StateResolved, o2.State)
	assert.Less(t, d2, timeout)
	assert.Equal(t, StateTimedOut, o1.State, "completing one request must not affect the other")
	assert.Equal(t, 0, s.Len())
}

func TestStation_JanitorSweepsOrphans(t *testing.T) {
	s := NewStation()
	s.Add("orphan", time.Now().Add(-time.Minute))

	s.sweep(time.Millisecond)
	assert.Equal(t, 0, s.Len())
}

func TestStation_StartJanitor(t *testing.T) {
	s := NewStation()
	s.Add("orphan", time.Now().Add(-time.Minute))

	sched, err := s.StartJanitor(10 * time.Millisecond)
	require.NoError(t, err)
	defer sched.Stop()

	assert.Eventually(t, func() bool {
		return s.Len() == 0
	}, time.Second, 10*time.Millisecond)
}
