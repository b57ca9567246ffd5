package bus

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// StartJanitor launches a background sweeper for the station. A waiter
// normally evicts its own entry at the deadline; the sweeper catches
// entries whose waiter goroutine is gone, evicting everything whose
// deadline passed over one sweep interval ago. Stop the returned
// scheduler at shutdown.
func (s *Station) StartJanitor(interval time.Duration) (sched *gocron.Scheduler, err error) {
	defer err2.Handle(&err, "start janitor")

	sched = gocron.NewScheduler(time.UTC)
	try.To1(sched.Every(interval).Do(func() {
		s.sweep(interval)
	}))
	sched.StartAsync()
	return sched, nil
}

func (s *Station) sweep(grace time.Duration) {
	limit := time.Now().Add(-grace)

	s.Lock()
	defer s.Unlock()

	for id, p := range s.pendingMap {
		if p.Deadline.Before(limit) {
			glog.Warningln("evicting orphaned resolution thread:", id)
			delete(s.pendingMap, id)
			p.ch <- Outcome{State: StateTimedOut} // buffered, never blocks
		}
	}
}
