// Package prot offers the protocol event notification fan-out. The
// handlers notify listeners of protocol results; delivery is fire and
// forget and never blocks or fails the calling handler.
package prot

import (
	"sync"

	"github.com/golang/glog"
	"github.com/lainio/err2"
)

// Notifier is a sink for protocol events, a webhook sender for
// instance. Notify implementations may block; the fan-out isolates the
// handlers from that.
type Notifier interface {
	Notify(eventName string, payload interface{})
}

var notifiers = struct {
	sync.Mutex
	all []Notifier
}{}

// AddNotifier registers a sink for protocol events. Meant to be called
// at startup before message processing begins.
func AddNotifier(n Notifier) {
	notifiers.Lock()
	defer notifiers.Unlock()
	notifiers.all = append(notifiers.all, n)
}

// Notify delivers the event to every registered sink in its own
// goroutine. Sink errors are logged, never propagated.
func Notify(eventName string, payload interface{}) {
	notifiers.Lock()
	targets := make([]Notifier, len(notifiers.all))
	copy(targets, notifiers.all)
	notifiers.Unlock()

	if glog.V(3) {
		glog.Infoln("notify:", eventName)
	}
	for _, n := range targets {
		go func(n Notifier) {
			defer err2.Catch(func(err error) {
				glog.Error("error in notifier: ", err)
			})
			n.Notify(eventName, payload)
		}(n)
	}
}
