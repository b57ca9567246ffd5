// Package decorator implements the didcomm message decorators we need:
// ~thread for correlating replies to their requests and ~l10n for
// localization hints which travel with the message.
package decorator

// Thread is the ~thread decorator. ID is the thread id the other end
// echoes back in every correlated reply.
type Thread struct {
	ID             string         `json:"thid,omitempty"`
	PID            string         `json:"pthid,omitempty"`
	SenderOrder    int            `json:"sender_order,omitempty"`
	ReceivedOrders map[string]int `json:"received_orders,omitempty"`
}

// L10n is the ~l10n decorator content. We treat it as opaque and copy
// it verbatim from a request to its reply.
type L10n map[string]interface{}

func NewThread(ID, PID string) *Thread {
	realPID := ""
	if ID != PID {
		realPID = PID
	}
	return &Thread{ID: ID, PID: realPID}
}

// CheckThread guarantees that a parsed inbound message has a thread
// with a non-empty ID. When the sender left the decorator out, the
// message @id starts the thread as the Aries RFCs state.
func CheckThread(thread *Thread, ID string) *Thread {
	if thread == nil {
		return &Thread{ID: ID}
	}
	if thread.ID == "" {
		thread.ID = ID
	}
	return thread
}
