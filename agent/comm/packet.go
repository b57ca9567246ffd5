package comm

import (
	"github.com/findy-network/findy-did-resolver/agent/didcomm"
)

// Packet is one inbound protocol message after the transport layer has
// unpacked it. Receiver is the agent the packet was addressed to.
type Packet struct {
	Payload  didcomm.Payload
	Receiver Receiver
}

// Receiver is the communication interface of the agent who owns the
// inbound packet. The transport implementation behind it seals and
// routes the payload to the other end of the pairwise. Signing,
// encryption and delivery retries all live behind this interface.
type Receiver interface {
	SendPL(opl didcomm.Payload) (err error)
}
