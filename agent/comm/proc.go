package comm

import (
	"fmt"

	"github.com/findy-network/findy-did-resolver/agent/aries"
	"github.com/golang/glog"
)

// processor is a controller of all the protocol handlers. It keeps
// track of all the protocols and delivers the message accordingly. The
// message processing structure has 2 levels: first level has protocols
// and second level has the actual message handlers. The dispatch table
// is built once, by the protocol packages' init functions, before any
// message processing starts.
type processor struct {
	// protHandlers is map to all protocols and their handlers. The key
	// is the protocol name in the Payload.Type
	protHandlers map[string]ProtHandler
}

// Process delivers the protocol messages inside the packet to correct
// protocol. An unknown protocol is an error, not a panic: the
// transport may deliver anything.
func (p *processor) Process(packet Packet) (err error) {
	handler, ok := p.protHandlers[packet.Payload.Protocol()]
	if !ok {
		glog.Errorf("no handler in processor for type: %s\nPL:\n%s",
			packet.Payload.Type(),
			string(packet.Payload.JSON()))
		return fmt.Errorf("no protocol handler for %s", packet.Payload.Protocol())
	}
	return handler.Process(packet)
}

func (p *processor) Add(t string, proc ProtHandler) {
	if p.protHandlers == nil {
		p.protHandlers = make(map[string]ProtHandler)
	}
	p.protHandlers[t] = proc
}

// HandlerFunc is func type for protocol message handlers. We add them
// to protocol processors with the associated message type.
type HandlerFunc func(packet Packet) (err error)

// ProtHandler is an interface for a whole protocol. Where HandlerFunc
// is a handler for one protocol message, the protocol handler is the
// whole message family.
type ProtHandler interface {
	Process(packet Packet) (err error)
}

// ProtProc is a protocol processor. Instances of it are the actual
// protocol handlers. Just declare a var with the needed msg handlers
// (HandlerFunc) and register it to the processor.
type ProtProc struct {
	Handlers map[string]HandlerFunc
}

// Process delivers the protocol message inside the packet to the
// correct handler function.
func (p ProtProc) Process(packet Packet) (err error) {
	glog.V(1).Info("PROTOCOL type " + packet.Payload.Type())

	handler, ok := p.Handlers[packet.Payload.ProtocolMsg()]
	if !ok {
		glog.Info(string(packet.Payload.JSON()))
		return fmt.Errorf("no message handler for %s", packet.Payload.ProtocolMsg())
	}
	return handler(packet)
}

var Proc = &processor{}

// HandleIncoming is the transport entry point: data is the already
// unpacked payload JSON of one inbound didcomm message. Each call is
// one logical flow, the transport runs them concurrently.
func HandleIncoming(rcvr Receiver, data []byte) (err error) {
	ipl := aries.PayloadCreator.NewFromData(data)
	return Proc.Process(Packet{Payload: ipl, Receiver: rcvr})
}
