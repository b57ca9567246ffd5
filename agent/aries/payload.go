/*
Package aries is the implementation package for the didcomm message
envelope. The message factoring system constructs the actual messages
from the incoming data in the correct Go type: the std packages
register a factor per message type to Creator in their init.
*/
package aries

import (
	"github.com/findy-network/findy-did-resolver/agent/didcomm"
)

var PayloadCreator = PayloadFactor{}

var Creator = &Factor{factors: make(map[string]didcomm.Factor)}

type Factor struct {
	factors map[string]didcomm.Factor
}

func (f *Factor) Add(t string, factor didcomm.Factor) {
	f.factors[t] = factor
}

type PayloadFactor struct{}

// NewFromData creates a new PL in the correct Go struct type. If @type
// is associated to a Go struct type which is registered to Creator,
// it's used. If not, a generic type is used.
func (f PayloadFactor) NewFromData(data []byte) didcomm.Payload {
	pl := &PayloadImpl{MessageHdr: newMsg(data)}
	t, id := pl.Type(), pl.ID()

	factor, ok := Creator.factors[t]
	if !ok {
		return pl
	}
	m := factor.NewMessage(data)
	return f.NewMsg(id, t, m)
}

// New creates a new PL with PayloadInit struct. The type of the Msg is
// generic.
func (f PayloadFactor) New(pi didcomm.PayloadInit) didcomm.Payload {
	pi.MsgInit.Type = pi.Type
	pi.MsgInit.AID = pi.ID

	msg := MsgCreator.Create(pi.MsgInit)
	return &PayloadImpl{MessageHdr: msg}
}

// NewMsg creates a new PL by ID, Type and an already created internal
// Msg.
func (f PayloadFactor) NewMsg(id, t string, m didcomm.MessageHdr) didcomm.Payload {
	m.SetType(t)
	m.SetID(id)
	return &PayloadImpl{MessageHdr: m}
}

type PayloadImpl struct {
	didcomm.MessageHdr
}

func (pl *PayloadImpl) MsgHdr() didcomm.MessageHdr {
	return pl.MessageHdr
}

// ThreadID returns the id replies are correlated with. When the sender
// didn't use the ~thread decorator the message @id starts the thread.
func (pl *PayloadImpl) ThreadID() string {
	if th := pl.Thread(); th != nil && th.ID != "" {
		return th.ID
	}
	return pl.ID()
}

func (pl *PayloadImpl) FieldObj() interface{} {
	return pl.MessageHdr
}

func (pl *PayloadImpl) ID() string {
	return pl.MessageHdr.ID()
}

func (pl *PayloadImpl) Type() string {
	return pl.MessageHdr.Type()
}

func (pl *PayloadImpl) Protocol() string {
	return didcomm.FieldAtInd(pl.Type(), 1)
}

func (pl *PayloadImpl) ProtocolMsg() string {
	return didcomm.FieldAtInd(pl.Type(), 3)
}

func (pl *PayloadImpl) Namespace() string {
	return didcomm.FieldAtInd(pl.Type(), 0)
}

func ProtocolForType(typeStr string) string {
	return didcomm.FieldAtInd(typeStr, 1)
}

func ProtocolMsgForType(typeStr string) string {
	return didcomm.FieldAtInd(typeStr, 3)
}
