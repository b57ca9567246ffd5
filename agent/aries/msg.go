package aries

import (
	"github.com/findy-network/findy-common-go/dto"
	"github.com/findy-network/findy-did-resolver/agent/didcomm"
	"github.com/findy-network/findy-did-resolver/std/decorator"
)

var MsgCreator = MsgFactor{}

type MsgFactor struct{}

func (f MsgFactor) NewMsg(init didcomm.MsgInit) didcomm.MessageHdr {
	m := createMsg(init)
	return &msgImpl{Msg: &m}
}

func (f MsgFactor) NewMessage(data []byte) didcomm.MessageHdr {
	return newMsg(data)
}

// Create builds the message with the factor registered for the wanted
// type. If no factor exists a generic Msg is used.
func (f MsgFactor) Create(d didcomm.MsgInit) didcomm.MessageHdr {
	factor, ok := Creator.factors[d.Type]
	if !ok {
		m := createMsg(d)
		return &msgImpl{Msg: &m}
	}
	return factor.NewMsg(d)
}

func createMsg(d didcomm.MsgInit) Msg {
	th := d.Thread
	if th == nil {
		th = decorator.NewThread(d.Nonce, "")
	}
	return Msg{
		AID:    d.AID,
		Type:   d.Type,
		Thread: th,
		Msg:    d.Msg,
	}
}

type msgImpl struct {
	*Msg
}

func (m *msgImpl) Thread() *decorator.Thread {
	return m.Msg.Thread
}

func (m *msgImpl) ID() string {
	return m.Msg.AID
}

func (m *msgImpl) SetID(id string) {
	m.Msg.AID = id
}

func (m *msgImpl) Type() string {
	return m.Msg.Type
}

func (m *msgImpl) SetType(t string) {
	m.Msg.Type = t
}

func (m *msgImpl) JSON() []byte {
	return dto.ToJSONBytes(m.Msg)
}

func (m *msgImpl) FieldObj() interface{} {
	return m.Msg
}

// Msg is the generic didcomm message used when no statically typed
// struct is registered for the type.
type Msg struct {
	Type string `json:"@type,omitempty"`
	AID  string `json:"@id,omitempty"`

	Thread *decorator.Thread `json:"~thread,omitempty"`

	Msg map[string]interface{} `json:"msg,omitempty"`
}

func newMsg(data []byte) *msgImpl {
	var mImpl msgImpl
	dto.FromJSON(data, &mImpl)
	return &mImpl
}
