/*
Package didcomm offers the interfaces for the didcomm messages this
agent processes. The actual message implementations are in the std
packages and they are constructed through the factor interfaces defined
here. We use statically typed JSON messages i.e. they are always mapped
to a corresponding Go struct.
*/
package didcomm

import (
	"encoding/json"
	"strings"

	"github.com/findy-network/findy-did-resolver/std/decorator"
	"github.com/golang/glog"
)

type PayloadHdr interface {
	ID() string
	Type() string
}

type PayloadWriteHdr interface {
	SetID(id string)
	SetType(t string)
}

type JSONSpeaker interface {
	JSON() []byte
}

// Payload is the envelope level abstraction of an inbound or outbound
// protocol message. It tells which protocol and which protocol message
// is inside, and it carries the thread id the correlation is made with.
type Payload interface {
	PayloadHdr
	JSONSpeaker

	Thread() *decorator.Thread
	ThreadID() string

	FieldObj() interface{}
	MsgHdr() MessageHdr

	Protocol() string
	ProtocolMsg() string
	Namespace() string
}

// MessageHdr is the base interface for all protocol messages. It has
// the minimum needed to handle and process inbound and outbound
// protocol messages. There are message factors to help creation of
// these messages as well.
type MessageHdr interface {
	PayloadHdr
	PayloadWriteHdr

	JSON() []byte
	Thread() *decorator.Thread
	FieldObj() interface{}
}

// Factor constructs protocol messages of one message type: from wire
// data or from an init struct.
type Factor interface {
	NewMessage(data []byte) MessageHdr
	NewMsg(init MsgInit) MessageHdr
}

type PayloadFactor interface {
	NewFromData(data []byte) Payload
	New(pi PayloadInit) Payload
	NewMsg(id, t string, m MessageHdr) Payload
}

type PayloadInit struct {
	ID   string
	Type string
	MsgInit
}

// MsgInit is a helper struct for factors to construct new message
// instances. Only the fields the message type knows are used.
type MsgInit struct {
	AID    string // message @id
	Type   string
	Nonce  string // thread id when Thread isn't given
	Did    string // DID to resolve
	DIDDoc json.RawMessage
	Info   string // free format info, problem report explanation
	Code   string // problem report code
	Thread *decorator.Thread
	L10n   decorator.L10n
	Msg    map[string]interface{}
}

// FieldAtInd returns the field of a qualified message type string:
// 0 namespace, 1 protocol, 2 version, 3 message name. Both the legacy
// "did:sov:..;spec" and the current "https://didcomm.org" qualified
// types are accepted.
func FieldAtInd(s string, where int) string {
	if s == "" {
		return ""
	}

	maxSplits := 4
	if strings.HasPrefix(s, "https://") {
		maxSplits += 2
		where += 2
	}
	parts := strings.Split(s, "/")
	if len(parts) != maxSplits {
		glog.Error(s)
		panic("type string is not valid")
	}
	return parts[where]
}
