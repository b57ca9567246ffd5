/*
Package didresolution implements the DID Resolution protocol v0.9.

The requester side sends a resolve message and correlates the reply,
a resolve_result or a problem-report, by the thread id. ResolveDID
bridges that exchange into a blocking call. The responder side
delegates the actual lookup to the configured resolution backend and
always answers with a correlated reply, success or not.
*/
package didresolution

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/findy-network/findy-did-resolver/agent/aries"
	"github.com/findy-network/findy-did-resolver/agent/bus"
	"github.com/findy-network/findy-did-resolver/agent/comm"
	"github.com/findy-network/findy-did-resolver/agent/didcomm"
	"github.com/findy-network/findy-did-resolver/agent/pltype"
	"github.com/findy-network/findy-did-resolver/agent/prot"
	"github.com/findy-network/findy-did-resolver/agent/utils"
	"github.com/findy-network/findy-did-resolver/agent/vdr"
	"github.com/findy-network/findy-did-resolver/std/decorator"
	"github.com/findy-network/findy-did-resolver/std/didresolution"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/assert"
)

// EventResolveDIDResult is the notification event emitted for every
// received resolve result, whether or not a caller still waits for it.
const EventResolveDIDResult = "resolve_did_result"

// ResolutionEvent is the payload of EventResolveDIDResult.
type ResolutionEvent struct {
	MessageID   string          `json:"message_id"`
	ThreadID    string          `json:"thread_id"`
	DIDDocument json.RawMessage `json:"did_document"`
	State       string          `json:"state"`
}

// didResolutionProcessor is the protocol processor for the DID
// Resolution protocol. The dispatch table is built here once and
// registered at init.
var didResolutionProcessor = comm.ProtProc{
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerResolve:       handleResolve,
		pltype.HandlerResolveResult: handleResolveResult,
		pltype.HandlerProblemReport: handleProblemReport,
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolDIDResolution, didResolutionProcessor)
}

// handleResolve is the responder side: resolve the DID with the
// backend and reply with a correlated result. A backend failure never
// escapes this handler as an error, the peer gets a correlated
// problem report instead.
func handleResolve(packet comm.Packet) (err error) {
	defer err2.Handle(&err, "handle resolve")

	req, ok := packet.Payload.MsgHdr().FieldObj().(*didresolution.ResolveDID)
	assert.That(ok, "resolve message type mismatch")

	glog.V(1).Infoln("received resolve did:", req.DID)

	// the reply echoes the inbound thread id verbatim
	thread := decorator.NewThread(packet.Payload.ThreadID(), "")

	var om didcomm.MessageHdr
	doc, rerr := vdr.Active().Resolve(req.DID)
	if rerr == nil {
		om = didresolution.ResultCreator.NewMsg(didcomm.MsgInit{
			AID:    utils.UUID(),
			Type:   pltype.DIDOrgResolutionResult,
			DIDDoc: doc,
			L10n:   req.L10n, // localization travels to the reply verbatim
			Thread: thread,
		})
	} else {
		glog.Errorln("resolve failed:", rerr)
		om = didresolution.ProblemReportCreator.NewMsg(didcomm.MsgInit{
			AID:    utils.UUID(),
			Type:   pltype.DIDOrgResolutionProblemReport,
			Info:   explanationFor(req.DID, rerr),
			Code:   codeResolutionFailure,
			Thread: thread,
		})
	}
	opl := aries.PayloadCreator.NewMsg(om.ID(), om.Type(), om)
	return packet.Receiver.SendPL(opl)
}

// explanationFor builds the problem report explanation the requester
// side translation is based on.
func explanationFor(didStr string, err error) string {
	if errors.Is(err, vdr.ErrNotFound) {
		return notFoundExplanation(didStr)
	}
	return fmt.Sprintf("could not resolve DID %s using service %s",
		didStr, utils.Settings.ResolverURL())
}

// handleResolveResult is the requester side: wake the caller waiting
// for this thread id with the document. A result for an unknown or
// already completed thread is dropped, that's normal protocol
// asynchrony, not an error.
func handleResolveResult(packet comm.Packet) (err error) {
	defer err2.Handle(&err, "handle resolve result")

	result, ok := packet.Payload.MsgHdr().FieldObj().(*didresolution.ResolveDIDResult)
	assert.That(ok, "resolve result message type mismatch")

	thid := packet.Payload.ThreadID()
	glog.V(1).Infoln("received resolve did document for thread:", thid)

	if !bus.Resolutions.Complete(thid, bus.Outcome{
		State: bus.StateResolved,
		Doc:   result.DIDDocument,
	}) {
		glog.V(1).Infoln("stale resolve result for thread:", thid)
	}

	// the event goes out whether or not a caller was still waiting
	prot.Notify(EventResolveDIDResult, &ResolutionEvent{
		MessageID:   result.ID,
		ThreadID:    thid,
		DIDDocument: result.DIDDocument,
		State:       "received",
	})
	return nil
}

// handleProblemReport is the requester side failure path: translate
// the report and wake the caller with the typed error.
func handleProblemReport(packet comm.Packet) (err error) {
	defer err2.Handle(&err, "handle problem report")

	report, ok := packet.Payload.MsgHdr().FieldObj().(*didresolution.ProblemReport)
	assert.That(ok, "problem report message type mismatch")

	// log the raw explanation always, match or no match
	glog.Warningln("received problem report:", report.ExplainLongTxt)

	thid := packet.Payload.ThreadID()
	if !bus.Resolutions.Complete(thid, bus.Outcome{
		State: bus.StateFailed,
		Err:   translate(report),
	}) {
		glog.V(1).Infoln("stale problem report for thread:", thid)
	}
	return nil
}
