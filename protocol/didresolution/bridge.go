package didresolution

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/findy-network/findy-did-resolver/agent/aries"
	"github.com/findy-network/findy-did-resolver/agent/bus"
	"github.com/findy-network/findy-did-resolver/agent/comm"
	"github.com/findy-network/findy-did-resolver/agent/didcomm"
	"github.com/findy-network/findy-did-resolver/agent/pltype"
	"github.com/findy-network/findy-did-resolver/agent/utils"
	"github.com/findy-network/findy-did-resolver/std/decorator"
	"github.com/findy-network/findy-did-resolver/std/didresolution"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/assert"
)

// ResolveDID sends a resolve request to the peer behind rcvr and parks
// the caller until the correlated resolve result, a correlated problem
// report, the timeout, or ctx decides the outcome. The transport is
// asynchronous: the reply arrives through the protocol handlers as an
// independent inbound message, correlation is by the thread id only.
//
// Concurrent calls are fully independent: every call has its own
// thread id, its own deadline and its own wait channel.
func ResolveDID(
	ctx context.Context,
	rcvr comm.Receiver,
	didStr string,
	timeout time.Duration,
) (
	doc json.RawMessage,
	err error,
) {
	defer err2.Handle(&err, "resolve did")

	assert.NotEmpty(didStr)
	if timeout == 0 {
		timeout = utils.DefaultResolveTimeout
	}

	thid := utils.UUID()
	om := didresolution.ResolveCreator.NewMsg(didcomm.MsgInit{
		AID:    thid,
		Type:   pltype.DIDOrgResolutionResolve,
		Did:    didStr,
		Thread: decorator.NewThread(thid, ""),
	})
	opl := aries.PayloadCreator.NewMsg(thid, pltype.DIDOrgResolutionResolve, om)

	glog.V(1).Infoln("resolve did:", didStr, "thread:", thid)

	// register before send: the reply can win any race with our return
	// from SendPL
	pending := bus.Resolutions.Add(thid, time.Now().Add(timeout))
	if err := rcvr.SendPL(opl); err != nil {
		bus.Resolutions.Cancel(pending)
		return nil, err
	}

	outcome := bus.Resolutions.Wait(ctx, pending)
	switch outcome.State {
	case bus.StateResolved:
		return outcome.Doc, nil
	case bus.StateFailed:
		return nil, outcome.Err
	case bus.StateCancelled:
		return nil, fmt.Errorf("%w: %s", ErrCancelled, didStr)
	default:
		glog.V(1).Infoln("resolve timeout for thread:", thid)
		return nil, fmt.Errorf("%w: %s after %s", ErrRequestTimeout, didStr, timeout)
	}
}
