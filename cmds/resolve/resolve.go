// Package resolve implements the CLI command which resolves a DID
// straight with the configured resolver endpoint, without a didcomm
// peer in between. It is the local counterpart of the resolve
// protocol's responder side and useful for checking the endpoint
// configuration.
package resolve

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/findy-network/findy-did-resolver/agent/utils"
	"github.com/findy-network/findy-did-resolver/agent/vdr"
	"github.com/findy-network/findy-did-resolver/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

type Cmd struct {
	ResolverURL string
	DID         string
	Timeout     time.Duration
}

func (c Cmd) Validate() error {
	if c.DID == "" {
		return errors.New("did cannot be empty")
	}
	if !strings.HasPrefix(c.DID, "did:") {
		return errors.New("did must start with the did: scheme")
	}
	if c.ResolverURL == "" {
		return errors.New("resolver url cannot be empty")
	}
	if !strings.Contains(c.ResolverURL, vdr.DIDPlaceholder) {
		return errors.New("resolver url must contain the " +
			vdr.DIDPlaceholder + " placeholder")
	}
	return nil
}

func (c Cmd) Exec(w io.Writer) (r cmds.Result, err error) {
	defer err2.Handle(&err, "resolve cmd")

	timeout := c.Timeout
	if timeout == 0 {
		timeout = utils.HTTPReqTimeout
	}
	resolver := vdr.NewHTTPResolver(c.ResolverURL, timeout)
	doc := try.To1(resolver.Resolve(c.DID))

	result := &Result{Document: doc}
	cmds.Fprintln(w, string(doc))
	return result, nil
}

type Result struct {
	Document json.RawMessage
}

func (r *Result) JSON() ([]byte, error) {
	return r.Document, nil
}
