/*
Package vdr implements the DID resolution backend client. The agent
itself doesn't know DID method semantics; it delegates resolution to a
configured uniresolver style HTTP endpoint and treats the returned DID
Document as an opaque JSON value. The document is only sanity checked
to parse as a DID Document, deeper validation belongs to the consumer.
*/
package vdr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/findy-network/findy-did-resolver/agent/utils"
	"github.com/golang/glog"
	"github.com/hyperledger/aries-framework-go/pkg/doc/did"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Resolver resolves a DID into a DID Document. Implementations fail
// with an error matching one of the kinds below.
type Resolver interface {
	Resolve(didStr string) (doc json.RawMessage, err error)
}

// Resolution error kinds. Callers classify failures with errors.Is.
var (
	ErrNotFound  = errors.New("did not found")
	ErrNetwork   = errors.New("resolver network failure")
	ErrMalformed = errors.New("malformed resolver response")
)

// DIDPlaceholder is the part of the endpoint template which is
// replaced with the DID under resolution.
const DIDPlaceholder = "{did}"

var (
	active Resolver

	c = &http.Client{}
)

// SetActive sets the process wide resolver. Tests use this to plug in
// their own.
func SetActive(r Resolver) {
	active = r
}

// Active returns the process wide resolver, building an HTTP resolver
// from the settings on first use.
func Active() Resolver {
	if active == nil {
		active = NewHTTPResolver(
			utils.Settings.ResolverURL(),
			utils.Settings.Timeout(),
		)
	}
	return active
}

// HTTPResolver resolves DIDs with a GET to a uniresolver endpoint. The
// URL template contains a {did} placeholder.
type HTTPResolver struct {
	tmpl    string
	timeout time.Duration
}

func NewHTTPResolver(urlTemplate string, timeout time.Duration) *HTTPResolver {
	return &HTTPResolver{tmpl: urlTemplate, timeout: timeout}
}

func (r *HTTPResolver) Resolve(didStr string) (doc json.RawMessage, err error) {
	defer err2.Handle(&err, "resolve did")

	urlStr := strings.Replace(r.tmpl, DIDPlaceholder, didStr, 1)
	glog.V(3).Infoln("resolving", didStr, "with", urlStr)

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	request := try.To1(http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil))
	request.Close = true // deferred response.Body.Close isn't always enough

	response, err := c.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	defer func() {
		closeErr := response.Body.Close()
		if closeErr != nil {
			glog.Warningln("body.Close: ", closeErr)
		}
	}()

	data := try.To1(io.ReadAll(response.Body))
	return checkResolverResponse(didStr, response, data)
}

// checkResolverResponse maps the HTTP status and body to a DID
// Document or to one of the resolution error kinds. Statuses in the
// [200, 400) range carry a result document.
func checkResolverResponse(
	didStr string,
	response *http.Response,
	data []byte,
) (
	json.RawMessage,
	error,
) {
	switch {
	case response.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, didStr)
	case response.StatusCode < http.StatusOK ||
		response.StatusCode >= http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrNetwork, response.Status)
	}

	var result struct {
		DIDDocument json.RawMessage `json:"didDocument"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if len(result.DIDDocument) == 0 || string(result.DIDDocument) == "null" {
		return nil, fmt.Errorf("%w: no document for %s", ErrNotFound, didStr)
	}
	if _, err := did.ParseDocument(result.DIDDocument); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	return result.DIDDocument, nil
}
