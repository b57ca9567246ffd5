package utils

import (
	"time"

	"github.com/golang/glog"
)

const HTTPReqTimeout = 1 * time.Minute

// DefaultResolveTimeout is how long a resolveDID caller waits for the
// correlated reply when no explicit timeout is given.
const DefaultResolveTimeout = 30 * time.Second

var Settings = &Hub{}

type Hub struct {
	resolverURL string        // uniresolver endpoint template, must contain the {did} placeholder
	timeout     time.Duration // timeout setting for http requests and reply waits

	versionInfo string // Version number etc. in free format as a string
}

// SetResolverURL sets the DID resolution backend endpoint template. The
// template must contain a {did} placeholder which is replaced with the
// DID under resolution.
func (h *Hub) SetResolverURL(u string) {
	h.resolverURL = u
}

func (h *Hub) ResolverURL() string {
	if h.resolverURL == "" && glog.V(3) {
		glog.Info("warning resolver url is empty")
	}
	return h.resolverURL
}

// SetTimeout sets the default timeout for HTTP requests and for
// waiting protocol replies.
func (h *Hub) SetTimeout(to time.Duration) {
	h.timeout = to
}

func (h *Hub) Timeout() time.Duration {
	if h.timeout == 0 {
		return HTTPReqTimeout
	}
	return h.timeout
}

// SetVersionInfo sets current version info of this agent. The info is
// shown in the CLI version command.
func (h *Hub) SetVersionInfo(info string) {
	h.versionInfo = info
}

func (h *Hub) VersionInfo() string {
	return h.versionInfo
}
