package didresolution

import (
	"errors"
	"fmt"
	"strings"

	"github.com/findy-network/findy-did-resolver/std/didresolution"
)

// Typed errors the requester side raises at the ResolveDID call site.
// Callers classify with errors.Is.
var (
	ErrRequestTimeout         = errors.New("did resolution request timeout")
	ErrCancelled              = errors.New("did resolution cancelled")
	ErrRemoteNotFound         = errors.New("did not found on remote resolver")
	ErrRemoteResolutionFailed = errors.New("remote did resolution failed")
)

// explainNotFoundPrefix is the explanation prefix both sides of the
// protocol agree on for the not found outcome. The responder writes
// it, the requester recognizes it.
const explainNotFoundPrefix = "DID not found on remote resolver:"

// codeResolutionFailure is the problem report description code the
// responder uses for every resolution failure.
const codeResolutionFailure = "resolution_failure"

func notFoundExplanation(didStr string) string {
	return fmt.Sprintf("%s %s", explainNotFoundPrefix, didStr)
}

// translate maps a received problem report to a typed error. It is the
// single place deciding requester side failure semantics: handlers
// never construct resolution errors themselves. A malformed or empty
// report degrades to the generic kind, translation itself never fails.
func translate(report *didresolution.ProblemReport) error {
	explain := report.ExplainLongTxt
	if strings.HasPrefix(explain, explainNotFoundPrefix) {
		return fmt.Errorf("%w:%s",
			ErrRemoteNotFound, strings.TrimPrefix(explain, explainNotFoundPrefix))
	}
	return fmt.Errorf("%w: %s", ErrRemoteResolutionFailed, explain)
}
