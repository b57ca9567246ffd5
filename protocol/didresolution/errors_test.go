package didresolution

import (
	"errors"
	"testing"

	"github.com/findy-network/findy-did-resolver/std/didresolution"
	"github.com/stretchr/testify/assert"
)

func report(explain string) *didresolution.ProblemReport {
	return &didresolution.ProblemReport{
		Description:    didresolution.Code{Code: codeResolutionFailure},
		ExplainLongTxt: explain,
	}
}

func TestTranslate_NotFound(t *testing.T) {
	err := translate(report("DID not found on remote resolver: did:sov:unknown"))
	assert.True(t, errors.Is(err, ErrRemoteNotFound))
	assert.Contains(t, err.Error(), "did:sov:unknown")
}

func TestTranslate_GenericKeepsExplanationVerbatim(t *testing.T) {
	const explain = "could not resolve DID did:sov:x using service http://localhost:8080/1.0/identifiers/{did}"
	err := translate(report(explain))
	assert.True(t, errors.Is(err, ErrRemoteResolutionFailed))
	assert.Contains(t, err.Error(), explain)
}

func TestTranslate_EmptyExplanationDegradesToGeneric(t *testing.T) {
	err := translate(report(""))
	assert.True(t, errors.Is(err, ErrRemoteResolutionFailed))
}

func TestTranslate_PrefixMustMatchFromStart(t *testing.T) {
	// the marker inside the explanation is not the same as the marker
	// starting it
	err := translate(report("error: DID not found on remote resolver: did:sov:x"))
	assert.True(t, errors.Is(err, ErrRemoteResolutionFailed))
	assert.False(t, errors.Is(err, ErrRemoteNotFound))
}

func TestNotFoundExplanation_RoundTripsThroughTranslate(t *testing.T) {
	err := translate(report(notFoundExplanation("did:key:z6Mk")))
	assert.True(t, errors.Is(err, ErrRemoteNotFound))
	assert.Contains(t, err.Error(), "did:key:z6Mk")
}
