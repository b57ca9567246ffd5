package didresolution

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/findy-network/findy-did-resolver/agent/pltype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolveDIDMsg(t *testing.T) {
	const inbound = `{
	  "@type": "https://didcomm.org/did_resolution/0.9/resolve",
	  "@id": "d6f2fc63-2bea-43f6-8d4c-92ea88a2fb0e",
	  "~thread": {"thid": "d6f2fc63-2bea-43f6-8d4c-92ea88a2fb0e"},
	  "sent_time": "2021-12-02 09:55:12.111199Z",
	  "did": "did:sov:WRfXPg8dantKVubE3HX8pw"
	}`

	msg := NewResolveDIDMsg([]byte(inbound))
	assert.Equal(t, pltype.DIDOrgResolutionResolve, msg.Type())
	assert.Equal(t, "did:sov:WRfXPg8dantKVubE3HX8pw", msg.ResolveDID.DID)
	assert.Equal(t, "d6f2fc63-2bea-43f6-8d4c-92ea88a2fb0e", msg.Thread().ID)
	assert.Equal(t, 2021, msg.ResolveDID.SentTime.Year())
}

func TestNewResolveDIDMsg_ThreadFallsBackToID(t *testing.T) {
	const inbound = `{
	  "@type": "https://didcomm.org/did_resolution/0.9/resolve",
	  "@id": "8d098c33-4c44-4b60-adcc-bbb8dcc1477e",
	  "did": "did:key:z6Mk"
	}`

	msg := NewResolveDIDMsg([]byte(inbound))
	require.NotNil(t, msg.Thread())
	assert.Equal(t, "8d098c33-4c44-4b60-adcc-bbb8dcc1477e", msg.Thread().ID)
}

func TestNewResolveDIDResultMsg_KeepsDocumentIntact(t *testing.T) {
	const doc = `{"@context":["https://www.w3.org/ns/did/v1"],"id":"did:key:z6Mk","service":[]}`
	const inbound = `{
	  "@type": "https://didcomm.org/did_resolution/0.9/resolve_result",
	  "@id": "11111111-2222-3333-4444-555555555555",
	  "~thread": {"thid": "66666666-7777-8888-9999-000000000000"},
	  "sent_time": "2021-12-02T09:55:12Z",
	  "did_document": ` + doc + `
	}`

	msg := NewResolveDIDResultMsg([]byte(inbound))
	assert.Equal(t, "66666666-7777-8888-9999-000000000000", msg.Thread().ID)
	assert.JSONEq(t, doc, string(msg.ResolveDIDResult.DIDDocument))

	// round trip keeps the document member structurally identical
	var out ResolveDIDResult
	require.NoError(t, json.Unmarshal(msg.JSON(), &out))
	assert.JSONEq(t, doc, string(out.DIDDocument))
}

func TestNewProblemReportMsg(t *testing.T) {
	const inbound = `{
	  "@type": "https://didcomm.org/did_resolution/0.9/problem-report",
	  "@id": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
	  "~thread": {"thid": "ffffffff-0000-1111-2222-333333333333"},
	  "description": {"code": "resolution_failure"},
	  "explain-ltxt": "DID not found on remote resolver: did:sov:unknown"
	}`

	msg := NewProblemReportMsg([]byte(inbound))
	assert.Equal(t, "ffffffff-0000-1111-2222-333333333333", msg.Thread().ID)
	assert.Equal(t, "resolution_failure", msg.ProblemReport.Description.Code)
	assert.Equal(t,
		"DID not found on remote resolver: did:sov:unknown",
		msg.ProblemReport.ExplainLongTxt)
}

func TestAriesTime_MarshalUsesACAPyFormat(t *testing.T) {
	at := AriesTime{Time: time.Date(2021, 12, 2, 9, 55, 12, 111199000, time.UTC)}
	b, err := at.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2021-12-02 09:55:12.111199Z"`, string(b))

	var back AriesTime
	require.NoError(t, back.UnmarshalJSON(b))
	assert.True(t, at.Equal(back.Time))
}
