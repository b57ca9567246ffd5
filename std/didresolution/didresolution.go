// Package didresolution implements the wire messages of the DID
// Resolution protocol v0.9: resolve, resolve_result and
// problem-report. Message schema validation is the concern of the
// transport layer; these types only carry the already validated data.
package didresolution

import (
	"time"

	"github.com/findy-network/findy-common-go/dto"
	"github.com/findy-network/findy-did-resolver/agent/aries"
	"github.com/findy-network/findy-did-resolver/agent/didcomm"
	"github.com/findy-network/findy-did-resolver/agent/pltype"
	"github.com/findy-network/findy-did-resolver/std/decorator"
)

var (
	ResolveCreator       = &ResolveFactor{}
	ResultCreator        = &ResultFactor{}
	ProblemReportCreator = &ProblemReportFactor{}
)

func init() {
	aries.Creator.Add(pltype.ResolutionResolve, ResolveCreator)
	aries.Creator.Add(pltype.DIDOrgResolutionResolve, ResolveCreator)
	aries.Creator.Add(pltype.ResolutionResult, ResultCreator)
	aries.Creator.Add(pltype.DIDOrgResolutionResult, ResultCreator)
	aries.Creator.Add(pltype.ResolutionProblemReport, ProblemReportCreator)
	aries.Creator.Add(pltype.DIDOrgResolutionProblemReport, ProblemReportCreator)
}

// MARK: ResolveDID

type ResolveFactor struct{}

func (f *ResolveFactor) NewMsg(init didcomm.MsgInit) didcomm.MessageHdr {
	m := &ResolveDID{
		Type:     init.Type,
		ID:       init.AID,
		DID:      init.Did,
		L10n:     init.L10n,
		SentTime: AriesTime{Time: time.Now()},
		Thread:   decorator.CheckThread(init.Thread, init.AID),
	}
	return NewResolveDID(m)
}

func (f *ResolveFactor) NewMessage(data []byte) didcomm.MessageHdr {
	return NewResolveDIDMsg(data)
}

func NewResolveDID(m *ResolveDID) *ResolveImpl {
	return &ResolveImpl{ResolveDID: m}
}

func NewResolveDIDMsg(data []byte) *ResolveImpl {
	var mImpl ResolveImpl
	dto.FromJSON(data, &mImpl)
	mImpl.checkThread()
	return &mImpl
}

type ResolveImpl struct {
	*ResolveDID
}

func (p *ResolveImpl) checkThread() {
	p.ResolveDID.Thread = decorator.CheckThread(p.ResolveDID.Thread, p.ResolveDID.ID)
}

func (p *ResolveImpl) ID() string {
	return p.ResolveDID.ID
}

func (p *ResolveImpl) Type() string {
	return p.ResolveDID.Type
}

func (p *ResolveImpl) SetID(id string) {
	p.ResolveDID.ID = id
}

func (p *ResolveImpl) SetType(t string) {
	p.ResolveDID.Type = t
}

func (p *ResolveImpl) JSON() []byte {
	return dto.ToJSONBytes(p)
}

func (p *ResolveImpl) Thread() *decorator.Thread {
	return p.ResolveDID.Thread
}

func (p *ResolveImpl) FieldObj() interface{} {
	return p.ResolveDID
}

// MARK: ResolveDIDResult

type ResultFactor struct{}

func (f *ResultFactor) NewMsg(init didcomm.MsgInit) didcomm.MessageHdr {
	m := &ResolveDIDResult{
		Type:        init.Type,
		ID:          init.AID,
		DIDDocument: init.DIDDoc,
		L10n:        init.L10n,
		SentTime:    AriesTime{Time: time.Now()},
		Thread:      decorator.CheckThread(init.Thread, init.AID),
	}
	return NewResolveDIDResult(m)
}

func (f *ResultFactor) NewMessage(data []byte) didcomm.MessageHdr {
	return NewResolveDIDResultMsg(data)
}

func NewResolveDIDResult(m *ResolveDIDResult) *ResultImpl {
	return &ResultImpl{ResolveDIDResult: m}
}

func NewResolveDIDResultMsg(data []byte) *ResultImpl {
	var mImpl ResultImpl
	dto.FromJSON(data, &mImpl)
	mImpl.checkThread()
	return &mImpl
}

type ResultImpl struct {
	*ResolveDIDResult
}

func (p *ResultImpl) checkThread() {
	p.ResolveDIDResult.Thread =
		decorator.CheckThread(p.ResolveDIDResult.Thread, p.ResolveDIDResult.ID)
}

func (p *ResultImpl) ID() string {
	return p.ResolveDIDResult.ID
}

func (p *ResultImpl) Type() string {
	return p.ResolveDIDResult.Type
}

func (p *ResultImpl) SetID(id string) {
	p.ResolveDIDResult.ID = id
}

func (p *ResultImpl) SetType(t string) {
	p.ResolveDIDResult.Type = t
}

func (p *ResultImpl) JSON() []byte {
	return dto.ToJSONBytes(p)
}

func (p *ResultImpl) Thread() *decorator.Thread {
	return p.ResolveDIDResult.Thread
}

func (p *ResultImpl) FieldObj() interface{} {
	return p.ResolveDIDResult
}

// MARK: ProblemReport

type ProblemReportFactor struct{}

func (f *ProblemReportFactor) NewMsg(init didcomm.MsgInit) didcomm.MessageHdr {
	m := &ProblemReport{
		Type:           init.Type,
		ID:             init.AID,
		Description:    Code{Code: init.Code},
		ExplainLongTxt: init.Info,
		Thread:         decorator.CheckThread(init.Thread, init.AID),
	}
	return NewProblemReport(m)
}

func (f *ProblemReportFactor) NewMessage(data []byte) didcomm.MessageHdr {
	return NewProblemReportMsg(data)
}

func NewProblemReport(m *ProblemReport) *ProblemReportImpl {
	return &ProblemReportImpl{ProblemReport: m}
}

func NewProblemReportMsg(data []byte) *ProblemReportImpl {
	var mImpl ProblemReportImpl
	dto.FromJSON(data, &mImpl)
	mImpl.checkThread()
	return &mImpl
}

type ProblemReportImpl struct {
	*ProblemReport
}

func (p *ProblemReportImpl) checkThread() {
	p.ProblemReport.Thread =
		decorator.CheckThread(p.ProblemReport.Thread, p.ProblemReport.ID)
}

func (p *ProblemReportImpl) ID() string {
	return p.ProblemReport.ID
}

func (p *ProblemReportImpl) Type() string {
	return p.ProblemReport.Type
}

func (p *ProblemReportImpl) SetID(id string) {
	p.ProblemReport.ID = id
}

func (p *ProblemReportImpl) SetType(t string) {
	p.ProblemReport.Type = t
}

func (p *ProblemReportImpl) JSON() []byte {
	return dto.ToJSONBytes(p)
}

func (p *ProblemReportImpl) Thread() *decorator.Thread {
	return p.ProblemReport.Thread
}

func (p *ProblemReportImpl) FieldObj() interface{} {
	return p.ProblemReport
}
