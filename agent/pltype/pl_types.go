package pltype

// general constants
const (
	Terminate = ""
	Nothing   = ""

	// Aries is the legacy type prefix used by old Aries RFC protocols.
	// ACA-Py still accepts message types qualified with it.
	Aries = "did:sov:BzCbsNYhMrjHiqZDTUASHg;spec"

	// DIDOrgNamespace is the namespace field of the current didcomm.org
	// qualified message types. Note that the scheme isn't part of it.
	DIDOrgNamespace = "didcomm.org"
	DIDOrg          = "https://" + DIDOrgNamespace
)

// DID Resolution protocol constants. The protocol qualifies its message
// types with both known didcomm prefixes, so every type exists in two
// forms here. The handler map keys use the plain message names.
const (
	ProtocolDIDResolution = "did_resolution"
	DIDResolutionVersion  = "0.9"

	HandlerResolve       = "resolve"
	HandlerResolveResult = "resolve_result"
	HandlerProblemReport = "problem-report"

	DIDResolution           = Aries + "/" + ProtocolDIDResolution
	ResolutionResolve       = DIDResolution + "/" + DIDResolutionVersion + "/" + HandlerResolve
	ResolutionResult        = DIDResolution + "/" + DIDResolutionVersion + "/" + HandlerResolveResult
	ResolutionProblemReport = DIDResolution + "/" + DIDResolutionVersion + "/" + HandlerProblemReport

	DIDOrgDIDResolution           = DIDOrg + "/" + ProtocolDIDResolution
	DIDOrgResolutionResolve       = DIDOrgDIDResolution + "/" + DIDResolutionVersion + "/" + HandlerResolve
	DIDOrgResolutionResult        = DIDOrgDIDResolution + "/" + DIDResolutionVersion + "/" + HandlerResolveResult
	DIDOrgResolutionProblemReport = DIDOrgDIDResolution + "/" + DIDResolutionVersion + "/" + HandlerProblemReport
)
