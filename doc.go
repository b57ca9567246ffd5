/*
Package main is an application package for the Findy DID resolver. It
implements the didcomm DID Resolution protocol v0.9: an agent can ask
another agent to resolve a DID, and the other agent delegates the
lookup to a configured uniresolver style HTTP endpoint and replies with
the DID Document or a problem report.

You can use the module roughly for three purposes:

1. As a requester library: ResolveDID sends the resolve message and
blocks the caller until the correlated reply, a timeout or a
cancellation decides the outcome. Concurrent requests are fully
independent.

2. As a responder library: the protocol handlers serve inbound resolve
messages with the configured resolution backend and always answer with
a correlated reply.

3. As a CLI tool for resolving DIDs straight with the resolver
endpoint, useful for checking the endpoint configuration.

# Sub-packages

findy-did-resolver is structured to the following sub-packages:

	agent    includes framework packages like bus, comm, didcomm, vdr, ..
	cmds     CLI command implementations decoupled from cobra
	protocol includes the processor for the DID Resolution protocol
	std      a root package for the protocol messages and decorators
*/
package main
