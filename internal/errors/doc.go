// Package errors provides the structured error type used across pokedex-api.
//
// Every error that crosses a package boundary carries a Code, a message that
// is safe to show to the caller, an optional wrapped cause, and free-form
// metadata:
//
//	err := errors.NotFound("pokemon not found").
//	    WithMeta("query", query)
//
// Wrapping keeps the code of the innermost *Error unless one is supplied:
//
//	if err := c.get(ctx, url, &out); err != nil {
//	    return nil, errors.Wrapf(err, "failed to get species %s", url)
//	}
//
// Upstream HTTP statuses map onto codes with CodeFromHTTPStatus, and the gRPC
// layer converts in both directions with ToGRPCError and FromGRPCError.
//
// # Layer guidelines
//
// Clients map transport failures onto codes. Orchestrators decide what the
// caller may see; the creature orchestrator, for example, collapses every
// lookup failure into a single NotFound and logs the cause instead of
// returning it. Handlers only convert.
package errors
