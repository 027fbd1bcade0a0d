// Package chain implements the login validation pipeline as a chain of
// responsibility.
//
// Handlers form a singly linked sequence wired with SetNext, which returns
// its argument so chains read fluently:
//
//	exists.SetNext(password).SetNext(role)
//
// links exists→password→role and yields role. A handler either rejects a
// request at its own stage or enriches it and forwards the identical request
// to its successor. A request that flows past the last handler without
// rejection is reported as allowed; every Handle call returns a structured
// Result, so no outcome is ever silently dropped.
//
// Stage order matters: the existence stage attaches the stored user record
// to the request, and the credential and authorization stages read it
// without re-validating. Construction of a chain is decoupled from its
// traversal; handlers hold a link to their successor, not its lifetime.
package chain
