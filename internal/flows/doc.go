// Package flows contains pure-function orchestrators for Engine operations.
//
// Each flow function (currently [RunResolveRole]) accepts a typed dependency
// struct and returns results without side-effects beyond those dependencies.
// This design enables exhaustive unit testing with mock dependencies and keeps
// the Engine type thin.
//
// # Architecture boundaries
//
// Flow functions coordinate calls to the role source, audit dispatcher, and
// metrics through injected functions. They do NOT own any of these resources;
// ownership stays with the Engine.
//
// # What this package must NOT do
//
//   - Hold mutable state between calls.
//   - Import goRedirect (to avoid import cycles).
//   - Perform I/O directly; all I/O is mediated through dependency functions.
package flows
