// Package middleware exposes HTTP adapters built on top of the redirect
// engine.
//
// [PostLoginRedirect] reads the principal token from the Authorization
// header, runs role resolution, and answers with a 303 redirect to the
// decided destination.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It does NOT
// implement resolution logic itself; all decisions are delegated to
// [goRedirect.Engine].
//
// # What this package must NOT do
//
//   - Read session records directly (the Engine handles I/O).
//   - Pick destinations beyond what the Engine decided.
//   - Write a response body after the request context is torn down.
package middleware
