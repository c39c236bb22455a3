// Package session provides Redis-backed session persistence and the compact
// binary session encoding used on the redirect hot path.
//
// # Binary encoding
//
// Sessions are stored in Redis as a compact binary record (schema versions v1
// and v2). The encoder is append-only: v2 added the role field and v1 blobs
// decode with an empty role, which is exactly the "role not yet propagated"
// state the engine polls through.
//
// # Architecture boundaries
//
// This package owns the [Store] (Redis operations), the [Session] model, and
// the [StoreSource] adapter feeding the engine's polling loop. It does NOT
// decide destinations or enforce the attempt budget; those responsibilities
// belong to the Engine.
//
// # What this package must NOT do
//
//   - Import goRedirect, role, or token (no upward imports).
//   - Translate a missing or role-less session into an error.
//   - Store plaintext secrets in [Session] fields.
package session
