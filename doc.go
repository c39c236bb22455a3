// Package goRedirect decides where a user lands after login. The session
// record that carries the authoritative role is written asynchronously by
// the authentication backend, so the engine polls the session store with a
// bounded backoff, falls back to the role embedded in the login principal,
// and finally lands on the lowest-privilege destination when nothing
// resolves in time.
//
// The package is designed for concurrent server workloads: Engine methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goRedirect is the public surface. It exposes [Engine], [Builder],
// [Config], and value types (RedirectDecision, MetricsSnapshot, etc.).
// Flow orchestration and resolution ID generation live under internal/ and
// are never exported.
//
// # What this package must NOT do
//
//   - Expose Redis clients, internal stores, or encoding details in its
//     public API beyond the session sub-package.
//   - Navigate more than once per login attempt, or at all after the
//     caller's context is torn down.
//   - Surface session read failures to the Router; they are logged and
//     absorbed into the fallback outcome.
//
// # Performance contract
//
// One resolution performs at most Resolve.MaxAttempts session reads. The
// audit dispatcher is asynchronous and never stretches a poll interval;
// metrics are single atomic adds.
package goRedirect
