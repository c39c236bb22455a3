// Package token signs and verifies the principal tokens returned by login.
//
// A principal token binds a user to its session and optionally carries an
// early role claim. The claim is advisory: the redirect engine always prefers
// the session store and only uses the token role as a fallback source.
//
// # What this package must NOT do
//
//   - Store or look up sessions (that is the session package's job).
//   - Accept tokens signed with an algorithm other than the configured one.
package token
